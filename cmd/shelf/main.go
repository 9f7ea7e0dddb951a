package main

import (
	"fmt"
	"io"
	"os"

	"bookshelf/internal/config"
	"bookshelf/internal/shelf/api"
	"bookshelf/internal/shelf/session"
	"bookshelf/pkg/logger"

	"github.com/joho/godotenv"
)

func usage(w io.Writer) {
	fmt.Fprint(w, `shelf <command> [args]

Environment:
  SHELF_API_BASE           catalog server base URL (default http://localhost:3001)
  OPENLIBRARY_BASE_URL     suggestion source (default https://openlibrary.org)

Commands:
  list           show the catalog
  add            add an entry (interactive, with suggestion search)
  delete <id>    remove an entry
  help           show this message
`)
}

func main() {
	_ = godotenv.Load()
	logger.Init(getEnv("APP_ENV", "development"))

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "shelf: %v\n", err)
		os.Exit(1)
	}

	apiBase := getEnv("SHELF_API_BASE", "http://localhost:3001")
	sess := session.New(api.NewClient(apiBase))

	if len(os.Args) < 2 {
		usage(os.Stderr)
		os.Exit(1)
	}

	switch os.Args[1] {
	case "list":
		err = listCmd(sess)
	case "add":
		err = addCmd(sess, cfg)
	case "delete":
		err = deleteCmd(sess, os.Args[2:])
	case "help", "-h", "--help":
		usage(os.Stdout)
	default:
		usage(os.Stderr)
		err = fmt.Errorf("unknown command %q", os.Args[1])
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "shelf: %v\n", err)
		os.Exit(1)
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
