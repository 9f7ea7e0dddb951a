package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"bookshelf/internal/config"
	"bookshelf/internal/shelf/form"
	"bookshelf/internal/shelf/openlibrary"
	"bookshelf/internal/shelf/search"
	"bookshelf/internal/shelf/session"
)

// addCmd runs the interactive submission flow: type to search, pick a
// suggestion (or fill the fields by hand), submit.
func addCmd(sess *session.Session, cfg *config.Config) error {
	ol := openlibrary.NewClient(
		cfg.OpenLibrary.BaseURL,
		cfg.OpenLibrary.UserAgent,
		cfg.OpenLibrary.RPS,
	)

	controller := search.NewController(ol, search.WithOnResults(printSuggestions))
	defer controller.Close()

	f := form.New(sess, controller)

	fmt.Println(`Type a title to search for suggestions. Other commands:
  :pick <n>      use suggestion n
  :title <text>  set the title by hand
  :author <text> set the author by hand
  :submit        save the entry
  :quit          abandon`)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Printf("search [%s / %s]> ", orDash(f.Title), orDash(f.Author))
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := scanner.Text()

		switch {
		case line == ":quit":
			return nil

		case line == ":submit":
			book, err := f.Submit(context.Background())
			if err != nil {
				if errors.Is(err, form.ErrInvalidDraft) {
					fmt.Println("Please enter both title and author.")
					continue
				}
				fmt.Println("Could not save the entry. Please try again.")
				continue
			}
			fmt.Printf("Added #%d: %s — %s\n", book.ID, book.Title, book.Author)
			return nil

		case strings.HasPrefix(line, ":pick "):
			n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, ":pick ")))
			_, candidates := f.Suggestions()
			if err != nil || n < 1 || n > len(candidates) {
				fmt.Println("No such suggestion.")
				continue
			}
			f.Select(candidates[n-1])
			fmt.Printf("Selected %q by %s\n", f.Title, orDash(f.Author))

		case strings.HasPrefix(line, ":title "):
			f.Title = strings.TrimPrefix(line, ":title ")

		case strings.HasPrefix(line, ":author "):
			f.Author = strings.TrimPrefix(line, ":author ")

		default:
			f.SetQuery(line)
		}
	}
}

func printSuggestions(query string, candidates []openlibrary.Candidate) {
	if query == "" {
		return
	}
	if len(candidates) == 0 {
		fmt.Printf("\nNo suggestions for %q.\n", query)
		return
	}

	fmt.Printf("\nSuggestions for %q:\n", query)
	for i, c := range candidates {
		line := fmt.Sprintf("  %d. %s", i+1, c.Title)
		if c.AuthorName != "" {
			line += " — " + c.AuthorName
		}
		if c.FirstPublishYear != nil {
			line += fmt.Sprintf(" (%d)", *c.FirstPublishYear)
		}
		fmt.Println(line)
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
