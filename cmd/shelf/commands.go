package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"bookshelf/internal/domains/book/model"
	"bookshelf/internal/shelf/session"
)

func listCmd(sess *session.Session) error {
	books, err := sess.Books(context.Background())
	if err != nil {
		return err
	}

	if len(books) == 0 {
		fmt.Println("The shelf is empty.")
		return nil
	}

	for _, b := range books {
		line := fmt.Sprintf("%4d  %s — %s", b.ID, b.Title, b.Author)
		if b.FirstPublishYear != nil {
			line += fmt.Sprintf("  (first published %d)", *b.FirstPublishYear)
		}
		if b.EditionCount != nil {
			line += fmt.Sprintf("  [%d editions]", *b.EditionCount)
		}
		fmt.Println(line)
	}
	return nil
}

func deleteCmd(sess *session.Session, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: shelf delete <id>")
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %q", args[0])
	}

	if err := sess.DeleteBook(context.Background(), id); err != nil {
		if errors.Is(err, model.ErrBookNotFound) {
			return fmt.Errorf("book %d not found", id)
		}
		return err
	}

	fmt.Println("Book deleted")
	return nil
}
