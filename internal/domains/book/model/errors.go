package model

import "errors"

var (
	// ErrBookNotFound signals a lookup or delete against an id that is
	// not in the store. Non-fatal; mapped to 404 by the handler.
	ErrBookNotFound = errors.New("book not found")
)
