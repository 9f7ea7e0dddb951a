package form

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"bookshelf/internal/domains/book/model"
	"bookshelf/internal/shelf/openlibrary"
	"bookshelf/internal/shelf/search"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ErrInvalidDraft signals a submission rejected client-side; no
// request was sent and the draft is unchanged.
var ErrInvalidDraft = errors.New("invalid draft")

// Catalog is the creation half of the backend the form submits to.
// *session.Session satisfies it.
type Catalog interface {
	CreateBook(ctx context.Context, payload model.CreateBookRequest) (model.Book, error)
}

// Form holds the pending entry draft and the suggestion search that
// feeds it. Like the UI it models, a Form is driven from a single
// goroutine.
type Form struct {
	catalog Catalog
	search  *search.Controller

	Title            string
	Author           string
	FirstPublishYear *int
	EditionCount     *int
}

func New(catalog Catalog, controller *search.Controller) *Form {
	return &Form{
		catalog: catalog,
		search:  controller,
	}
}

// SetQuery forwards a keystroke of the suggestion search input.
func (f *Form) SetQuery(q string) {
	f.search.SetInput(q)
}

// Suggestions returns the settled query and its suggestion list.
func (f *Form) Suggestions() (string, []openlibrary.Candidate) {
	return f.search.Snapshot()
}

// Select copies a candidate into the draft and ends the search
// session: query input and suggestion list are cleared. Selection and
// search are mutually exclusive.
func (f *Form) Select(c openlibrary.Candidate) {
	f.Title = c.Title
	f.Author = c.AuthorName
	f.FirstPublishYear = c.FirstPublishYear
	f.EditionCount = c.EditionCount

	f.search.Reset()
}

// validate applies the presence checks on the trimmed draft.
func validate(title, author string) error {
	return validation.Errors{
		"title":  validation.Validate(title, validation.Required),
		"author": validation.Validate(author, validation.Required),
	}.Filter()
}

// Submit validates the draft and creates the entry. An empty title or
// author rejects the submission before any network call. On success
// every draft and query field is reset; on failure the draft is left
// intact for correction and resubmission.
func (f *Form) Submit(ctx context.Context) (model.Book, error) {
	title := strings.TrimSpace(f.Title)
	author := strings.TrimSpace(f.Author)

	if err := validate(title, author); err != nil {
		return model.Book{}, fmt.Errorf("%w: %v", ErrInvalidDraft, err)
	}

	book, err := f.catalog.CreateBook(ctx, model.CreateBookRequest{
		Title:            title,
		Author:           author,
		FirstPublishYear: f.FirstPublishYear,
		EditionCount:     f.EditionCount,
	})
	if err != nil {
		return model.Book{}, err
	}

	f.Reset()
	return book, nil
}

// Reset clears the draft and the search state.
func (f *Form) Reset() {
	f.Title = ""
	f.Author = ""
	f.FirstPublishYear = nil
	f.EditionCount = nil
	f.search.Reset()
}
