package model

// Book is a persisted catalog entry. The id is assigned by the store
// and never reused after deletion. Optional publication metadata stays
// absent (nil) rather than zero-valued so the JSON shape matches what
// was submitted.
type Book struct {
	ID               int64  `json:"id" db:"id"`
	Title            string `json:"title" db:"title"`
	Author           string `json:"author" db:"author"`
	FirstPublishYear *int   `json:"first_publish_year,omitempty" db:"first_publish_year"`
	EditionCount     *int   `json:"edition_count,omitempty" db:"edition_count"`
}

// CreateBookRequest is the create payload. Fields are passed through
// to the store without server-side required-ness checks; the client
// submission flow owns presence validation.
type CreateBookRequest struct {
	Title            string `json:"title"`
	Author           string `json:"author"`
	FirstPublishYear *int   `json:"first_publish_year"`
	EditionCount     *int   `json:"edition_count"`
}
