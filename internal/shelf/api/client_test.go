package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bookshelf/internal/domains/book/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL)
}

func TestListBooks(t *testing.T) {
	t.Run("decodes the array body", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/books", r.URL.Path)
			w.Write([]byte(`[{"id":1,"title":"Dune","author":"Frank Herbert","first_publish_year":1965}]`))
		})

		books, err := client.ListBooks(context.Background())
		require.NoError(t, err)
		require.Len(t, books, 1)
		assert.EqualValues(t, 1, books[0].ID)
		assert.Equal(t, "Dune", books[0].Title)
		require.NotNil(t, books[0].FirstPublishYear)
		assert.Equal(t, 1965, *books[0].FirstPublishYear)
		assert.Nil(t, books[0].EditionCount)
	})

	t.Run("empty catalog", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[]`))
		})

		books, err := client.ListBooks(context.Background())
		require.NoError(t, err)
		assert.Empty(t, books)
	})

	t.Run("server failure surfaces the message", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"message":"Error fetching books"}`))
		})

		_, err := client.ListBooks(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Error fetching books")
	})
}

func TestCreateBook(t *testing.T) {
	t.Run("posts the payload and decodes the stored entry", func(t *testing.T) {
		var gotBody map[string]any
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/books", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

			w.Write([]byte(`{"id":3,"title":"Dune","author":"Frank Herbert"}`))
		})

		book, err := client.CreateBook(context.Background(), model.CreateBookRequest{
			Title:  "Dune",
			Author: "Frank Herbert",
		})
		require.NoError(t, err)
		assert.EqualValues(t, 3, book.ID)

		assert.Equal(t, "Dune", gotBody["title"])
		assert.Equal(t, "Frank Herbert", gotBody["author"])
		// Unset optional fields are omitted, not sent as null.
		assert.NotContains(t, gotBody, "first_publish_year")
		assert.NotContains(t, gotBody, "edition_count")
	})

	t.Run("server failure", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"message":"Error creating book"}`))
		})

		_, err := client.CreateBook(context.Background(), model.CreateBookRequest{Title: "T", Author: "A"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Error creating book")
	})
}

func TestDeleteBook(t *testing.T) {
	t.Run("targets the entry path", func(t *testing.T) {
		var gotPath string
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			assert.Equal(t, http.MethodDelete, r.Method)
			w.Write([]byte(`{"message":"Book deleted"}`))
		})

		require.NoError(t, client.DeleteBook(context.Background(), 42))
		assert.Equal(t, "/books/42", gotPath)
	})

	t.Run("404 maps to the sentinel", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"message":"Book not found"}`))
		})

		err := client.DeleteBook(context.Background(), 999)
		assert.ErrorIs(t, err, model.ErrBookNotFound)
	})

	t.Run("other failures keep the server message", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"message":"Error deleting book"}`))
		})

		err := client.DeleteBook(context.Background(), 1)
		require.Error(t, err)
		assert.NotErrorIs(t, err, model.ErrBookNotFound)
		assert.Contains(t, err.Error(), "Error deleting book")
	})
}

func TestClientConfiguration(t *testing.T) {
	t.Run("empty base url is rejected", func(t *testing.T) {
		client := NewClient("")
		_, err := client.ListBooks(context.Background())
		assert.Error(t, err)
	})

	t.Run("trailing slash is tolerated", func(t *testing.T) {
		var gotPath string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			w.Write([]byte(`[]`))
		}))
		t.Cleanup(srv.Close)

		client := NewClient(srv.URL + "/")
		_, err := client.ListBooks(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "/books", gotPath)
	})
}
