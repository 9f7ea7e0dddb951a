package openlibrary

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestSearch(t *testing.T) {
	t.Run("maps docs to candidates", func(t *testing.T) {
		var gotPath, gotUA string
		var gotQuery map[string][]string

		srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotUA = r.Header.Get("User-Agent")
			gotQuery = r.URL.Query()

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"numFound": 2,
				"docs": [
					{"title":"Dune","author_name":["Frank Herbert","Other"],"first_publish_year":1965,"edition_count":112},
					{"title":"Dune Messiah","author_name":["Frank Herbert"]}
				]
			}`))
		})

		client := NewClient(srv.URL, "bookshelf/1.0 (test@example.com)", 10)

		candidates, err := client.Search(context.Background(), "dune")
		require.NoError(t, err)

		assert.Equal(t, "/search.json", gotPath)
		assert.Equal(t, "bookshelf/1.0 (test@example.com)", gotUA)
		assert.Equal(t, []string{"dune"}, gotQuery["title"])
		assert.Equal(t, []string{"5"}, gotQuery["limit"])

		require.Len(t, candidates, 2)
		assert.Equal(t, "Dune", candidates[0].Title)
		assert.Equal(t, "Frank Herbert", candidates[0].AuthorName)
		require.NotNil(t, candidates[0].FirstPublishYear)
		assert.Equal(t, 1965, *candidates[0].FirstPublishYear)
		require.NotNil(t, candidates[0].EditionCount)
		assert.Equal(t, 112, *candidates[0].EditionCount)

		// Optional fields absent on the wire stay absent.
		assert.Nil(t, candidates[1].FirstPublishYear)
		assert.Nil(t, candidates[1].EditionCount)
	})

	t.Run("caps the result set", func(t *testing.T) {
		srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"numFound":10,"docs":[
				{"title":"1"},{"title":"2"},{"title":"3"},{"title":"4"},{"title":"5"},
				{"title":"6"},{"title":"7"},{"title":"8"},{"title":"9"},{"title":"10"}
			]}`))
		})

		client := NewClient(srv.URL, "ua", 10)

		candidates, err := client.Search(context.Background(), "common title")
		require.NoError(t, err)
		assert.Len(t, candidates, MaxSuggestions)
		assert.Equal(t, "5", candidates[MaxSuggestions-1].Title)
	})

	t.Run("missing author maps to empty string", func(t *testing.T) {
		srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"numFound":1,"docs":[{"title":"Beowulf"}]}`))
		})

		client := NewClient(srv.URL, "ua", 10)

		candidates, err := client.Search(context.Background(), "beowulf")
		require.NoError(t, err)
		require.Len(t, candidates, 1)
		assert.Empty(t, candidates[0].AuthorName)
	})

	t.Run("no matches", func(t *testing.T) {
		srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"numFound":0,"docs":[]}`))
		})

		client := NewClient(srv.URL, "ua", 10)

		candidates, err := client.Search(context.Background(), "xyzzy")
		require.NoError(t, err)
		assert.Empty(t, candidates)
	})

	t.Run("unexpected status", func(t *testing.T) {
		srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})

		client := NewClient(srv.URL, "ua", 10)

		_, err := client.Search(context.Background(), "dune")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unexpected status code: 503")
	})

	t.Run("malformed body", func(t *testing.T) {
		srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`not json`))
		})

		client := NewClient(srv.URL, "ua", 10)

		_, err := client.Search(context.Background(), "dune")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode response")
	})

	t.Run("canceled context", func(t *testing.T) {
		srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"numFound":0,"docs":[]}`))
		})

		client := NewClient(srv.URL, "ua", 10)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := client.Search(ctx, "dune")
		assert.Error(t, err)
	})
}
