package openlibrary

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

// MaxSuggestions caps how many candidates a search surfaces,
// regardless of how many the source reports.
const MaxSuggestions = 5

// Candidate is a transient suggestion returned by the bibliographic
// source. It seeds a draft entry when selected and is never persisted.
type Candidate struct {
	Title            string
	AuthorName       string // first author only; empty when absent
	FirstPublishYear *int
	EditionCount     *int
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	limiter    *rate.Limiter
}

func NewClient(baseURL, userAgent string, rps int) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		baseURL:   baseURL,
		userAgent: userAgent,
		limiter:   rate.NewLimiter(rate.Every(time.Second/time.Duration(rps)), 1),
	}
}

// searchResponse matches search.json. Every field is optional on the
// wire, so docs are mapped defensively.
type searchResponse struct {
	NumFound int `json:"numFound"`
	Docs     []struct {
		Title            string   `json:"title"`
		AuthorNames      []string `json:"author_name"`
		FirstPublishYear *int     `json:"first_publish_year"`
		EditionCount     *int     `json:"edition_count"`
	} `json:"docs"`
}

// Search looks up candidate records by title and returns at most
// MaxSuggestions of them. Callers must not pass an empty query; the
// source does not bound its result set for one.
func (c *Client) Search(ctx context.Context, title string) ([]Candidate, error) {
	q := url.Values{}
	q.Set("title", title)
	q.Set("limit", fmt.Sprint(MaxSuggestions))

	u := fmt.Sprintf("%s/search.json?%s", c.baseURL, q.Encode())

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openlibrary search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openlibrary search: unexpected status code: %d", resp.StatusCode)
	}

	var res searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, fmt.Errorf("openlibrary search: decode response: %w", err)
	}

	docs := res.Docs
	if len(docs) > MaxSuggestions {
		docs = docs[:MaxSuggestions]
	}

	candidates := make([]Candidate, 0, len(docs))
	for _, doc := range docs {
		cand := Candidate{
			Title:            doc.Title,
			FirstPublishYear: doc.FirstPublishYear,
			EditionCount:     doc.EditionCount,
		}
		if len(doc.AuthorNames) > 0 {
			cand.AuthorName = doc.AuthorNames[0]
		}
		candidates = append(candidates, cand)
	}

	return candidates, nil
}
