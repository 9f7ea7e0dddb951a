package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"bookshelf/internal/domains/book/model"
)

// Client is a thin JSON client for the catalog server's /books
// surface.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

// messageResponse matches the server's {"message": ...} bodies.
type messageResponse struct {
	Message string `json:"message"`
}

func (c *Client) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	if strings.TrimSpace(c.BaseURL) == "" {
		return nil, errors.New("base url is empty")
	}

	url := strings.TrimRight(c.BaseURL, "/") + path

	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		r = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, r)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 2<<20))
	if err != nil {
		return err
	}

	if resp.StatusCode == http.StatusNotFound {
		return model.ErrBookNotFound
	}
	if resp.StatusCode != http.StatusOK {
		var msg messageResponse
		if json.Unmarshal(body, &msg) == nil && msg.Message != "" {
			return fmt.Errorf("server: %s (status %d)", msg.Message, resp.StatusCode)
		}
		return fmt.Errorf("server: unexpected status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	return json.Unmarshal(body, out)
}

// ListBooks - GET /books
func (c *Client) ListBooks(ctx context.Context) ([]model.Book, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/books", nil)
	if err != nil {
		return nil, err
	}

	var books []model.Book
	if err := c.do(req, &books); err != nil {
		return nil, err
	}
	return books, nil
}

// CreateBook - POST /books
func (c *Client) CreateBook(ctx context.Context, payload model.CreateBookRequest) (model.Book, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/books", payload)
	if err != nil {
		return model.Book{}, err
	}

	var book model.Book
	if err := c.do(req, &book); err != nil {
		return model.Book{}, err
	}
	return book, nil
}

// DeleteBook - DELETE /books/:id. Returns model.ErrBookNotFound on a
// 404.
func (c *Client) DeleteBook(ctx context.Context, id int64) error {
	req, err := c.newRequest(ctx, http.MethodDelete, fmt.Sprintf("/books/%d", id), nil)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}
