package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client is a Backend that talks to a server mounted with NewRouter.
type Client struct {
	base string
	http *http.Client
}

var _ Backend = (*Client)(nil)

// NewClient returns a client for the server at baseURL (for example
// "http://localhost:8080"). A nil hc uses a client with a 10 second timeout.
func NewClient(baseURL string, hc *http.Client) *Client {
	if hc == nil {
		hc = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{base: strings.TrimRight(baseURL, "/") + "/api", http: hc}
}

// errNotFound marks a 404 so lookups can report a miss.
var errNotFound = errors.New("not found")

type errorBody struct {
	Error string `json:"error"`
}

// do sends a request and decodes a JSON response into out (when non-nil).
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(buf)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 500:
		return fmt.Errorf("%w: %s %s: status %d", ErrUnavailable, method, path, resp.StatusCode)
	case resp.StatusCode == http.StatusBadRequest:
		var eb errorBody
		_ = json.NewDecoder(resp.Body).Decode(&eb)
		if eb.Error == ErrInvalidMessage.Error() {
			return ErrInvalidMessage
		}
		return fmt.Errorf("%s %s: bad request: %s", method, path, eb.Error)
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s %s: %w", method, path, errNotFound)
	case resp.StatusCode >= 300:
		return fmt.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode %s %s: %w", method, path, err)
		}
	}
	return nil
}

// SubmitMessage posts a contact message.
func (c *Client) SubmitMessage(ctx context.Context, name, email, message string) error {
	if err := ValidateMessage(name, email, message); err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, "/messages", messageRequest{Name: name, Email: email, Message: message}, nil)
}

// GetMessages lists stored messages.
func (c *Client) GetMessages(ctx context.Context) ([]Message, error) {
	var out []Message
	err := c.do(ctx, http.MethodGet, "/messages", nil, &out)
	return out, err
}

// GetFAQAnswer looks up keyword.
func (c *Client) GetFAQAnswer(ctx context.Context, keyword string) (string, bool, error) {
	var out struct {
		Answer string `json:"answer"`
	}
	err := c.do(ctx, http.MethodGet, "/faq/answer?q="+url.QueryEscape(keyword), nil, &out)
	if errors.Is(err, errNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return out.Answer, true, nil
}

// GetAllFAQEntries lists FAQ entries.
func (c *Client) GetAllFAQEntries(ctx context.Context) ([]FAQEntry, error) {
	var out []FAQEntry
	err := c.do(ctx, http.MethodGet, "/faq", nil, &out)
	return out, err
}

// AddFAQEntry adds an entry.
func (c *Client) AddFAQEntry(ctx context.Context, question, answer string) error {
	return c.do(ctx, http.MethodPost, "/faq", faqRequest{Question: question, Answer: answer}, nil)
}

// AddInitialFAQEntries asks the server to seed its FAQ.
func (c *Client) AddInitialFAQEntries(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/faq/seed", nil, nil)
}

type countBody struct {
	Count uint64 `json:"count"`
}

// GetVisitorCount reads the visitor counter.
func (c *Client) GetVisitorCount(ctx context.Context) (uint64, error) {
	var out countBody
	err := c.do(ctx, http.MethodGet, "/visitors", nil, &out)
	return out.Count, err
}

// IncrementVisitorCount bumps the visitor counter.
func (c *Client) IncrementVisitorCount(ctx context.Context) (uint64, error) {
	var out countBody
	err := c.do(ctx, http.MethodPost, "/visitors", nil, &out)
	return out.Count, err
}
