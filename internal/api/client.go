package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"taskdeck/internal/model"
)

// DefaultBaseURL is the task service this binary talks to when no override
// is configured. Set at build time:
//
//	go build -ldflags "-X taskdeck/internal/api.DefaultBaseURL=https://todo.example.com/api"
var DefaultBaseURL = "http://localhost:8000/todos"

// DefaultTimeout bounds each request. There is no retry: a call either
// succeeds within the deadline or the caller is told to try again later.
const DefaultTimeout = 10 * time.Second

// Client implements Service over HTTP.
type Client struct {
	baseURL string
	hc      *http.Client
	timeout time.Duration
	log     zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient swaps the underlying *http.Client (tests, custom transports).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.hc = hc }
}

// WithTimeout sets the per-request deadline.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithLogger attaches a logger for request failures. The default discards.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// New creates a Client for the service rooted at baseURL. An empty baseURL
// falls back to DefaultBaseURL.
func New(baseURL string, opts ...Option) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{},
		timeout: DefaultTimeout,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the resolved service root.
func (c *Client) BaseURL() string { return c.baseURL }

// taskPayload is the request body for create and update.
type taskPayload struct {
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// FetchAll implements Service.
func (c *Client) FetchAll(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	if err := c.do(ctx, http.MethodGet, "/fetch/", nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// Create implements Service.
func (c *Client) Create(ctx context.Context, title string, completed bool) (model.Task, error) {
	var created model.Task
	err := c.do(ctx, http.MethodPost, "/create/", taskPayload{Title: title, Completed: completed}, &created)
	return created, err
}

// Update implements Service.
func (c *Client) Update(ctx context.Context, id model.TaskID, title string, completed bool) (model.Task, error) {
	var updated model.Task
	path := fmt.Sprintf("/%s/update/", id)
	err := c.do(ctx, http.MethodPut, path, taskPayload{Title: title, Completed: completed}, &updated)
	return updated, err
}

// Delete implements Service. The confirmation body is discarded.
func (c *Client) Delete(ctx context.Context, id model.TaskID) error {
	path := fmt.Sprintf("/%s/delete/", id)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// do issues one request and decodes a JSON response into out (when non-nil).
// Non-2xx responses are errors; bodies of failed responses are read for the
// log but never surfaced verbatim to users.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%s %s: marshal body: %w", method, path, err)
		}
		body = bytes.NewReader(b)
	}

	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("%s %s: build request: %w", method, path, err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		c.log.Error().Err(err).Str("method", method).Str("url", url).Msg("task api request failed")
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		c.log.Error().
			Int("status", resp.StatusCode).
			Str("method", method).
			Str("url", url).
			Dur("elapsed", time.Since(start)).
			Str("body", string(respBody)).
			Msg("task api returned an error status")
		return fmt.Errorf("%s %s: server returned %d", method, path, resp.StatusCode)
	}

	if out == nil {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.log.Error().Err(err).Str("method", method).Str("url", url).Msg("task api response was not valid JSON")
		return fmt.Errorf("%s %s: decode response: %w", method, path, err)
	}
	return nil
}
