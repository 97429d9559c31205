// Package client is the HTTP client of the tasktrack REST surface. It
// implements view.Service so the reconciler never touches the wire format.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"tasktrack/internal/model"
)

// APIError is a non-2xx response, carrying the server's {message} body.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
}

// Client calls the server with a bearer token. The token is explicit state
// on the client, not ambient storage, so tests can construct clients
// deterministically.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// New returns a Client for baseURL. token may be empty for the auth
// endpoints.
func New(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// do issues one request and decodes the response into out (when non-nil).
// Non-2xx responses become *APIError with the server's message.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&e)
		if e.Message == "" {
			e.Message = http.StatusText(resp.StatusCode)
		}
		return &APIError{Status: resp.StatusCode, Message: e.Message}
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// ListTasks implements view.Service.
func (c *Client) ListTasks(ctx context.Context, opts model.ListOptions) (model.Page, error) {
	opts = opts.Normalize()
	q := url.Values{}
	q.Set("page", strconv.Itoa(opts.Page))
	q.Set("limit", strconv.Itoa(opts.Limit))
	q.Set("sort", opts.Sort)
	if opts.Completed != nil {
		q.Set("completed", strconv.FormatBool(*opts.Completed))
	}
	var page model.Page
	err := c.do(ctx, http.MethodGet, "/tasks?"+q.Encode(), nil, &page)
	return page, err
}

// CreateTask implements view.Service.
func (c *Client) CreateTask(ctx context.Context, title string) (model.Task, error) {
	var task model.Task
	err := c.do(ctx, http.MethodPost, "/tasks", map[string]string{"title": title}, &task)
	return task, err
}

// ToggleTask implements view.Service.
func (c *Client) ToggleTask(ctx context.Context, id string) (model.Task, error) {
	var task model.Task
	err := c.do(ctx, http.MethodPatch, "/tasks/"+url.PathEscape(id), nil, &task)
	return task, err
}

// RenameTask implements view.Service.
func (c *Client) RenameTask(ctx context.Context, id, title string) (model.Task, error) {
	var task model.Task
	err := c.do(ctx, http.MethodPatch, "/tasks/"+url.PathEscape(id)+"/title", map[string]string{"title": title}, &task)
	return task, err
}

// DeleteTask implements view.Service.
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/tasks/"+url.PathEscape(id), nil, nil)
}
