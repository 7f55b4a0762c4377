// Package contactclient provides a typed Go client for the FutureSign
// contact API, plus the contact-form state machine the front end drives.
package contactclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// APIError is returned when the API responds with a non-2xx status.
type APIError struct {
	Status  int
	Message string
	Detail  string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("contact api %d: %s (%s)", e.Status, e.Message, e.Detail)
	}
	return fmt.Sprintf("contact api %d: %s", e.Status, e.Message)
}

// SubmitRequest is the contact-form payload.
type SubmitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Service string `json:"service"`
	Message string `json:"message"`
}

// Submission is a stored contact-form entry as the API returns it.
type Submission struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Service   string    `json:"service"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// ServiceOption is one entry of the service catalog.
type ServiceOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// envelope mirrors the server's standard response shape.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// Client is a typed client for the contact API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// New creates a new Client. baseURL is the API root, e.g.
// "https://api.futuresign.example" — paths are appended under /api.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Option configures the client.
type Option func(*Client)

// WithTimeout sets the HTTP timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.HTTPClient.Timeout = d }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.HTTPClient = h }
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var env envelope
		if err := json.NewDecoder(resp.Body).Decode(&env); err == nil && env.Message != "" {
			return &APIError{Status: resp.StatusCode, Message: env.Message, Detail: env.Error}
		}
		return &APIError{Status: resp.StatusCode, Message: "unknown error"}
	}

	if out != nil {
		var env envelope
		if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
			return err
		}
		return json.Unmarshal(env.Data, out)
	}
	return nil
}

// Submit calls POST /api/contact and returns the stored record.
func (c *Client) Submit(ctx context.Context, req SubmitRequest) (*Submission, error) {
	var out Submission
	if err := c.do(ctx, http.MethodPost, "/api/contact", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// List calls GET /api/contact; records come back newest-first.
func (c *Client) List(ctx context.Context) ([]Submission, error) {
	var out []Submission
	if err := c.do(ctx, http.MethodGet, "/api/contact", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Services calls GET /api/services.
func (c *Client) Services(ctx context.Context) ([]ServiceOption, error) {
	var out []ServiceOption
	if err := c.do(ctx, http.MethodGet, "/api/services", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
