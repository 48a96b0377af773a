// Package paycycle is a typed HTTP client for the paycycle API. Every
// operation returns (T, error); when the server rejects a request the error
// is an *APIError carrying the status, code, message and any field errors.
package paycycle

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Session supplies the bearer token for each request. Implementations may
// refresh under the hood; an empty token sends the request unauthenticated.
type Session interface {
	Token(ctx context.Context) (string, error)
}

// StaticToken is a Session wrapping a fixed token.
type StaticToken string

func (t StaticToken) Token(ctx context.Context) (string, error) {
	return string(t), nil
}

// APIError is the single error shape for every failed call.
type APIError struct {
	Status      int               `json:"status"`
	Code        string            `json:"code"`
	Message     string            `json:"message"`
	FieldErrors map[string]string `json:"field_errors,omitempty"`
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("paycycle: %s (%d %s)", e.Message, e.Status, e.Code)
	}
	return fmt.Sprintf("paycycle: %s (%d)", e.Message, e.Status)
}

// IsNotFound reports whether err is an *APIError with status 404.
func IsNotFound(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Status == http.StatusNotFound
}

// IsConflict reports whether err is an *APIError with status 409.
func IsConflict(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Status == http.StatusConflict
}

type Client struct {
	baseURL *url.URL
	http    *http.Client
	session Session

	onUnauthorized func()
	onForbidden    func()
}

type Option func(*Client)

// WithHTTPClient replaces the underlying transport. Redirect suppression is
// applied on top of whatever client is supplied.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithSession sets the token provider.
func WithSession(s Session) Option {
	return func(c *Client) { c.session = s }
}

// OnUnauthorized registers a callback invoked whenever the server answers
// 401, typically to clear the session and bounce to login.
func OnUnauthorized(fn func()) Option {
	return func(c *Client) { c.onUnauthorized = fn }
}

// OnForbidden registers a callback invoked on 403 responses.
func OnForbidden(fn func()) Option {
	return func(c *Client) { c.onForbidden = fn }
}

func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	c := &Client{
		baseURL: u,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}

	// The API never redirects; a redirect means a misconfigured base URL
	// and following it could leak the bearer token to another host.
	c.http.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}

	return c, nil
}

// envelope mirrors the server response shape.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details,omitempty"`
	} `json:"error"`
	Meta *Meta `json:"meta"`
}

// Meta carries pagination info on list responses.
type Meta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalItems int64 `json:"total_items"`
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.String()+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	if c.session != nil {
		token, err := c.session.Token(ctx)
		if err != nil {
			return nil, fmt.Errorf("session token: %w", err)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	return req, nil
}

// do sends the request and decodes the envelope into out. out may be nil for
// operations whose payload the caller does not need.
func (c *Client) do(req *http.Request, out any) (*Meta, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
	case http.StatusForbidden:
		if c.onForbidden != nil {
			c.onForbidden()
		}
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, &APIError{
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("malformed response: %v", err),
		}
	}

	if !env.Success || resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode, Message: env.Message}
		if env.Error != nil {
			apiErr.Code = env.Error.Code
			apiErr.Message = env.Error.Message
			apiErr.FieldErrors = env.Error.Details
		}
		return nil, apiErr
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return nil, &APIError{
				Status:  resp.StatusCode,
				Message: fmt.Sprintf("malformed response data: %v", err),
			}
		}
	}

	return env.Meta, nil
}

func (c *Client) get(ctx context.Context, path string, out any) (*Meta, error) {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	return c.do(req, out)
}

func (c *Client) send(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := c.newRequest(ctx, method, path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	_, err = c.do(req, out)
	return err
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.send(ctx, http.MethodPost, path, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.send(ctx, http.MethodPut, path, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.send(ctx, http.MethodDelete, path, nil, nil)
}

// query builds an encoded query string, skipping empty values.
func query(pairs map[string]string) string {
	values := url.Values{}
	for k, v := range pairs {
		if v != "" {
			values.Set(k, v)
		}
	}
	if len(values) == 0 {
		return ""
	}
	return "?" + values.Encode()
}
