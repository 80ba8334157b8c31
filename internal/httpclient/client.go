// Package httpclient wraps the portal API transport: it attaches the bearer
// credential to every request, reacts centrally to error responses and
// normalizes every failure into an *apperror.Error.
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/letsdodifferent/HCLTech/internal/apperror"
)

// TokenFunc supplies the stored bearer credential, or "" when none exists.
type TokenFunc func() string

// Option configures a Client.
type Option func(*Client)

// WithTokenFunc installs the credential source for the bearer middleware.
func WithTokenFunc(fn TokenFunc) Option {
	return func(c *Client) { c.token = fn }
}

// WithUnauthorized installs the hook run on any 401 response, after the
// wrapper has given up on the request. The hook is expected to clear the
// stored session and navigate to the login screen.
func WithUnauthorized(fn func()) Option {
	return func(c *Client) { c.onUnauthorized = fn }
}

// WithHTTPClient swaps the underlying http.Client (tests).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// Client is the single configured HTTP client all API calls go through.
type Client struct {
	baseURL        string
	http           *http.Client
	log            *zap.Logger
	token          TokenFunc
	onUnauthorized func()
}

// New builds a Client for the given API base URL.
func New(baseURL string, timeout time.Duration, log *zap.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     log,
		token:   func() string { return "" },
	}
	for _, opt := range opts {
		opt(c)
	}
	// Request middleware, innermost first: request id, then bearer attach.
	c.http.Transport = chain(c.http.Transport, requestID(), bearer(c))
	return c
}

// envelope is the response wrapper every portal endpoint uses.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Get issues a GET and decodes the envelope data into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post issues a POST with a JSON body and decodes the envelope data into out.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// Put issues a PUT with a JSON body and decodes the envelope data into out.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			c.log.Error("failed to encode request body", zap.String("path", path), zap.Error(err))
			return apperror.Validation("invalid request payload")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		c.log.Error("failed to build request", zap.String("path", path), zap.Error(err))
		return apperror.Network(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error("network error - no response from server",
			zap.String("method", method), zap.String("path", path), zap.Error(err))
		return apperror.Network(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Error("failed to read response body", zap.String("path", path), zap.Error(err))
		return apperror.Network(err)
	}

	var env envelope
	if len(raw) > 0 {
		// The message of malformed error bodies is simply absent; the
		// status alone decides what happens next.
		_ = json.Unmarshal(raw, &env)
	}

	if resp.StatusCode >= 400 {
		return c.handleError(method, path, resp.StatusCode, env.Message)
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			c.log.Error("failed to decode response data", zap.String("path", path), zap.Error(err))
			return apperror.FromStatus(resp.StatusCode, "")
		}
	}
	return nil
}

// handleError is the global response interceptor. A 401 tears down the
// stored session and forces navigation to login no matter which screen
// issued the request; the error still propagates to the caller.
func (c *Client) handleError(method, path string, status int, message string) error {
	apiErr := apperror.FromStatus(status, message)

	switch status {
	case http.StatusUnauthorized:
		c.log.Warn("unauthorized - clearing session",
			zap.String("method", method), zap.String("path", path))
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
	case http.StatusForbidden:
		c.log.Error("access forbidden", zap.String("path", path), zap.String("message", message))
	case http.StatusNotFound:
		c.log.Error("resource not found", zap.String("path", path), zap.String("message", message))
	default:
		if status >= 500 {
			c.log.Error("server error", zap.String("path", path), zap.Int("status", status), zap.String("message", message))
		} else {
			c.log.Error("api error", zap.String("path", path), zap.Int("status", status), zap.String("message", message))
		}
	}
	return apiErr
}
