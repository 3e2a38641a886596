// Package client talks to the KeuzeKompas API and keeps the caller's
// session and favorite set in memory.
package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sbilibin2017/keuzekompas/internal/logger"
	"github.com/sbilibin2017/keuzekompas/internal/models"
)

// APIError is a non-2xx answer from the server.
type APIError struct {
	Status  int
	Message string
	Fields  map[string]string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// IsStatus reports whether err is an *APIError with the given status.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.SetTimeout(d)
	}
}

// WithRetries retries failed requests count times.
func WithRetries(count int) Option {
	return func(c *Client) {
		c.http.SetRetryCount(count)
	}
}

// Client is safe for concurrent use.
type Client struct {
	http  *resty.Client
	store SessionStore

	mu        sync.RWMutex
	session   *Session
	favorites map[int64]struct{}
}

// New creates a client for baseURL and restores a stored session, if any.
func New(baseURL string, store SessionStore, opts ...Option) (*Client, error) {
	c := &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetHeader("Accept", "application/json").
			SetTimeout(10 * time.Second),
		store:     store,
		favorites: map[int64]struct{}{},
	}
	for _, opt := range opts {
		opt(c)
	}

	session, err := store.Load()
	switch {
	case errors.Is(err, ErrNoSession):
	case err != nil:
		return nil, err
	default:
		c.session = session
	}

	return c, nil
}

func (c *Client) token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.session == nil {
		return ""
	}
	return c.session.Token
}

// do sends one JSON request. result may be nil.
func (c *Client) do(ctx context.Context, method, path string, body, result any) error {
	req := c.http.R().
		SetContext(ctx).
		SetError(&models.ErrorResponse{})

	token := c.token()
	if token != "" {
		req.SetAuthToken(token)
	}
	if body != nil {
		req.SetBody(body)
	}
	if result != nil {
		req.SetResult(result)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	if resp.IsError() {
		apiErr := &APIError{Status: resp.StatusCode(), Message: http.StatusText(resp.StatusCode())}
		if body, ok := resp.Error().(*models.ErrorResponse); ok && body.Error != "" {
			apiErr.Message = body.Error
			apiErr.Fields = body.Fields
		}

		if apiErr.Status == http.StatusUnauthorized && token != "" {
			logger.Log.Infow("session rejected by server, logging out", "path", path)
			c.dropSession()
		}
		return apiErr
	}

	return nil
}

func (c *Client) setSession(session *Session) error {
	c.mu.Lock()
	c.session = session
	c.favorites = map[int64]struct{}{}
	c.mu.Unlock()

	return c.store.Save(session)
}

func (c *Client) dropSession() {
	c.mu.Lock()
	c.session = nil
	c.favorites = map[int64]struct{}{}
	c.mu.Unlock()

	if err := c.store.Clear(); err != nil {
		logger.Log.Errorw("failed to clear session", "error", err)
	}
}
