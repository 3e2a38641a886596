package client

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/keuzekompas/internal/logger"
	"github.com/sbilibin2017/keuzekompas/internal/models"
)

// Register creates an account and keeps its session.
func (c *Client) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	var resp models.AuthResponse
	req := models.RegisterRequest{Name: name, Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/auth/register", req, &resp); err != nil {
		return nil, err
	}

	if err := c.setSession(&Session{Token: resp.Token, User: resp.User}); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// Login authenticates and keeps the session.
func (c *Client) Login(ctx context.Context, email, password string) (*models.User, error) {
	var resp models.AuthResponse
	req := models.LoginRequest{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", req, &resp); err != nil {
		return nil, err
	}

	if err := c.setSession(&Session{Token: resp.Token, User: resp.User}); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// Logout tells the server and forgets the session. The local session is
// dropped even when the server cannot be reached.
func (c *Client) Logout(ctx context.Context) error {
	if !c.IsLoggedIn() {
		return nil
	}

	if err := c.do(ctx, http.MethodPost, "/auth/logout", nil, nil); err != nil {
		logger.Log.Warnw("logout request failed", "error", err)
	}
	c.dropSession()
	return nil
}

// Profile fetches the current user and refreshes the stored copy.
func (c *Client) Profile(ctx context.Context) (*models.User, error) {
	var resp models.ProfileResponse
	if err := c.do(ctx, http.MethodGet, "/auth/profile", nil, &resp); err != nil {
		return nil, err
	}

	c.mu.Lock()
	var session *Session
	if c.session != nil {
		c.session.User = resp.User
		copied := *c.session
		session = &copied
	}
	c.mu.Unlock()

	if session != nil {
		if err := c.store.Save(session); err != nil {
			return nil, err
		}
	}
	return &resp.User, nil
}

func (c *Client) IsLoggedIn() bool {
	return c.token() != ""
}

// CurrentUser returns the user of the stored session.
func (c *Client) CurrentUser() (models.User, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.session == nil {
		return models.User{}, false
	}
	return c.session.User, true
}
