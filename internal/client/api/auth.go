package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/contactkeeper/internal/client/models"
)

// Login authenticates with username and password and returns the server's
// token-and-user response. The credential is NOT stored here; the session
// manager owns that transition.
func (c *Client) Login(ctx context.Context, creds models.LoginCredentials) (*models.LoginResponse, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/auth/login", nil, creds)
	if err != nil {
		return nil, err
	}
	var out models.LoginResponse
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates an account. Same response shape as Login.
func (c *Client) Register(ctx context.Context, creds models.RegisterCredentials) (*models.LoginResponse, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/auth/register", nil, creds)
	if err != nil {
		return nil, err
	}
	var out models.LoginResponse
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Me probes the identity endpoint with the stored credential. Used by
// session bootstrap.
func (c *Client) Me(ctx context.Context) (*models.LoginResponse, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/auth/me", nil, nil)
	if err != nil {
		return nil, err
	}
	var out models.LoginResponse
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout notifies the backend that the session ended. Best-effort: callers
// treat failures as non-fatal.
func (c *Client) Logout(ctx context.Context) error {
	req, err := c.newRequest(ctx, http.MethodPost, "/auth/logout", nil, nil)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

// RequestPasswordReset starts the password-reset flow for email.
func (c *Client) RequestPasswordReset(ctx context.Context, reset models.PasswordReset) error {
	req, err := c.newRequest(ctx, http.MethodPost, "/auth/password-reset", nil, reset)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

// ChangePassword replaces the current user's password.
func (c *Client) ChangePassword(ctx context.Context, update models.PasswordUpdate) error {
	req, err := c.newRequest(ctx, http.MethodPut, "/auth/password", nil, update)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}
