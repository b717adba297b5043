package api

import (
	"context"
	"net/http"

	"kampusgo.dev/kampussosyal/internal/model"
	"kampusgo.dev/kampussosyal/pkg/response"
)

type RegisterRequest struct {
	Username   string `json:"username"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Gender     string `json:"cinsiyet,omitempty"`
	University string `json:"universite,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates an account and stores the returned session.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*model.AuthPayload, error) {
	env, err := c.do(ctx, http.MethodPost, "/auth/register", nil, req)
	if err != nil {
		return nil, err
	}
	return c.storeAuth(env)
}

// Login authenticates and stores the returned session.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*model.AuthPayload, error) {
	env, err := c.do(ctx, http.MethodPost, "/auth/login", nil, req)
	if err != nil {
		return nil, err
	}
	return c.storeAuth(env)
}

// Logout drops the stored session. Purely local; the backend keeps no
// session state to invalidate.
func (c *Client) Logout() {
	if c.session != nil {
		c.session.Clear()
	}
}

// Me returns the authenticated user's profile.
func (c *Client) Me(ctx context.Context) (*model.User, error) {
	env, err := c.do(ctx, http.MethodGet, "/auth/me", nil, nil)
	if err != nil {
		return nil, err
	}
	var user model.User
	if err := env.Bind(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

// RefreshToken exchanges the current token for a fresh one and stores it.
func (c *Client) RefreshToken(ctx context.Context) (*model.AuthPayload, error) {
	env, err := c.do(ctx, http.MethodPost, "/auth/refresh-token", nil, nil)
	if err != nil {
		return nil, err
	}
	return c.storeAuth(env)
}

func (c *Client) ChangePassword(ctx context.Context, current, next string) error {
	body := map[string]string{"current_password": current, "new_password": next}
	_, err := c.do(ctx, http.MethodPost, "/auth/change-password", nil, body)
	return err
}

func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	_, err := c.do(ctx, http.MethodPost, "/auth/forgot-password", nil, map[string]string{"email": email})
	return err
}

func (c *Client) ResetPassword(ctx context.Context, token, newPassword string) error {
	body := map[string]string{"token": token, "new_password": newPassword}
	_, err := c.do(ctx, http.MethodPost, "/auth/reset-password", nil, body)
	return err
}

// storeAuth decodes an auth payload and persists its session pair.
func (c *Client) storeAuth(env *response.Envelope) (*model.AuthPayload, error) {
	var payload model.AuthPayload
	if err := env.Bind(&payload); err != nil {
		return nil, err
	}
	if c.session != nil && payload.Token != "" {
		c.session.SetToken(payload.Token)
		c.session.SetUser(userRecord(payload.User))
	}
	return &payload, nil
}
