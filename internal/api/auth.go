package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/chrisdamba/foodadmin/internal/models"
)

// AuthResult is the token and profile returned by login and register.
type AuthResult struct {
	Token string
	Admin models.Admin
}

func (c *Client) Login(ctx context.Context, creds models.Credentials) (*AuthResult, error) {
	env, err := c.do(ctx, http.MethodPost, "/api/auth/login", nil, creds, false)
	if err != nil {
		return nil, err
	}
	return authResult(env)
}

func (c *Client) Register(ctx context.Context, reg models.Registration) (*AuthResult, error) {
	env, err := c.do(ctx, http.MethodPost, "/api/auth/register", nil, reg, false)
	if err != nil {
		return nil, err
	}
	return authResult(env)
}

// Verify checks the current token and returns the admin it belongs to.
func (c *Client) Verify(ctx context.Context) (*models.Admin, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/auth/verify", nil, nil, true)
	if err != nil {
		return nil, err
	}
	var admin models.Admin
	if len(env.Admin) > 0 {
		if err := json.Unmarshal(env.Admin, &admin); err != nil {
			return nil, fmt.Errorf("decode admin profile: %w", err)
		}
	}
	return &admin, nil
}

func authResult(env *Envelope) (*AuthResult, error) {
	if env.Token == "" {
		return nil, fmt.Errorf("auth response carried no token")
	}
	res := &AuthResult{Token: env.Token}
	if len(env.Admin) > 0 {
		if err := json.Unmarshal(env.Admin, &res.Admin); err != nil {
			return nil, fmt.Errorf("decode admin profile: %w", err)
		}
	}
	return res, nil
}
