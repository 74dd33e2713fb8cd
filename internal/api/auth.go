package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/minhtranvn/toystore/internal/errs"
	"github.com/minhtranvn/toystore/internal/model"
)

// AuthResult is the token + profile pair returned by login and register.
type AuthResult struct {
	Token    string
	Customer model.Customer
}

type authEnvelope struct {
	Token string         `json:"token"`
	User  model.Customer `json:"user"`
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (AuthResult, error) {
	body := map[string]string{"email": email, "password": password}
	var env authEnvelope
	// login itself carries no token
	if err := c.do(ctx, http.MethodPost, "/api/users/login", nil, jsonBody(body), "application/json", &env, false); err != nil {
		return AuthResult{}, err
	}
	return AuthResult{Token: env.Token, Customer: env.User}, nil
}

// Register creates an account and logs it in.
func (c *Client) Register(ctx context.Context, name, email, password string) (AuthResult, error) {
	body := map[string]string{"name": name, "email": email, "password": password}
	var env authEnvelope
	if err := c.do(ctx, http.MethodPost, "/api/users", nil, jsonBody(body), "application/json", &env, false); err != nil {
		return AuthResult{}, err
	}
	return AuthResult{Token: env.Token, Customer: env.User}, nil
}

// Profile fetches the calling customer's own record.
func (c *Client) Profile(ctx context.Context) (*model.Customer, error) {
	var env struct {
		User *model.Customer `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/users/profile", nil, nil, "", &env, true); err != nil {
		return nil, err
	}
	if env.User == nil {
		return nil, fmt.Errorf("user not found: %w", errs.ErrNotFound)
	}
	return env.User, nil
}

// ProfileUpdate carries optional profile changes; nil fields are left
// untouched by the server.
type ProfileUpdate struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Password *string `json:"password,omitempty"`
}

// UpdateProfile applies profile changes and returns the updated record.
func (c *Client) UpdateProfile(ctx context.Context, upd ProfileUpdate) (*model.Customer, error) {
	var env struct {
		User *model.Customer `json:"user"`
	}
	if err := c.send(ctx, http.MethodPut, "/api/users/profile", upd, &env); err != nil {
		return nil, err
	}
	if env.User == nil {
		return nil, fmt.Errorf("user not found: %w", errs.ErrNotFound)
	}
	return env.User, nil
}
