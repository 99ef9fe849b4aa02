package api

import (
	"context"
	"net/http"

	"holidaze/internal/entities"
	apierrors "holidaze/internal/errors"
)

// Login exchanges credentials for a bearer token and identity. The
// returned session is not stored; that is the session store's job.
func (c *Client) Login(ctx context.Context, req entities.LoginRequest) (entities.Session, error) {
	if err := entities.ValidateRequest(req); err != nil {
		return entities.Session{}, apierrors.Validation(err.Error())
	}
	var payload struct {
		Name        string `json:"name"`
		Email       string `json:"email"`
		AccessToken string `json:"accessToken"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, req, &payload, "login failed"); err != nil {
		return entities.Session{}, err
	}
	return entities.Session{
		Token: payload.AccessToken,
		User:  entities.UserIdentity{Name: payload.Name, Email: payload.Email},
	}, nil
}

// Register creates a new user account. The caller must log in separately
// afterwards.
func (c *Client) Register(ctx context.Context, req entities.RegisterRequest) (*entities.Profile, error) {
	if err := entities.ValidateRequest(req); err != nil {
		return nil, apierrors.Validation(err.Error())
	}
	var profile entities.Profile
	if err := c.do(ctx, http.MethodPost, "/auth/register", nil, req, &profile, "registration failed"); err != nil {
		return nil, err
	}
	return &profile, nil
}
