package service

import (
	"context"

	"holidaze/internal/entities"
	"holidaze/internal/session"
)

// Authenticator is the auth slice of the API client.
type Authenticator interface {
	Login(ctx context.Context, req entities.LoginRequest) (entities.Session, error)
	Register(ctx context.Context, req entities.RegisterRequest) (*entities.Profile, error)
}

// AuthService pairs the auth endpoints with the durable session store.
type AuthService struct {
	api      Authenticator
	sessions *session.Store
}

func NewAuthService(api Authenticator, sessions *session.Store) *AuthService {
	return &AuthService{api: api, sessions: sessions}
}

// Login authenticates and persists the resulting session.
func (s *AuthService) Login(ctx context.Context, email, password string) (entities.Session, error) {
	sess, err := s.api.Login(ctx, entities.LoginRequest{Email: email, Password: password})
	if err != nil {
		return entities.Session{}, err
	}
	if err := s.sessions.Login(sess); err != nil {
		return entities.Session{}, err
	}
	return sess, nil
}

// Register creates the account. No session is established; the user logs
// in with the new credentials afterwards.
func (s *AuthService) Register(ctx context.Context, req entities.RegisterRequest) (*entities.Profile, error) {
	return s.api.Register(ctx, req)
}

func (s *AuthService) Logout() error {
	return s.sessions.Logout()
}
