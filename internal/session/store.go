package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"holidaze/internal/entities"
)

// Store holds the current session for the lifetime of the process and
// persists it across runs so a login survives a restart. The on-disk
// format is a JSON object with the token and user identity under two
// keys, cleared on logout.
type Store struct {
	path string

	mu  sync.Mutex
	cur *entities.Session
}

// DefaultPath resolves the session file location, honoring the
// HOLIDAZE_SESSION_FILE override.
func DefaultPath() (string, error) {
	if p := os.Getenv("HOLIDAZE_SESSION_FILE"); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving config dir: %w", err)
	}
	return filepath.Join(dir, "holidaze", "session.json"), nil
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load restores a persisted session. A missing file means logged out and
// is not an error.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading session file: %w", err)
	}
	var sess entities.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return fmt.Errorf("decoding session file: %w", err)
	}
	if sess.Token != "" {
		s.cur = &sess
	}
	return nil
}

// Login replaces the current session and persists it.
func (s *Store) Login(sess entities.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("creating session dir: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("writing session file: %w", err)
	}
	s.cur = &sess
	return nil
}

// Logout destroys the session in memory and on disk.
func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cur = nil
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing session file: %w", err)
	}
	return nil
}

// Current returns the live session, if any. A token carrying an expired
// exp claim is treated as no session; tokens without a readable claim
// are assumed live and left for the remote API to reject.
func (s *Store) Current() (entities.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cur == nil {
		return entities.Session{}, false
	}
	if tokenExpired(s.cur.Token) {
		return entities.Session{}, false
	}
	return *s.cur, true
}

// tokenExpired reads the exp claim without verifying the signature;
// signature verification is the remote API's job.
func tokenExpired(token string) bool {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return false
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
