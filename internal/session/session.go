// Package session keeps the login credential and the cached user profile in
// the state directory, under separate files, surviving restarts. Both are
// opaque blobs to the rest of the client.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/benittaafriyie-svg/acity-eats/internal/user"
)

type Session struct {
	tokenPath string
	userPath  string
}

func New(dir string) *Session {
	return &Session{
		tokenPath: filepath.Join(dir, "token"),
		userPath:  filepath.Join(dir, "user.json"),
	}
}

// SaveLogin stores the bearer token and the profile it came with.
func (s *Session) SaveLogin(token string, u user.User) error {
	if err := os.MkdirAll(filepath.Dir(s.tokenPath), 0o700); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	if err := os.WriteFile(s.tokenPath, []byte(token), 0o600); err != nil {
		return fmt.Errorf("write token: %w", err)
	}

	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}
	if err := os.WriteFile(s.userPath, data, 0o600); err != nil {
		return fmt.Errorf("write user: %w", err)
	}
	return nil
}

// Token returns the stored credential, or "" when not logged in. Implements
// client.TokenSource.
func (s *Session) Token() string {
	data, err := os.ReadFile(s.tokenPath)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// CurrentUser returns the cached profile, or nil when not logged in.
func (s *Session) CurrentUser() (*user.User, error) {
	data, err := os.ReadFile(s.userPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read user: %w", err)
	}

	var u user.User
	if err := json.Unmarshal(data, &u); err != nil {
		return nil, fmt.Errorf("unmarshal user: %w", err)
	}
	return &u, nil
}

// Logout removes both the credential and the cached profile.
func (s *Session) Logout() error {
	for _, p := range []string{s.tokenPath, s.userPath} {
		if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("remove %s: %w", p, err)
		}
	}
	return nil
}
