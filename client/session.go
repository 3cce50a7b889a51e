package client

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/bugtrack-simple/models"
)

// SessionState is the only client-persisted data: the bearer token and a
// user summary, enough to resume without logging in again.
type SessionState struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Session persists SessionState as JSON at a well-known path.
type Session struct {
	path string
}

// NewSession stores the session under the user config dir
// (e.g. ~/.config/bugtrack/session.json).
func NewSession() (*Session, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, err
	}
	return &Session{path: filepath.Join(configDir, "bugtrack", "session.json")}, nil
}

// NewSessionAt uses an explicit file path.
func NewSessionAt(path string) *Session {
	return &Session{path: path}
}

// Save writes the state, creating the parent directory when needed.
func (s *Session) Save(state SessionState) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	payload, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, payload, 0o600)
}

// Load reads the persisted state. ok is false when there is no session or
// it cannot be parsed.
func (s *Session) Load() (state SessionState, ok bool) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		return SessionState{}, false
	}
	if err := json.Unmarshal(payload, &state); err != nil {
		return SessionState{}, false
	}
	if state.Token == "" {
		return SessionState{}, false
	}
	return state, true
}

// Clear removes the persisted session.
func (s *Session) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
