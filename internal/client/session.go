package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fothel/collectorvault/internal/models"
)

// Session is the client-side login state, passed explicitly to each
// command instead of living in package globals. It persists between CLI
// invocations as a JSON file.
type Session struct {
	BaseURL  string `json:"base_url"`
	Token    string `json:"access_token"`
	Role     string `json:"role"`
	Username string `json:"username"`
}

func DefaultSessionPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot resolve config dir: %w", err)
	}
	return filepath.Join(dir, "collectorvault", "session.json"), nil
}

// LoadSession returns an empty session when the file does not exist yet.
func LoadSession(path string) (*Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Session{}, nil
		}
		return nil, fmt.Errorf("read session: %w", err)
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse session: %w", err)
	}
	return &s, nil
}

func (s *Session) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

func (s *Session) Clear(path string) error {
	s.Token = ""
	s.Role = ""
	s.Username = ""
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
}

func (s *Session) LoggedIn() bool {
	return s.Token != ""
}

// IsAdmin is a menu hint only. The server re-checks the role on every
// admin call.
func (s *Session) IsAdmin() bool {
	return s.Role == models.RoleAdmin
}
