package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"
)

const (
	profileDirName  = "store2070"
	profileFileName = "session.json"
)

// DefaultProfilePath returns ~/.config/store2070/session.json.
func DefaultProfilePath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", profileDirName, profileFileName), nil
}

// FileStore persists the session as JSON in a per-user profile file.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

type profile struct {
	AuthToken string `json:"auth_token"`
	IsAdmin   bool   `json:"is_admin"`
}

func (f *FileStore) Get() (Session, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Warn().Err(err).Str("path", f.path).Msg("failed to read session profile")
		}
		return Session{}, false
	}

	var p profile
	if err := json.Unmarshal(data, &p); err != nil {
		log.Warn().Err(err).Str("path", f.path).Msg("failed to parse session profile")
		return Session{}, false
	}

	s := Session{Token: p.AuthToken, IsAdmin: p.IsAdmin}
	if !s.Valid() {
		return Session{}, false
	}
	return s, true
}

func (f *FileStore) Set(s Session) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.write(s); err != nil {
		log.Warn().Err(err).Str("path", f.path).Msg("session not persisted")
	}
}

func (f *FileStore) write(s Session) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("failed to create profile directory: %w", err)
	}

	data, err := json.MarshalIndent(profile{AuthToken: s.Token, IsAdmin: s.IsAdmin}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session profile: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to replace session profile: %w", err)
	}
	return nil
}

func (f *FileStore) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warn().Err(err).Str("path", f.path).Msg("failed to remove session profile")
	}
}
