// ABOUTME: Durable storage for the signed session token
// ABOUTME: Keeps a single token file in the XDG config directory

package credstore

import (
	"os"
	"path/filepath"
	"strings"
)

const tokenFile = "token"

// Store persists the one piece of durable client state: the signed token.
// It performs no validation; decode and expiry checks belong to the session
// manager.
type Store struct {
	configDir string
}

// New creates a store rooted at the given config directory.
func New(configDir string) *Store {
	return &Store{configDir: configDir}
}

// DefaultConfigDir returns the config directory following the XDG spec.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "campus")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "campus")
}

func (s *Store) tokenPath() string {
	return filepath.Join(s.configDir, tokenFile)
}

// Get returns the stored token, or false if none is stored.
func (s *Store) Get() (string, bool) {
	data, err := os.ReadFile(s.tokenPath())
	if err != nil {
		return "", false
	}
	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", false
	}
	return token, true
}

// Set writes the token to disk, creating the config directory if needed.
func (s *Store) Set(token string) error {
	if err := os.MkdirAll(s.configDir, 0700); err != nil {
		return err
	}
	return os.WriteFile(s.tokenPath(), []byte(token+"\n"), 0600)
}

// Clear removes the stored token. Clearing an absent token is not an error.
func (s *Store) Clear() error {
	err := os.Remove(s.tokenPath())
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
