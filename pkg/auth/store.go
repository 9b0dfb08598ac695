// Package auth persists the backend access token between invocations.
package auth

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ayushnp/AlgoMinds-SuryaSaathi/pkg/errors"
)

// FileStore keeps the bearer token in a single file, readable only by the
// owning user. An absent file means not logged in, not an error.
type FileStore struct {
	path string
}

// NewFileStore creates a token store at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Save writes the token, creating parent directories as needed.
func (s *FileStore) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return errors.Wrap(err, "failed to create token dir")
	}
	if err := os.WriteFile(s.path, []byte(token), 0600); err != nil {
		return errors.Wrap(err, "failed to write token")
	}
	return nil
}

// Token returns the stored token, or empty when none is saved.
func (s *FileStore) Token() (string, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", errors.Wrap(err, "failed to read token")
	}
	return strings.TrimSpace(string(data)), nil
}

// Clear removes the stored token.
func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "failed to remove token")
	}
	return nil
}
