package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/esimdash/esimdash-cli/internal/files"
)

// FileStore keeps the token in a 0600 file, one line.
type FileStore struct {
	path string
}

// ensures FileStore implements Store at compile-time
var _ Store = (*FileStore)(nil)

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultTokenFile returns ~/.esimdash/token.
func DefaultTokenFile() (string, error) {
	dir, err := files.DotDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, TokenKey), nil
}

func (s *FileStore) Path() string { return s.path }

func (s *FileStore) Get() (string, error) {
	if !files.Exists(s.path) {
		return "", ErrNoToken
	}
	content, err := files.ReadIntoString(s.path)
	if err != nil {
		return "", err
	}

	// only the newline written by Set is stripped
	token := strings.TrimSuffix(content, "\n")
	if token == "" {
		return "", ErrNoToken
	}
	return token, nil
}

func (s *FileStore) Set(token string) error {
	if err := files.EnsureDir(filepath.Dir(s.path)); err != nil {
		return err
	}
	if err := files.WriteStringToFile(s.path, token+"\n"); err != nil {
		return err
	}
	// WriteFile keeps the mode of an existing file
	if err := os.Chmod(s.path, 0600); err != nil {
		return fmt.Errorf("failed to chmod %s: %w", s.path, err)
	}
	return nil
}

func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove %s: %w", s.path, err)
	}
	return nil
}
