package files

import (
	"fmt"
	"os"
	"path/filepath"
)

const dotDirName = ".esimdash"

var osUserHomeDir = os.UserHomeDir

// DotDir returns the path to the .esimdash directory in the user's home directory.
// If the directory does not exist, it will be created.
func DotDir() (string, error) {
	home, err := osUserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home dir: %w", err)
	}

	dir := filepath.Join(home, dotDirName)
	if err := EnsureDir(dir); err != nil {
		return "", err
	}

	return dir, nil
}

// EnsureDir creates dir with 0700 permissions if it does not exist yet.
func EnsureDir(dir string) error {
	if Exists(dir) {
		return nil
	}
	// use 0700 to make sure the directory is only readable and writable by the user
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// Exists returns true if the file or path exists.
func Exists(fileOrPath string) bool {
	_, err := os.Stat(fileOrPath)
	return !os.IsNotExist(err)
}

// ReadIntoString reads the file at the given path and returns its content as a string.
func ReadIntoString(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return string(data), nil
}

// WriteStringToFile writes the given string data to the file at the given path.
func WriteStringToFile(path, data string) error {
	// use 0600 to make sure the file is only readable by the user
	if err := os.WriteFile(path, []byte(data), 0600); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}
