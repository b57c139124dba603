package varsource

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

type envUpstream struct{}

func (envUpstream) lookup(_ context.Context, name string) (string, error) {
	if value := os.Getenv(name); value != "" {
		return value, nil
	}
	return "", errors.Errorf("environment variable %s is not set", name)
}

type fileUpstream struct{}

var userHomeDir = os.UserHomeDir

// lookup returns the file contents without the trailing newline.
func (fileUpstream) lookup(_ context.Context, path string) (string, error) {
	if strings.HasPrefix(path, "~/") {
		home, err := userHomeDir()
		if err != nil {
			return "", errors.Wrap(err, "failed to find home directory")
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~/"))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read %s", path)
	}
	return strings.TrimSuffix(strings.TrimSuffix(string(data), "\n"), "\r"), nil
}
