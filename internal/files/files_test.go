package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_DotDir(t *testing.T) {
	realOSUserHomeDir := osUserHomeDir
	t.Cleanup(func() {
		osUserHomeDir = realOSUserHomeDir
	})

	errUnitTest := errors.New("expected unit test error")
	home := t.TempDir()

	tests := []struct {
		name        string
		mockHomeDir func() (string, error)
		wantPath    string
		wantErr     error
	}{
		{
			name:        "failed to get home dir",
			mockHomeDir: func() (string, error) { return "", errUnitTest },
			wantErr:     fmt.Errorf("failed to get home dir: %w", errUnitTest),
		},
		{
			name:        "creates dot dir",
			mockHomeDir: func() (string, error) { return home, nil },
			wantPath:    filepath.Join(home, ".esimdash"),
		},
		{
			name:        "dot dir already exists",
			mockHomeDir: func() (string, error) { return home, nil },
			wantPath:    filepath.Join(home, ".esimdash"),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			osUserHomeDir = test.mockHomeDir

			got, err := DotDir()
			assert.Equal(t, test.wantErr, err)
			assert.Equal(t, test.wantPath, got)
			if test.wantErr == nil {
				assert.True(t, Exists(got))
			}
		})
	}
}

func Test_WriteAndRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")

	require.NoError(t, WriteStringToFile(path, "abc\n"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	got, err := ReadIntoString(path)
	require.NoError(t, err)
	assert.Equal(t, "abc\n", got)

	_, err = ReadIntoString(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
