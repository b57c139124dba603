package preference

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_filePath(t *testing.T) {
	realOSUserConfigDir := osUserConfigDir
	realOSUserHomeDir := osUserHomeDir
	realOSMkdir := osMkdir
	t.Cleanup(func() {
		osUserConfigDir = realOSUserConfigDir
		osUserHomeDir = realOSUserHomeDir
		osMkdir = realOSMkdir
	})

	errUnitTest := errors.New("expected unit test error")

	existingUserConfigDir := t.TempDir()
	err := os.Mkdir(filepath.Join(existingUserConfigDir, "esimdash"), 0700)
	require.NoError(t, err)

	nonExistingUserConfigDir := filepath.Join(existingUserConfigDir, "not-exist")

	homeHasExistingDotDir := t.TempDir()
	err = os.Mkdir(filepath.Join(homeHasExistingDotDir, ".esimdash"), 0700)
	require.NoError(t, err)

	homeDoesNotHaveDotDir := t.TempDir()

	tests := []struct {
		name              string
		mockUserConfigDir func() (string, error)
		mockUserHomeDir   func() (string, error)
		mockMkdir         func(string, os.FileMode) error
		wantPath          string
		wantErr           error
	}{
		{
			name: "failed to get user config dir",
			mockUserConfigDir: func() (string, error) {
				return "", errUnitTest
			},
			wantPath: "",
			wantErr:  fmt.Errorf("failed to get user config dir: %w", errUnitTest),
		},
		{
			name: "esimdash folder exists in os user config dir",
			mockUserConfigDir: func() (string, error) {
				return existingUserConfigDir, nil
			},
			wantPath: filepath.Join(existingUserConfigDir, "esimdash", "preference.json"),
			wantErr:  nil,
		},
		{
			name: "failed to get user home dir",
			mockUserConfigDir: func() (string, error) {
				return nonExistingUserConfigDir, nil
			},
			mockUserHomeDir: func() (string, error) {
				return "", errUnitTest
			},
			wantPath: "",
			wantErr:  fmt.Errorf("failed to get home dir: %w", errUnitTest),
		},
		{
			name: "failed to create .esimdash folder in home dir",
			mockUserConfigDir: func() (string, error) {
				return nonExistingUserConfigDir, nil
			},
			mockUserHomeDir: func() (string, error) {
				return homeDoesNotHaveDotDir, nil
			},
			mockMkdir: func(path string, mode os.FileMode) error {
				return errUnitTest
			},
			wantPath: "",
			wantErr: fmt.Errorf("failed to create directory %s: %w",
				filepath.Join(homeDoesNotHaveDotDir, ".esimdash"), errUnitTest),
		},
		{
			name: "successfully created .esimdash folder in home dir",
			mockUserConfigDir: func() (string, error) {
				return nonExistingUserConfigDir, nil
			},
			mockUserHomeDir: func() (string, error) {
				return homeDoesNotHaveDotDir, nil
			},
			mockMkdir: func(path string, mode os.FileMode) error {
				return os.Mkdir(path, mode)
			},
			wantPath: filepath.Join(homeDoesNotHaveDotDir, ".esimdash", "preference.json"),
			wantErr:  nil,
		},
		{
			name: ".esimdash folder already exists in home dir",
			mockUserConfigDir: func() (string, error) {
				return nonExistingUserConfigDir, nil
			},
			mockUserHomeDir: func() (string, error) {
				return homeHasExistingDotDir, nil
			},
			wantPath: filepath.Join(homeHasExistingDotDir, ".esimdash", "preference.json"),
			wantErr:  nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			osUserConfigDir = test.mockUserConfigDir
			osUserHomeDir = test.mockUserHomeDir
			osMkdir = test.mockMkdir

			gotPath, err := filePath()
			assert.Equal(t, test.wantPath, gotPath)
			assert.Equal(t, test.wantErr, err)
		})
	}
}

func Test_fileOrPathExists(t *testing.T) {
	tests := []struct {
		name  string
		given string
		want  bool
	}{
		{
			name:  "happy path",
			given: t.TempDir(),
			want:  true,
		},
		{
			name:  "not exist",
			given: "file-not-exist",
			want:  false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, fileOrPathExists(test.given))
		})
	}
}

func useTempHome(t *testing.T) string {
	t.Helper()
	realOSUserConfigDir := osUserConfigDir
	realOSUserHomeDir := osUserHomeDir
	realOSMkdir := osMkdir
	t.Cleanup(func() {
		osUserConfigDir = realOSUserConfigDir
		osUserHomeDir = realOSUserHomeDir
		osMkdir = realOSMkdir
	})

	home := t.TempDir()
	osUserConfigDir = func() (string, error) { return filepath.Join(home, ".config"), nil }
	osUserHomeDir = func() (string, error) { return home, nil }
	osMkdir = os.Mkdir
	return home
}

func Test_CreateOrUpdate(t *testing.T) {
	home := useTempHome(t)

	require.NoError(t, CreateOrUpdate("http://localhost:8000/", "admin"))
	require.NoError(t, CreateOrUpdate("https://esim.example.com", "ops"))

	assert.FileExists(t, filepath.Join(home, ".esimdash", "preference.json"))

	pref, err := Read()
	require.NoError(t, err)
	assert.Len(t, pref.Servers, 2)
	assert.Equal(t, "admin", pref.Server("http://localhost:8000").Username)
	assert.Equal(t, "ops", LastUsername("https://esim.example.com/"))
	assert.Equal(t, "", LastUsername("https://unknown.example.com"))

	recent := pref.RecentlyUsedServers(1)
	require.Len(t, recent, 1)
	assert.Equal(t, "https://esim.example.com", recent[0].URL)
}

func Test_CreateOrUpdate_emptyURL(t *testing.T) {
	useTempHome(t)
	assert.EqualError(t, CreateOrUpdate("", "admin"), "WARNING: api url is empty")
}

func Test_Read_corruptFile(t *testing.T) {
	home := useTempHome(t)
	dir := filepath.Join(home, ".esimdash")
	require.NoError(t, os.Mkdir(dir, 0700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "preference.json"), []byte("{not json"), 0600))

	pref, err := Read()
	require.Error(t, err)
	assert.NotNil(t, pref)
	assert.Empty(t, pref.Servers)
}
