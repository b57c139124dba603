package preference

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Read() (*Data, error) {
	data := NewData()

	pathToFile, err := filePath()
	if err != nil {
		return data, fmt.Errorf("failed to get preference file path: %w", err)
	}

	if !fileOrPathExists(pathToFile) {
		// first run; the file gets created on write
		return data, nil
	}

	jsonFile, err := os.Open(pathToFile)
	if err != nil {
		return data, fmt.Errorf("failed to open %s: %w", pathToFile, err)
	}
	defer jsonFile.Close()

	if err := json.NewDecoder(jsonFile).Decode(data); err != nil {
		return NewData(), fmt.Errorf("failed to decode %s: %w", pathToFile, err)
	}
	if data.Servers == nil {
		data.Servers = make(map[string]Server)
	}

	return data, nil
}

func Write(data *Data) error {
	pathToFile, err := filePath()
	if err != nil {
		return fmt.Errorf("failed to get preference file path: %w", err)
	}

	encoded, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", pathToFile, err)
	}
	if err := os.WriteFile(pathToFile, append(encoded, '\n'), 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", pathToFile, err)
	}

	return nil
}

var (
	osUserConfigDir = os.UserConfigDir
	osUserHomeDir   = os.UserHomeDir
	osMkdir         = os.Mkdir
)

// filePath prefers $XDG_CONFIG_HOME/esimdash/preference.json when that
// directory exists, and otherwise uses ~/.esimdash/preference.json next to
// the token file.
func filePath() (string, error) {
	userConfigDir, err := osUserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config dir: %w", err)
	}

	configDir := filepath.Join(userConfigDir, "esimdash")
	if fileOrPathExists(configDir) {
		return filepath.Join(configDir, "preference.json"), nil
	}

	home, err := osUserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home dir: %w", err)
	}

	dotDir := filepath.Join(home, ".esimdash")
	if !fileOrPathExists(dotDir) {
		if err := osMkdir(dotDir, 0700); err != nil {
			return "", fmt.Errorf("failed to create directory %s: %w", dotDir, err)
		}
	}

	return filepath.Join(dotDir, "preference.json"), nil
}

func fileOrPathExists(fileOrPath string) bool {
	_, err := os.Stat(fileOrPath)
	return !os.IsNotExist(err)
}

// CreateOrUpdate records username as the last login against apiURL.
func CreateOrUpdate(apiURL, username string) error {
	if apiURL == "" {
		return errors.New("WARNING: api url is empty")
	}

	pref, err := Read()
	if err != nil {
		return fmt.Errorf("WARNING: could not read preference file: %w", err)
	}

	server := pref.Server(apiURL)
	server.Username = username
	pref.SetServer(server)

	if err := Write(pref); err != nil {
		return fmt.Errorf("WARNING: could not update preference file: %w", err)
	}

	return nil
}

// LastUsername returns the username remembered for apiURL, if any.
func LastUsername(apiURL string) string {
	pref, err := Read()
	if err != nil {
		return ""
	}
	return pref.Server(apiURL).Username
}
