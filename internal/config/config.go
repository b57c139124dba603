package config

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/esimdash/esimdash-cli/internal/api"
	"github.com/esimdash/esimdash-cli/lib/varsource"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	KeyAPIURL       = "api_url"
	KeyListen       = "listen"
	KeyTokenFile    = "token_file"
	KeyCookieSecure = "cookie_secure"
	KeyTimeout      = "timeout"

	EnvPrefix     = "ESIMDASH"
	DefaultListen = "127.0.0.1:3000"
)

var ErrInvalidAPIURL = errors.New("api_url must be an absolute http(s) url")

type Config struct {
	APIURL       string        `mapstructure:"api_url"`
	Listen       string        `mapstructure:"listen"`
	TokenFile    string        `mapstructure:"token_file"`
	CookieSecure bool          `mapstructure:"cookie_secure"`
	Timeout      time.Duration `mapstructure:"timeout"`
}

func (c *Config) Validate() error {
	u, err := url.Parse(c.APIURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return ErrInvalidAPIURL
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	if c.Listen == "" {
		return fmt.Errorf("listen is required")
	}
	return nil
}

// New returns a viper instance with defaults and environment binding set up.
// Flags are bound by the caller.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyAPIURL, api.DefaultAPIURL)
	v.SetDefault(KeyListen, DefaultListen)
	v.SetDefault(KeyTokenFile, "")
	v.SetDefault(KeyCookieSecure, false)
	v.SetDefault(KeyTimeout, api.DefaultTimeout)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

var osUserHomeDir = os.UserHomeDir

// DefaultFile is ~/.esimdash/config.yml.
func DefaultFile() (string, error) {
	home, err := osUserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home dir: %w", err)
	}
	return filepath.Join(home, ".esimdash", "config.yml"), nil
}

// LoadDotEnv loads the given .env files, or ./.env when none are given.
// Missing files are skipped. Variables already set in the environment win.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); os.IsNotExist(err) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return nil
}

// ReadFile reads configFile into v. An empty configFile means the default
// location, which is allowed to be absent.
func ReadFile(v *viper.Viper, configFile string) error {
	explicit := configFile != ""
	if !explicit {
		def, err := DefaultFile()
		if err != nil {
			return err
		}
		if _, err := os.Stat(def); os.IsNotExist(err) {
			return nil
		}
		configFile = def
	}

	v.SetConfigType("yaml")
	v.SetConfigFile(configFile)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file %s: %w", configFile, err)
	}
	return nil
}

// Parse unmarshals v, resolves the api url through resolver and validates
// the result.
func Parse(ctx context.Context, v *viper.Viper, resolver varsource.Resolver) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if resolver != nil {
		apiURL, err := resolver.Resolve(ctx, cfg.APIURL)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s: %w", KeyAPIURL, err)
		}
		cfg.APIURL = apiURL
	}
	cfg.APIURL = strings.TrimSuffix(strings.TrimSpace(cfg.APIURL), "/")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
