package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Search modes.
const (
	SearchModeStub   = "stub"
	SearchModeRemote = "remote"
)

// Config holds all athleten configuration.
type Config struct {
	API     APIConfig     `yaml:"api"`
	Search  SearchConfig  `yaml:"search"`
	Logging LoggingConfig `yaml:"logging"`
}

// APIConfig configures the athlete API client.
type APIConfig struct {
	URL       string `yaml:"url"`
	BaseURL   string `yaml:"base_url"` // web front end, used for login; derived from URL when empty
	Timeout   string `yaml:"timeout"`
	FormPath  string `yaml:"form_path"`
	AuthRoute string `yaml:"auth_route"`
}

// SearchConfig selects the athlete search backend.
type SearchConfig struct {
	Mode string `yaml:"mode"` // stub, remote
}

// LoggingConfig configures zap.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // used while the TUI owns the terminal
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		API: APIConfig{
			URL:       "https://jsonplaceholder.typicode.com",
			Timeout:   "30s",
			FormPath:  "/users",
			AuthRoute: "/auth",
		},
		Search: SearchConfig{Mode: SearchModeStub},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Dir returns ~/.athleten.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".athleten"), nil
}

// DefaultPath returns ~/.athleten/config.yaml.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// TokenPath returns ~/.athleten/token.
func TokenPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "token"), nil
}

// Load reads the config file at path over the defaults and applies
// environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}
	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("ATHLETEN_API_URL"); v != "" {
		c.API.URL = v
	}
	if v := os.Getenv("ATHLETEN_BASE_URL"); v != "" {
		c.API.BaseURL = v
	}
	if v := os.Getenv("ATHLETEN_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("ATHLETEN_SEARCH_MODE"); v != "" {
		c.Search.Mode = v
	}
}

// Validate checks values that cannot be defaulted.
func (c *Config) Validate() error {
	if c.API.URL == "" {
		return fmt.Errorf("config: api.url is required")
	}
	if _, err := c.TimeoutDuration(); err != nil {
		return err
	}
	switch c.Search.Mode {
	case SearchModeStub, SearchModeRemote:
	default:
		return fmt.Errorf("config: unknown search.mode %q (want %s or %s)", c.Search.Mode, SearchModeStub, SearchModeRemote)
	}
	return nil
}

// TimeoutDuration parses API.Timeout. Empty means 30s.
func (c *Config) TimeoutDuration() (time.Duration, error) {
	if c.API.Timeout == "" {
		return 30 * time.Second, nil
	}
	d, err := time.ParseDuration(c.API.Timeout)
	if err != nil {
		return 0, fmt.Errorf("config: api.timeout: %w", err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("config: api.timeout must be positive, got %s", d)
	}
	return d, nil
}

// LoginBaseURL returns the web base URL used for login. Without an explicit
// base_url it strips a leading "api." from the API host.
func (c *Config) LoginBaseURL() string {
	if c.API.BaseURL != "" {
		return strings.TrimRight(c.API.BaseURL, "/")
	}
	u := strings.TrimRight(c.API.URL, "/")
	for _, scheme := range []string{"https://", "http://"} {
		if strings.HasPrefix(u, scheme+"api.") {
			return scheme + strings.TrimPrefix(u, scheme+"api.")
		}
	}
	return u
}
