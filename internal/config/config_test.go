package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"ATHLETEN_API_URL", "ATHLETEN_BASE_URL", "ATHLETEN_LOG_LEVEL", "ATHLETEN_SEARCH_MODE"} {
		t.Setenv(k, "")
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `api:
  url: https://api.rudern.example
  timeout: 5s
search:
  mode: remote
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(data), 0600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.API.URL != "https://api.rudern.example" {
		t.Errorf("API.URL = %q", cfg.API.URL)
	}
	if cfg.API.FormPath != "/users" {
		t.Errorf("API.FormPath = %q, want default /users", cfg.API.FormPath)
	}
	if cfg.Search.Mode != SearchModeRemote {
		t.Errorf("Search.Mode = %q, want remote", cfg.Search.Mode)
	}
	if d, _ := cfg.TimeoutDuration(); d != 5*time.Second {
		t.Errorf("timeout = %v, want 5s", d)
	}
	if got := cfg.LoginBaseURL(); got != "https://rudern.example" {
		t.Errorf("LoginBaseURL() = %q", got)
	}
}

func TestEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("ATHLETEN_API_URL", "http://localhost:8080")
	t.Setenv("ATHLETEN_SEARCH_MODE", "remote")
	t.Setenv("ATHLETEN_LOG_LEVEL", "warn")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.API.URL != "http://localhost:8080" || cfg.Search.Mode != "remote" || cfg.Logging.Level != "warn" {
		t.Errorf("env not applied: %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"empty url", func(c *Config) { c.API.URL = "" }, true},
		{"bad timeout", func(c *Config) { c.API.Timeout = "soon" }, true},
		{"negative timeout", func(c *Config) { c.API.Timeout = "-1s" }, true},
		{"empty timeout", func(c *Config) { c.API.Timeout = "" }, false},
		{"unknown mode", func(c *Config) { c.Search.Mode = "magic" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadBadYAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	os.WriteFile(path, []byte("api: [nope"), 0600) //nolint:errcheck
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoginBaseURL(t *testing.T) {
	tests := []struct {
		url, base, want string
	}{
		{"https://api.rudern.example", "", "https://rudern.example"},
		{"http://api.localhost:9000/", "", "http://localhost:9000"},
		{"https://jsonplaceholder.typicode.com", "", "https://jsonplaceholder.typicode.com"},
		{"https://api.rudern.example", "https://web.example/", "https://web.example"},
	}
	for _, tt := range tests {
		cfg := Default()
		cfg.API.URL, cfg.API.BaseURL = tt.url, tt.base
		if got := cfg.LoginBaseURL(); got != tt.want {
			t.Errorf("LoginBaseURL(%q, %q) = %q, want %q", tt.url, tt.base, got, tt.want)
		}
	}
}
