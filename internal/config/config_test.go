package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"marquee/internal/config"
)

// isolateEnv points HOME and the working directory at temp dirs and clears
// the API key variables so host settings never leak into a test.
func isolateEnv(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())
	for _, key := range []string{"TMDB_API_KEY", "API_KEY"} {
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("unset %s: %v", key, err)
		}
	}
	return home
}

func TestLoadDefaultConfigUsesEnvTMDBKeyAndExpandsPaths(t *testing.T) {
	home := isolateEnv(t)
	t.Setenv("TMDB_API_KEY", "test-key")

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if cfg.TMDB.APIKey != "test-key" {
		t.Fatalf("expected TMDB key from env, got %q", cfg.TMDB.APIKey)
	}
	if cfg.TMDB.BaseURL != "https://api.themoviedb.org/3" {
		t.Fatalf("unexpected TMDB base url: %q", cfg.TMDB.BaseURL)
	}
	if cfg.TMDB.Language != "fr-FR" {
		t.Fatalf("unexpected default language: %q", cfg.TMDB.Language)
	}
	if len(cfg.TMDB.Languages) != 2 || cfg.TMDB.Languages[0] != "fr-FR" {
		t.Fatalf("unexpected supported languages: %v", cfg.TMDB.Languages)
	}
	if cfg.Server.Bind != "127.0.0.1:8080" {
		t.Fatalf("unexpected bind: %q", cfg.Server.Bind)
	}
	if cfg.Detail.MainCastSize != 4 {
		t.Fatalf("unexpected main cast size: %d", cfg.Detail.MainCastSize)
	}
	if cfg.Detail.RequireEnrichment {
		t.Fatal("expected graceful enrichment by default")
	}
	if got := cfg.RequestTimeout().Seconds(); got != 10 {
		t.Fatalf("unexpected request timeout: %v", got)
	}

	wantLogDir := filepath.Join(home, ".local", "share", "marquee", "logs")
	if cfg.Paths.LogDir != wantLogDir {
		t.Fatalf("unexpected log dir: got %q want %q", cfg.Paths.LogDir, wantLogDir)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	for _, dir := range []string{cfg.Paths.LogDir, cfg.Paths.RuntimeDir} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Fatalf("expected directory %q to exist: %v", dir, err)
		}
		if !info.IsDir() {
			t.Fatalf("expected %q to be directory", dir)
		}
	}
	if filepath.Dir(cfg.LockPath()) != cfg.Paths.RuntimeDir {
		t.Fatalf("lock path %q not under runtime dir", cfg.LockPath())
	}
}

func TestLoadFallsBackToAPIKeyEnv(t *testing.T) {
	isolateEnv(t)
	t.Setenv("API_KEY", "  legacy-key ")

	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.TMDB.APIKey != "legacy-key" {
		t.Fatalf("expected API_KEY fallback, got %q", cfg.TMDB.APIKey)
	}
}

func TestLoadReadsDotEnvFile(t *testing.T) {
	isolateEnv(t)
	if err := os.WriteFile(".env", []byte("API_KEY=from-dotenv\n"), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.TMDB.APIKey != "from-dotenv" {
		t.Fatalf("expected key from .env, got %q", cfg.TMDB.APIKey)
	}
}

func TestLoadCustomPath(t *testing.T) {
	isolateEnv(t)
	configPath := filepath.Join(t.TempDir(), "marquee.toml")

	type payload struct {
		TMDB struct {
			APIKey    string   `toml:"api_key"`
			BaseURL   string   `toml:"base_url"`
			Language  string   `toml:"language"`
			Languages []string `toml:"languages"`
		} `toml:"tmdb"`
		Detail struct {
			RequireEnrichment bool `toml:"require_enrichment"`
			MainCastSize      int  `toml:"main_cast_size"`
		} `toml:"detail"`
		Logging struct {
			Format string `toml:"format"`
		} `toml:"logging"`
	}
	custom := payload{}
	custom.TMDB.APIKey = "abc123"
	custom.TMDB.BaseURL = "https://example.com/tmdb/"
	custom.TMDB.Language = "en-us"
	custom.TMDB.Languages = []string{"de-DE", "EN-US", "de-DE"}
	custom.Detail.RequireEnrichment = true
	custom.Detail.MainCastSize = 6
	custom.Logging.Format = "JSON"

	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != configPath {
		t.Fatalf("expected custom config to be used, got %q exists=%v", resolved, exists)
	}
	if cfg.TMDB.APIKey != "abc123" {
		t.Fatalf("unexpected api key: %q", cfg.TMDB.APIKey)
	}
	if cfg.TMDB.BaseURL != "https://example.com/tmdb" {
		t.Fatalf("expected trailing slash trimmed, got %q", cfg.TMDB.BaseURL)
	}
	if cfg.TMDB.Language != "en-US" {
		t.Fatalf("expected canonical language, got %q", cfg.TMDB.Language)
	}
	want := []string{"en-US", "de-DE"}
	if strings.Join(cfg.TMDB.Languages, ",") != strings.Join(want, ",") {
		t.Fatalf("unexpected languages: %v", cfg.TMDB.Languages)
	}
	if !cfg.Detail.RequireEnrichment || cfg.Detail.MainCastSize != 6 {
		t.Fatalf("unexpected detail settings: %+v", cfg.Detail)
	}
	if cfg.Logging.Format != "json" {
		t.Fatalf("expected normalized log format, got %q", cfg.Logging.Format)
	}
}

func TestLoadRequiresAPIKey(t *testing.T) {
	isolateEnv(t)

	_, _, _, err := config.Load("")
	if err == nil {
		t.Fatal("expected error when api key missing")
	}
	if !strings.Contains(err.Error(), "tmdb.api_key is required") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateRejectsInvalidSettings(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
		want   string
	}{
		{"language", func(c *config.Config) { c.TMDB.Language = "not a tag!" }, "tmdb.language"},
		{"base url", func(c *config.Config) { c.TMDB.BaseURL = "api.themoviedb.org" }, "tmdb.base_url"},
		{"bind", func(c *config.Config) { c.Server.Bind = "8080" }, "server.bind"},
		{"log format", func(c *config.Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"timeout", func(c *config.Config) { c.TMDB.RequestTimeoutSeconds = 600 }, "request_timeout_seconds"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.TMDB.APIKey = "key"
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error mentioning %q, got %v", tc.want, err)
			}
		})
	}
}

func TestCreateSampleLoads(t *testing.T) {
	isolateEnv(t)
	t.Setenv("TMDB_API_KEY", "sample-key")
	target := filepath.Join(t.TempDir(), "nested", "config.toml")

	if err := config.CreateSample(target); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	cfg, _, exists, err := config.Load(target)
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if !exists {
		t.Fatal("expected sample config to exist")
	}
	if cfg.TMDB.APIKey != "sample-key" {
		t.Fatalf("expected env key to fill empty sample key, got %q", cfg.TMDB.APIKey)
	}
}
