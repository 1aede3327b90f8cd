package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"

	"golang.org/x/text/language"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateTMDB(); err != nil {
		return err
	}
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateDetail(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateTMDB() error {
	if c.TMDB.APIKey == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			defaultPath = "~/.config/marquee/config.toml"
		}
		return fmt.Errorf("tmdb.api_key is required. Set TMDB_API_KEY env var, add API_KEY to .env, or edit %s (create with 'marquee config init')", defaultPath)
	}
	for field, raw := range map[string]string{"tmdb.base_url": c.TMDB.BaseURL, "tmdb.image_base_url": c.TMDB.ImageBaseURL} {
		parsed, err := url.Parse(raw)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("%s must be an absolute URL, got %q", field, raw)
		}
	}
	if _, err := language.Parse(c.TMDB.Language); err != nil {
		return fmt.Errorf("tmdb.language: invalid language tag %q", c.TMDB.Language)
	}
	for _, lang := range c.TMDB.Languages {
		if _, err := language.Parse(lang); err != nil {
			return fmt.Errorf("tmdb.languages: invalid language tag %q", lang)
		}
	}
	if c.TMDB.RequestTimeoutSeconds > maxTMDBRequestTimeoutSeconds {
		return fmt.Errorf("tmdb.request_timeout_seconds must be <= %d", maxTMDBRequestTimeoutSeconds)
	}
	return nil
}

func (c *Config) validateServer() error {
	if _, _, err := net.SplitHostPort(c.Server.Bind); err != nil {
		return fmt.Errorf("server.bind: %w", err)
	}
	return nil
}

func (c *Config) validateDetail() error {
	if c.Detail.MainCastSize > 50 {
		return errors.New("detail.main_cast_size must be <= 50")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
