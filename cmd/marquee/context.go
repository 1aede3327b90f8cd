package main

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"marquee/internal/config"
	"marquee/internal/logging"
	"marquee/internal/movies"
	"marquee/internal/tmdb"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configPath string
	configSeen bool
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, resolved, exists, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = resolved
		c.configSeen = exists
	})
	return c.config, c.configErr
}

// browser builds the movie browsing service from the loaded configuration.
// CLI commands log warnings only, to stderr.
func (c *commandContext) browser(cmd *cobra.Command) (*movies.Service, *config.Config, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, nil, err
	}
	client, err := newTMDBClient(cfg)
	if err != nil {
		return nil, nil, err
	}
	svc := movies.NewService(client, c.logger(cmd, cfg), movies.Options{
		RequireEnrichment: cfg.Detail.RequireEnrichment,
		Sequential:        cfg.Detail.Sequential,
		MainCastSize:      cfg.Detail.MainCastSize,
	})
	return svc, cfg, nil
}

func newTMDBClient(cfg *config.Config) (*tmdb.Client, error) {
	return tmdb.New(cfg.TMDB.APIKey, cfg.TMDB.BaseURL, cfg.TMDB.Language,
		tmdb.WithTimeout(cfg.RequestTimeout()))
}

func (c *commandContext) logger(cmd *cobra.Command, cfg *config.Config) *slog.Logger {
	logger, err := logging.New(logging.Options{
		Level:  "warn",
		Format: cfg.Logging.Format,
		Writer: cmd.ErrOrStderr(),
	})
	if err != nil {
		return logging.NewNop()
	}
	return logger
}

// resolveLanguage returns the --lang flag value or the configured default.
func resolveLanguage(flag string, cfg *config.Config) string {
	if lang := strings.TrimSpace(flag); lang != "" {
		return lang
	}
	return cfg.TMDB.Language
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
