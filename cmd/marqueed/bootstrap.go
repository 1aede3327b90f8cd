package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"marquee/internal/config"
	"marquee/internal/logging"
	"marquee/internal/movies"
	"marquee/internal/preflight"
	"marquee/internal/tmdb"
	"marquee/internal/web"
)

func newTMDBClient(cfg *config.Config) (*tmdb.Client, error) {
	client, err := tmdb.New(cfg.TMDB.APIKey, cfg.TMDB.BaseURL, cfg.TMDB.Language,
		tmdb.WithTimeout(cfg.RequestTimeout()))
	if err != nil {
		return nil, fmt.Errorf("tmdb client: %w", err)
	}
	return client, nil
}

// buildHandler wires the browsing service and web front-end around client.
func buildHandler(cfg *config.Config, client *tmdb.Client, logger *slog.Logger) http.Handler {
	svc := movies.NewService(client, logger, movies.Options{
		RequireEnrichment: cfg.Detail.RequireEnrichment,
		Sequential:        cfg.Detail.Sequential,
		MainCastSize:      cfg.Detail.MainCastSize,
	})
	return web.NewServer(web.Options{
		Images:          tmdb.NewImageURLs(cfg.TMDB.ImageBaseURL),
		DefaultLanguage: cfg.TMDB.Language,
		Languages:       cfg.TMDB.Languages,
	}, svc, logger)
}

// runPreflight logs failing readiness checks without blocking startup.
func runPreflight(ctx context.Context, cfg *config.Config, client *tmdb.Client, logger *slog.Logger) int {
	failed := preflight.Failed(preflight.RunAll(ctx, cfg, client))
	for _, result := range failed {
		logger.Warn("preflight check failed",
			logging.String("check", result.Name),
			logging.String("detail", result.Detail),
			logging.String(logging.FieldEventType, "preflight_failed"),
		)
	}
	return len(failed)
}
