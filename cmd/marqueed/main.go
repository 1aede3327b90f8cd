package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"marquee/internal/config"
	"marquee/internal/daemon"
	"marquee/internal/logging"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, _, _, err := config.Load("")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		log.Fatalf("prepare directories: %v", err)
	}

	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}

	client, err := newTMDBClient(cfg)
	if err != nil {
		logger.Error("create tmdb client", logging.Error(err))
		os.Exit(1)
	}
	runPreflight(ctx, cfg, client, logger)

	d, err := daemon.New(cfg, buildHandler(cfg, client, logger), logger)
	if err != nil {
		logger.Error("create daemon", logging.Error(err))
		os.Exit(1)
	}
	defer d.Close()

	if err := d.Start(ctx); err != nil {
		logger.Error("daemon start", logging.Error(err))
		os.Exit(1)
	}

	d.Wait(ctx)
	logger.Info("marqueed shutting down")
}
