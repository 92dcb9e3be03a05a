package main

import (
	"context"
	"fmt"
	"os"

	"web420-api/internal/config"
	"web420-api/internal/db"
	"web420-api/internal/logger"
	composerrepo "web420-api/internal/repository/composer"
	teamrepo "web420-api/internal/repository/team"
	"web420-api/internal/seed"
	composersvc "web420-api/internal/service/composer"
	teamsvc "web420-api/internal/service/team"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	ctx := context.Background()
	store, closeStore, err := db.OpenStore(ctx, cfg, log)
	if err != nil {
		log.Fatalw("open store", "error", err)
	}
	defer func() { _ = closeStore(context.Background()) }()

	res, err := seed.Apply(ctx,
		composersvc.New(composerrepo.NewDocStore(store)),
		teamsvc.New(teamrepo.NewDocStore(store)),
	)
	if err != nil {
		log.Fatalw("seed apply", "error", err)
	}

	log.Infow("seed applied", "composers", res.Composers, "teams", res.Teams)
}
