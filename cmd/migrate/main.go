package main

import (
	"context"
	"fmt"
	"os"

	"web420-api/internal/config"
	"web420-api/internal/db"
	"web420-api/internal/logger"
	"web420-api/internal/migrate"
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

	if cfg.Store.Driver != config.DriverPostgres {
		log.Infow("nothing to migrate", "driver", cfg.Store.Driver)
		return
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConns)
	if err != nil {
		log.Fatalw("connect db", "error", err)
	}
	defer pool.Close()

	version, err := migrate.ApplyVersion(ctx, pool)
	if err != nil {
		log.Fatalw("apply migrations", "error", err)
	}

	log.Infow("migrations applied", "version", version)
}
