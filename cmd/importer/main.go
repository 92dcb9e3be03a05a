package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"web420-api/internal/config"
	"web420-api/internal/db"
	"web420-api/internal/importer"
	"web420-api/internal/logger"
	teamrepo "web420-api/internal/repository/team"
	teamsvc "web420-api/internal/service/team"
)

func main() {
	var filePath string
	flag.StringVar(&filePath, "file", "", "Path to a team roster CSV")
	flag.Parse()

	if filePath == "" {
		flag.Usage()
		os.Exit(2)
	}

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

	f, err := os.Open(filePath)
	if err != nil {
		log.Fatalw("open file", "file", filePath, "error", err)
	}
	defer f.Close()

	imp := importer.NewCSVImporter(f, teamsvc.New(teamrepo.NewDocStore(store)))

	start := time.Now()
	count, err := imp.Run(ctx)
	if err != nil {
		log.Fatalw("import failed", "imported", count, "error", err)
	}

	log.Infow("import finished", "teams", count, "took", time.Since(start).Truncate(time.Millisecond).String())
}
