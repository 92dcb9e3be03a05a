package db

import (
	"context"
	"fmt"

	"web420-api/internal/config"
	"web420-api/internal/docstore"
	"web420-api/internal/migrate"

	"go.uber.org/zap"
)

// OpenStore connects the backend selected by cfg.Store.Driver and returns the
// store together with the function that releases its connections.
func OpenStore(ctx context.Context, cfg *config.Config, log *zap.SugaredLogger) (docstore.Store, func(context.Context) error, error) {
	switch cfg.Store.Driver {
	case config.DriverMongo:
		client, err := ConnectMongo(ctx, cfg.Mongo.URI, cfg.Mongo.ConnectTimeout)
		if err != nil {
			return nil, nil, err
		}
		log.Infow("mongo ready", "database", cfg.Mongo.Database)
		return docstore.NewMongo(client.Database(cfg.Mongo.Database), log), client.Disconnect, nil

	case config.DriverPostgres:
		pool, err := Connect(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConns)
		if err != nil {
			return nil, nil, fmt.Errorf("connect postgres: %w", err)
		}
		version, err := migrate.ApplyVersion(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("apply migrations: %w", err)
		}
		log.Infow("postgres ready", "schema_version", version)
		closeFn := func(context.Context) error {
			pool.Close()
			return nil
		}
		return docstore.NewPostgres(pool, log), closeFn, nil

	case config.DriverMemory:
		log.Warnw("using in-memory store; data is lost on exit")
		return docstore.NewMemory(), func(context.Context) error { return nil }, nil
	}
	return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
}
