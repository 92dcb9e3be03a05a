package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"web420-api/internal/config"
	"web420-api/internal/db"
	"web420-api/internal/httpserver"
	"web420-api/internal/logger"
	"web420-api/internal/password"
	composerrepo "web420-api/internal/repository/composer"
	customerrepo "web420-api/internal/repository/customer"
	personrepo "web420-api/internal/repository/person"
	teamrepo "web420-api/internal/repository/team"
	userrepo "web420-api/internal/repository/user"
	composersvc "web420-api/internal/service/composer"
	customersvc "web420-api/internal/service/customer"
	personsvc "web420-api/internal/service/person"
	sessionsvc "web420-api/internal/service/session"
	teamsvc "web420-api/internal/service/team"

	"github.com/gin-gonic/gin"
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

	if cfg.Logging.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()
	store, closeStore, err := db.OpenStore(ctx, cfg, log)
	if err != nil {
		log.Fatalw("open store", "driver", cfg.Store.Driver, "error", err)
	}
	defer func() {
		if err := closeStore(context.Background()); err != nil {
			log.Warnw("close store", "error", err)
		}
	}()

	hasher := password.New(cfg.Auth.BcryptCost)

	srv, err := httpserver.New(cfg.ServerAddr(), log, store, httpserver.Deps{
		Composers: composersvc.New(composerrepo.NewDocStore(store)),
		Persons:   personsvc.New(personrepo.NewDocStore(store)),
		Sessions:  sessionsvc.New(userrepo.NewDocStore(store), hasher),
		Customers: customersvc.New(customerrepo.NewDocStore(store)),
		Teams:     teamsvc.New(teamrepo.NewDocStore(store)),
	}, httpserver.Options{
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		AllowedOrigins:    cfg.CORS.AllowedOrigins,
	})
	if err != nil {
		log.Fatalw("init server", "error", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		log.Infow("shutting down", "signal", sig.String())
	case err := <-serverErr:
		log.Errorw("server error", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("graceful shutdown failed", "error", err)
	} else {
		log.Infow("server stopped")
	}
}
