// Package main provides the entry point for the sales dashboard HTTP server.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/festy23/sales_dashboard/internal/clock"
	"github.com/festy23/sales_dashboard/internal/config"
	dbConfig "github.com/festy23/sales_dashboard/internal/database/config"
	"github.com/festy23/sales_dashboard/internal/database/database"
	"github.com/festy23/sales_dashboard/internal/database/migrate"
	"github.com/festy23/sales_dashboard/internal/server"
	"github.com/festy23/sales_dashboard/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	loc, err := cfg.Reporting.Location()
	if err != nil {
		return err
	}

	dbCfg := dbConfig.LoadConfigFromEnv()
	if err := dbCfg.Validate(); err != nil {
		return fmt.Errorf("invalid database configuration: %w", err)
	}

	db, err := database.NewWithConfig(dbCfg, log)
	if err != nil {
		log.Errorw("Failed to connect to database", "driver", dbCfg.Driver, "error", err)
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Warnw("Failed to close database", "error", err)
		}
	}()

	if err := migrate.Migrate(db, dbCfg.Driver); err != nil {
		log.Errorw("Failed to apply migrations", "error", err)
		return err
	}
	log.Infow("Database ready", "driver", dbCfg.Driver, "report_timezone", loc.String())

	gin.SetMode(cfg.GinMode)
	router := server.NewRouter(server.Deps{
		DB:           db,
		Clock:        clock.System(loc),
		Location:     loc,
		Logger:       log,
		AllowOrigins: cfg.Server.AllowOrigins,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg.Server, router, log)
	if err := srv.Run(ctx); err != nil {
		log.Errorw("Server error", "error", err)
		return err
	}
	return nil
}
