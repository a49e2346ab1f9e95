package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"

	"skylift/config"
	"skylift/config/postgre"
	_ "skylift/docs" // Swagger docs
	"skylift/internal/deployment/logstream"
	"skylift/internal/httpserver"
	"skylift/pkg/log"
)

// @title       Skylift Control Plane API
// @description Deploy projects, attach managed PostgreSQL/Redis, manage variables, domains and logs.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Skylift control plane...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Edge zone: %s", cfg.Edge.Zone)

	// 3. Metadata store
	db, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer postgre.Disconnect(ctx, db)

	// 4. Managed Postgres cluster (optional; powers plugin provisioning)
	var adminDB *pgxpool.Pool
	if cfg.Managed.PostgresAdminURL != "" {
		adminDB, err = postgre.Connect(ctx, config.PostgresConfig{URL: cfg.Managed.PostgresAdminURL, MaxConns: 4})
		if err != nil {
			logger.Warnf(ctx, "Managed Postgres cluster unavailable (optional): %v", err)
			adminDB = nil
		} else {
			defer postgre.Disconnect(ctx, adminDB)
		}
	}

	// 5. HTTP Server
	srv, err := httpserver.New(httpserver.Config{
		Logger:  logger,
		Config:  cfg,
		DB:      db,
		AdminDB: adminDB,
		Hub:     logstream.NewHub(),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := srv.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
