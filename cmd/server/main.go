package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/YasserHifzy202/poultry-backend/internal/audit"
	"github.com/YasserHifzy202/poultry-backend/internal/config"
	"github.com/YasserHifzy202/poultry-backend/internal/logging"
	"github.com/YasserHifzy202/poultry-backend/internal/web"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("configuration loaded",
		"port", cfg.Server.Port,
		"max_file_size", cfg.Upload.MaxFileSize,
		"rate_limit_enabled", cfg.Rate.Enabled,
		"audit_enabled", cfg.Database.AuditEnabled(),
	)

	ctx := context.Background()

	// Audit trail is optional: without DATABASE_URL the service is stateless.
	var recorder audit.Recorder = audit.Noop{}
	if cfg.Database.AuditEnabled() {
		poolConfig, err := pgxpool.ParseConfig(cfg.Database.URL)
		if err != nil {
			slog.Error("failed to parse database URL", "error", err)
			os.Exit(1)
		}
		poolConfig.MaxConns = int32(cfg.Database.MaxConns)
		poolConfig.MaxConnLifetime = cfg.Database.MaxConnLifetime

		pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer pool.Close()

		if err := pool.Ping(ctx); err != nil {
			slog.Error("failed to ping database", "error", err)
			os.Exit(1)
		}

		pg, err := audit.NewPGRecorder(ctx, pool)
		if err != nil {
			slog.Error("failed to prepare audit table", "error", err)
			os.Exit(1)
		}
		recorder = pg
		slog.Info("analysis audit trail enabled")
	}

	server := web.NewServer(cfg, recorder)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	addr := cfg.Server.Addr()
	slog.Info("starting server", "addr", addr)
	if err := server.Start(addr); err != nil && err != http.ErrServerClosed {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}
