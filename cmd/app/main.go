package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mwei-dev/CaseSim_Go/internal/collection"
	"github.com/mwei-dev/CaseSim_Go/internal/config"
	"github.com/mwei-dev/CaseSim_Go/internal/cooldown"
	"github.com/mwei-dev/CaseSim_Go/internal/database"
	"github.com/mwei-dev/CaseSim_Go/internal/database/postgres"
	"github.com/mwei-dev/CaseSim_Go/internal/draw"
	"github.com/mwei-dev/CaseSim_Go/internal/rarity"
	"github.com/mwei-dev/CaseSim_Go/internal/server"
	"github.com/mwei-dev/CaseSim_Go/internal/stats"
	"github.com/mwei-dev/CaseSim_Go/internal/trivia"
	"github.com/mwei-dev/CaseSim_Go/internal/user"
)

const (
	dbMaxConns      = 10
	dbMaxIdleTime   = 5 * time.Minute
	dbMaxLifetime   = 30 * time.Minute
	shutdownTimeout = 10 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)

	if err := database.Migrate(cfg.GetDBConnString()); err != nil {
		slog.Error("Migration failed", "error", err)
		os.Exit(1)
	}

	pool, err := database.NewPool(cfg.GetDBConnString(), dbMaxConns, dbMaxIdleTime, dbMaxLifetime)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	table, err := rarity.Load(cfg.RarityTablePath)
	if err != nil {
		slog.Error("Rarity table load failed", "error", err, "path", cfg.RarityTablePath)
		os.Exit(1)
	}

	policy := cooldown.NewPolicy(cfg.DrawCooldown)

	userRepo := postgres.NewUserRepository(pool)
	drawRepo := postgres.NewDrawRepository(pool, policy)
	collectionRepo := postgres.NewCollectionRepository(pool)
	statsRepo := postgres.NewStatsRepository(pool)

	userService := user.NewService(userRepo, cfg.SessionTTL)
	drawService := draw.NewService(drawRepo, table, draw.DefaultSource(), policy)
	collectionService := collection.NewService(collectionRepo)
	statsService := stats.NewService(statsRepo)

	triviaService, err := trivia.NewService(
		trivia.NewHTTPFetcher(cfg.TriviaEndpoint, 5*time.Second),
		cfg.TriviaCacheSize,
		cfg.TriviaPrefetchSize,
	)
	if err != nil {
		slog.Error("Trivia service setup failed", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go triviaService.Run(ctx)

	srv := server.NewServer(cfg.Port, nil, pool, userService, drawService, collectionService, statsService, triviaService)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
		return
	case <-ctx.Done():
		slog.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Server stopped")
}
