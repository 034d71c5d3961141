package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	httpadapter "crowdledger/internal/adapter/http"
	"crowdledger/internal/adapter/memory"
	"crowdledger/internal/adapter/postgres"
	"crowdledger/internal/adapter/scheduler"
	"crowdledger/internal/adapter/usecase"
	"crowdledger/internal/config"
	"crowdledger/internal/config/configs"
	"crowdledger/internal/core/port"
	"crowdledger/internal/db"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}
			if err = serve(cmd.Context(), cfg, logger); err != nil {
				logger.Error("serve failed", slog.Any("error", err))
				return err
			}
			return nil
		},
	}
}

// serve builds the ledger store and use case, starts the HTTP server and the
// optional sweeper, and blocks until SIGINT or SIGTERM. On shutdown the server
// drains within the configured timeout before the store is closed.
func serve(parent context.Context, cfg config.Config, logger *slog.Logger) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	token, err := cfg.Ledger.RewardToken()
	if err != nil {
		return fmt.Errorf("ledger config: %w", err)
	}
	repo, closeRepo, err := openRepository(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeRepo()

	svc := usecase.NewLedgerUseCase(repo, token, usecase.WithLogger(logger))

	if cfg.Ledger.Seed {
		if err = db.Seed(ctx, svc); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		logger.Info("demo data seeded")
	}

	if cfg.Sweep.Enabled {
		sweeper, err := scheduler.NewSweeper(svc, cfg.Sweep, logger)
		if err != nil {
			return err
		}
		sweeper.Start()
		defer func() {
			if err := sweeper.Stop(); err != nil {
				logger.Error("sweeper shutdown error", slog.Any("error", err))
			}
		}()
	}

	handler := httpadapter.NewHandler(svc, logger)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err = <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		return err
	}
	logger.Info("server gracefully stopped")
	return nil
}

// openRepository returns the configured ledger store and its close function.
func openRepository(ctx context.Context, cfg config.Config, logger *slog.Logger) (port.LedgerRepository, func(), error) {
	backend, err := cfg.Ledger.StoreBackend()
	if err != nil {
		return nil, nil, err
	}
	if backend == configs.StoreMemory {
		logger.Warn("using in-memory ledger store, state is lost on exit")
		return memory.NewLedgerRepository(), func() {}, nil
	}

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			return nil, nil, fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied successfully")
	}
	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection: %w", err)
	}
	return postgres.NewLedgerRepository(pool), pool.Close, nil
}
