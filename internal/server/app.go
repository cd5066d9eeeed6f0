// Package server wires the sandbox billing service together: Postgres storage,
// the purchase-update broker, the gRPC billing endpoint and the HTTP checkout
// API.
package server

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/qrscanner/internal/logging"
	"github.com/dmitrijs2005/qrscanner/internal/server/config"
	"github.com/dmitrijs2005/qrscanner/internal/server/httpapi"
	"github.com/dmitrijs2005/qrscanner/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/qrscanner/internal/server/services"
	"github.com/dmitrijs2005/qrscanner/internal/server/updates"
	"golang.org/x/sync/errgroup"

	gs "github.com/dmitrijs2005/qrscanner/internal/server/grpc"
)

// Seams for tests.
var (
	openDB = func(dsn string) (*sql.DB, error) {
		return sql.Open("pgx", dsn)
	}
	newRepoManager = repomanager.NewPostgresRepositoryManager
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB
	broker  updates.Broker
	billing *services.BillingService
}

func NewApp(ctx context.Context, cfg *config.Config, logger logging.Logger) (*App, error) {
	db, err := openDB(cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := newRepoManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	broker, err := newBroker(ctx, cfg, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &App{
		config:  cfg,
		logger:  logger,
		db:      db,
		broker:  broker,
		billing: services.NewBillingService(db, rm, broker, cfg, logger),
	}, nil
}

// newBroker shares updates through Redis when a URL is configured and keeps
// them in process otherwise.
func newBroker(ctx context.Context, cfg *config.Config, logger logging.Logger) (updates.Broker, error) {
	if cfg.RedisURL == "" {
		logger.Info(ctx, "using in-memory purchase update broker")
		return updates.NewMemoryBroker(logger), nil
	}

	client, err := updates.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("redis init error: %w", err)
	}
	logger.Info(ctx, "using redis purchase update broker")
	return updates.NewRedisBroker(client, logger), nil
}

// Run serves gRPC and HTTP until ctx is done or either server fails.
func (app *App) Run(ctx context.Context) error {
	app.logger.Info(ctx, "Starting app...")

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return gs.NewGRPCServer(app.config.GRPCAddr, app.logger, app.billing).Run(ctx)
	})
	g.Go(func() error {
		return httpapi.NewServer(app.config.HTTPAddr, app.logger, app.billing).Run(ctx)
	})

	err := g.Wait()
	app.logger.Info(ctx, "App stopped")
	return err
}

func (app *App) Close() error {
	if err := app.broker.Close(); err != nil {
		app.logger.Warn(context.Background(), "broker close failed", "error", err)
	}
	return app.db.Close()
}
