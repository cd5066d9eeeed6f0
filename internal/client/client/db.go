package client

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/qrscanner/internal/client/migrations"
	"github.com/dmitrijs2005/qrscanner/internal/client/repositories/preferences"
	"github.com/dmitrijs2005/qrscanner/internal/client/repositories/scans"
	"github.com/pressly/goose/v3"
)

// Repositories bundles the local stores opened once per process.
type Repositories struct {
	Scans       scans.Repository
	Preferences preferences.Repository
	DB          *sql.DB
}

func (r *Repositories) Close() error {
	return r.DB.Close()
}

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

func InitDatabase(ctx context.Context, dsn string) (*Repositories, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// SQLite allows a single writer; serialising connections also keeps
	// ":memory:" databases shared.
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	repos := &Repositories{
		Scans:       scans.NewSQLiteRepository(db),
		Preferences: preferences.NewSQLiteRepository(db),
		DB:          db,
	}
	return repos, nil
}
