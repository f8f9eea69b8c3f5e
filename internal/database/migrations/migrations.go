// Package migrations embeds the schema for every supported storage backend
// and applies it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"

	"github.com/Honoris27/Arena-of-Legends-sub000/internal/logger"
)

//go:embed postgres/*.sql sqlite/*.sql
var files embed.FS

// Dialect names a schema flavour
type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite"
)

// FS returns the migration files for dialect
func FS(d Dialect) (fs.FS, error) {
	switch d {
	case Postgres, SQLite:
		return fs.Sub(files, string(d))
	default:
		return nil, fmt.Errorf("unknown migration dialect %q", d)
	}
}

func newProvider(db *sql.DB, d Dialect) (*goose.Provider, error) {
	fsys, err := FS(d)
	if err != nil {
		return nil, err
	}
	gd := goose.DialectPostgres
	if d == SQLite {
		gd = goose.DialectSQLite3
	}
	p, err := goose.NewProvider(gd, db, fsys)
	if err != nil {
		return nil, fmt.Errorf("create migration provider: %w", err)
	}
	return p, nil
}

// Up applies every pending migration
func Up(ctx context.Context, db *sql.DB, d Dialect) error {
	p, err := newProvider(db, d)
	if err != nil {
		return err
	}
	results, err := p.Up(ctx)
	if err != nil {
		return fmt.Errorf("apply %s migrations: %w", d, err)
	}
	log := logger.FromContext(ctx)
	for _, r := range results {
		log.Info("Applied migration", "dialect", d, "version", r.Source.Version, "duration", r.Duration)
	}
	return nil
}

// Down rolls back the most recent migration
func Down(ctx context.Context, db *sql.DB, d Dialect) error {
	p, err := newProvider(db, d)
	if err != nil {
		return err
	}
	if _, err := p.Down(ctx); err != nil {
		return fmt.Errorf("roll back %s migration: %w", d, err)
	}
	return nil
}

// Version returns the current schema version
func Version(ctx context.Context, db *sql.DB, d Dialect) (int64, error) {
	p, err := newProvider(db, d)
	if err != nil {
		return 0, err
	}
	return p.GetDBVersion(ctx)
}
