// Command setup creates the Postgres database when missing and applies the
// schema migrations. With STORAGE_BACKEND=sqlite it only migrates the file.
package main

import (
	"context"
	"fmt"
	"log"
	"net/url"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/Honoris27/Arena-of-Legends-sub000/internal/config"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/database"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/database/migrations"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/database/sqlite"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.StorageBackend == config.StorageBackendSQLite {
		store, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			log.Fatalf("Failed to open %s: %v", cfg.SQLitePath, err)
		}
		defer store.Close()
		fmt.Printf("SQLite database %s is migrated.\n", cfg.SQLitePath)
		return
	}

	if err := ensureDatabase(ctx, cfg); err != nil {
		log.Fatalf("%v", err)
	}

	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), database.PoolConfig{MaxConns: 2})
	if err != nil {
		log.Fatalf("Unable to connect to %s database: %v", cfg.DBName, err)
	}
	defer pool.Close()

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	fmt.Println("Running migrations...")
	if err := migrations.Up(ctx, db, migrations.Postgres); err != nil {
		log.Fatalf("Failed to migrate: %v", err)
	}
	version, err := migrations.Version(ctx, db, migrations.Postgres)
	if err != nil {
		log.Fatalf("Failed to read schema version: %v", err)
	}
	fmt.Printf("Migration completed successfully (version %d).\n", version)
}

// ensureDatabase connects to the maintenance database and creates cfg.DBName
// if it does not exist yet
func ensureDatabase(ctx context.Context, cfg *config.Config) error {
	u, err := url.Parse(cfg.GetDBConnString())
	if err != nil {
		return fmt.Errorf("parse connection string: %w", err)
	}
	u.Path = "/postgres"

	conn, err := pgx.Connect(ctx, u.String())
	if err != nil {
		return fmt.Errorf("unable to connect to postgres database: %w", err)
	}
	defer conn.Close(ctx)

	var exists bool
	err = conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", cfg.DBName).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check if database exists: %w", err)
	}
	if exists {
		fmt.Printf("Database %s already exists.\n", cfg.DBName)
		return nil
	}

	fmt.Printf("Creating database %s...\n", cfg.DBName)
	if _, err := conn.Exec(ctx, "CREATE DATABASE "+pgx.Identifier{cfg.DBName}.Sanitize()); err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	fmt.Println("Database created successfully.")
	return nil
}
