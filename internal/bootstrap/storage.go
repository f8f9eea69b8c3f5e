package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/stdlib"

	"github.com/Honoris27/Arena-of-Legends-sub000/internal/config"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/database"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/database/migrations"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/database/postgres"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/database/sqlite"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/handler"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/leaderboard"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/repository"
)

// Storage bundles the player store and the ladder read model chosen by config
type Storage struct {
	Players     repository.Player
	Leaderboard *leaderboard.CachedBoard
	Readiness   []handler.Pinger

	closers []func() error
}

// Close releases every connection opened by InitializeStorage, newest first
func (s *Storage) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil {
			slog.Error(LogMsgStorageCloseFailed, "error", err)
		}
	}
	s.closers = nil
}

// InitializeStorage opens the configured primary store, migrates it, and
// builds the leaderboard on top of it or on Redis
func InitializeStorage(ctx context.Context, cfg *config.Config) (*Storage, error) {
	s := &Storage{}
	var board repository.Leaderboard

	switch cfg.StorageBackend {
	case config.StorageBackendPostgres:
		pool, err := database.NewPool(ctx, cfg.GetDBConnString(), database.PoolConfig{MaxConns: cfg.DBMaxConns})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgOpenPostgres, err)
		}
		s.closers = append(s.closers, func() error { pool.Close(); return nil })

		db := stdlib.OpenDBFromPool(pool)
		err = migrations.Up(ctx, db, migrations.Postgres)
		_ = db.Close()
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgMigratePostgres, err)
		}

		s.Players = postgres.NewPlayerRepository(pool)
		s.Readiness = append(s.Readiness, pool)
		board = postgres.NewLeaderboardRepository(pool)

	case config.StorageBackendSQLite:
		store, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgOpenSQLite, err)
		}
		s.closers = append(s.closers, store.Close)
		s.Players = store
		s.Readiness = append(s.Readiness, store)
		board = store

	default:
		return nil, fmt.Errorf(ErrMsgUnknownBackendFmt, "storage", cfg.StorageBackend)
	}
	slog.Info(LogMsgStorageReady, "backend", cfg.StorageBackend)

	if cfg.LeaderboardBackend == config.LeaderboardBackendRedis {
		rdb, err := leaderboard.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgOpenRedis, err)
		}
		s.closers = append(s.closers, rdb.Close)
		redisBoard := leaderboard.NewRedisBoard(rdb, "")
		s.Readiness = append(s.Readiness, redisBoard)
		board = redisBoard
	}

	s.Leaderboard = leaderboard.NewCachedBoard(board, LeaderboardCacheSize, cfg.LeaderboardCacheTTL)
	slog.Info(LogMsgLeaderboardReady, "backend", cfg.LeaderboardBackend, "cache_ttl", cfg.LeaderboardCacheTTL)

	return s, nil
}
