// Package sqlite provides a single-file storage backend for players and the
// ladder, used for local play and tests.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/Honoris27/Arena-of-Legends-sub000/internal/database/migrations"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/domain"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/repository"
)

// timeLayout sorts lexically in the same order as the instants it encodes
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// Store persists player snapshots in SQLite
type Store struct {
	db *sql.DB
}

// Open opens the database at path and applies the embedded migrations
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("sqlite path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// one writer avoids SQLITE_BUSY between the saver and the worker
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := migrations.Up(ctx, db, migrations.SQLite); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close closes the database handle
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Ping reports whether the database answers
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func (s *Store) Load(ctx context.Context, playerID string) (*domain.Player, error) {
	var raw string
	err := s.db.QueryRowContext(ctx, `SELECT snapshot FROM players WHERE player_id = ?`, playerID).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrPlayerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load player %s: %w", playerID, err)
	}
	var p domain.Player
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, fmt.Errorf("decode player %s: %w", playerID, err)
	}
	return &p, nil
}

func (s *Store) Save(ctx context.Context, p *domain.Player, wins int) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode player %s: %w", p.ID, err)
	}
	var activityEnd sql.NullString
	if p.Activity != nil {
		activityEnd = sql.NullString{String: formatTime(p.Activity.EndTime), Valid: true}
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO players (player_id, name, avatar, level, ladder_rank, wins, activity_end, snapshot, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (player_id) DO UPDATE SET
			name = excluded.name,
			avatar = excluded.avatar,
			level = excluded.level,
			ladder_rank = excluded.ladder_rank,
			wins = excluded.wins,
			activity_end = excluded.activity_end,
			snapshot = excluded.snapshot,
			updated_at = excluded.updated_at
	`, p.ID, p.Name, p.Avatar, p.Level, p.Rank, wins, activityEnd, string(raw),
		formatTime(p.CreatedAt), formatTime(p.UpdatedAt))
	if err != nil {
		return fmt.Errorf("save player %s: %w", p.ID, err)
	}
	return nil
}

func (s *Store) ListPendingActivities(ctx context.Context) ([]repository.PendingActivity, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT player_id, snapshot FROM players
		WHERE activity_end IS NOT NULL
		ORDER BY activity_end
	`)
	if err != nil {
		return nil, fmt.Errorf("list pending activities: %w", err)
	}
	defer rows.Close()

	out := make([]repository.PendingActivity, 0)
	for rows.Next() {
		var id, raw string
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, fmt.Errorf("list pending activities: %w", err)
		}
		var p domain.Player
		if err := json.Unmarshal([]byte(raw), &p); err != nil {
			return nil, fmt.Errorf("decode player %s: %w", id, err)
		}
		if p.Activity == nil {
			continue
		}
		out = append(out, repository.PendingActivity{PlayerID: id, Activity: *p.Activity})
	}
	return out, rows.Err()
}

func (s *Store) MaxRank(ctx context.Context) (int, error) {
	var top int
	if err := s.db.QueryRowContext(ctx, `SELECT COALESCE(MAX(ladder_rank), 0) FROM players`).Scan(&top); err != nil {
		return 0, fmt.Errorf("read max rank: %w", err)
	}
	return top, nil
}

const ladderColumns = `player_id, ladder_rank, name, level, wins, avatar`

func (s *Store) TopN(ctx context.Context, n int) ([]domain.RankEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+ladderColumns+` FROM players
		WHERE ladder_rank > 0
		ORDER BY ladder_rank
		LIMIT ?
	`, n)
	if err != nil {
		return nil, fmt.Errorf("query ladder: %w", err)
	}
	return scanEntries(rows)
}

func (s *Store) FindOpponents(ctx context.Context, q domain.OpponentQuery) ([]domain.RankEntry, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+ladderColumns+` FROM players
		WHERE ladder_rank > 0
		  AND player_id <> ?
		  AND level BETWEEN ? AND ?
		  AND (? = 0 OR ladder_rank < ?)
		ORDER BY ladder_rank
		LIMIT ?
	`, q.ExcludeID, q.MinLevel, q.MaxLevel, q.BelowRank, q.BelowRank, limit)
	if err != nil {
		return nil, fmt.Errorf("query ladder: %w", err)
	}
	return scanEntries(rows)
}

func scanEntries(rows *sql.Rows) ([]domain.RankEntry, error) {
	defer rows.Close()
	out := make([]domain.RankEntry, 0)
	for rows.Next() {
		var e domain.RankEntry
		if err := rows.Scan(&e.PlayerID, &e.Rank, &e.Name, &e.Level, &e.Wins, &e.Avatar); err != nil {
			return nil, fmt.Errorf("scan ladder entry: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
