// Package postgres implements the storage contracts on PostgreSQL via pgx.
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Honoris27/Arena-of-Legends-sub000/internal/domain"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/repository"
)

// PlayerRepository stores player snapshots as JSONB
type PlayerRepository struct {
	db *pgxpool.Pool
}

// NewPlayerRepository creates a new PlayerRepository
func NewPlayerRepository(db *pgxpool.Pool) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) Load(ctx context.Context, playerID string) (*domain.Player, error) {
	var raw []byte
	err := r.db.QueryRow(ctx, `SELECT snapshot FROM players WHERE player_id = $1`, playerID).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrPlayerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadPlayerFmt, playerID, err)
	}

	var p domain.Player
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf(ErrMsgDecodePlayerFmt, playerID, err)
	}
	return &p, nil
}

// Save upserts the snapshot along with the columns the ladder and the
// activity worker query on
func (r *PlayerRepository) Save(ctx context.Context, p *domain.Player, wins int) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf(ErrMsgEncodePlayerFmt, p.ID, err)
	}

	var activityEnd any
	if p.Activity != nil {
		activityEnd = p.Activity.EndTime
	}

	query := `
		INSERT INTO players (player_id, name, avatar, level, ladder_rank, wins, activity_end, snapshot, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (player_id) DO UPDATE SET
			name = EXCLUDED.name,
			avatar = EXCLUDED.avatar,
			level = EXCLUDED.level,
			ladder_rank = EXCLUDED.ladder_rank,
			wins = EXCLUDED.wins,
			activity_end = EXCLUDED.activity_end,
			snapshot = EXCLUDED.snapshot,
			updated_at = EXCLUDED.updated_at
	`
	_, err = r.db.Exec(ctx, query,
		p.ID, p.Name, p.Avatar, p.Level, p.Rank, wins, activityEnd, raw, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf(ErrMsgSavePlayerFmt, p.ID, err)
	}
	return nil
}

func (r *PlayerRepository) ListPendingActivities(ctx context.Context) ([]repository.PendingActivity, error) {
	rows, err := r.db.Query(ctx, `
		SELECT player_id, snapshot->'activity'
		FROM players
		WHERE activity_end IS NOT NULL
		ORDER BY activity_end
	`)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListActivitiesFmt, err)
	}
	defer rows.Close()

	out := make([]repository.PendingActivity, 0)
	for rows.Next() {
		var (
			id  string
			raw []byte
		)
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, fmt.Errorf(ErrMsgListActivitiesFmt, err)
		}
		var act domain.ActivityState
		if err := json.Unmarshal(raw, &act); err != nil {
			return nil, fmt.Errorf(ErrMsgDecodePlayerFmt, id, err)
		}
		out = append(out, repository.PendingActivity{PlayerID: id, Activity: act})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf(ErrMsgListActivitiesFmt, err)
	}
	return out, nil
}

func (r *PlayerRepository) MaxRank(ctx context.Context) (int, error) {
	var top int
	if err := r.db.QueryRow(ctx, `SELECT COALESCE(MAX(ladder_rank), 0) FROM players`).Scan(&top); err != nil {
		return 0, fmt.Errorf(ErrMsgMaxRankFmt, err)
	}
	return top, nil
}
