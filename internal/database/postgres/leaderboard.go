package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Honoris27/Arena-of-Legends-sub000/internal/domain"
)

// LeaderboardRepository reads the ladder straight from the players table
type LeaderboardRepository struct {
	db *pgxpool.Pool
}

// NewLeaderboardRepository creates a new LeaderboardRepository
func NewLeaderboardRepository(db *pgxpool.Pool) *LeaderboardRepository {
	return &LeaderboardRepository{db: db}
}

const ladderColumns = `player_id, ladder_rank, name, level, wins, avatar`

func (r *LeaderboardRepository) TopN(ctx context.Context, n int) ([]domain.RankEntry, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+ladderColumns+`
		FROM players
		WHERE ladder_rank > 0
		ORDER BY ladder_rank
		LIMIT $1
	`, n)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgQueryLadderFmt, err)
	}
	return collectEntries(rows)
}

// FindOpponents returns ranked players inside the level band above the
// challenger. A BelowRank of 0 admits every ranked player.
func (r *LeaderboardRepository) FindOpponents(ctx context.Context, q domain.OpponentQuery) ([]domain.RankEntry, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+ladderColumns+`
		FROM players
		WHERE ladder_rank > 0
		  AND player_id <> $1
		  AND level BETWEEN $2 AND $3
		  AND ($4 = 0 OR ladder_rank < $4)
		ORDER BY ladder_rank
		LIMIT $5
	`, q.ExcludeID, q.MinLevel, q.MaxLevel, q.BelowRank, q.Limit)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgQueryLadderFmt, err)
	}
	return collectEntries(rows)
}

func collectEntries(rows pgx.Rows) ([]domain.RankEntry, error) {
	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.RankEntry, error) {
		var e domain.RankEntry
		err := row.Scan(&e.PlayerID, &e.Rank, &e.Name, &e.Level, &e.Wins, &e.Avatar)
		return e, err
	})
	if err != nil {
		return nil, fmt.Errorf(ErrMsgQueryLadderFmt, err)
	}
	return entries, nil
}
