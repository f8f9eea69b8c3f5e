package repository

import (
	"context"

	"github.com/Honoris27/Arena-of-Legends-sub000/internal/domain"
)

// Leaderboard is the read side of the PvP ladder
type Leaderboard interface {
	TopN(ctx context.Context, n int) ([]domain.RankEntry, error)
	FindOpponents(ctx context.Context, q domain.OpponentQuery) ([]domain.RankEntry, error)
}

// RankWriter is implemented by leaderboards that keep their own projection
// and must be told when a player's ladder entry changes
type RankWriter interface {
	UpsertEntry(ctx context.Context, entry domain.RankEntry) error
}
