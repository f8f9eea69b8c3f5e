package repository

import (
	"context"

	"github.com/Honoris27/Arena-of-Legends-sub000/internal/domain"
)

// Player stores whole-aggregate player snapshots
type Player interface {
	// Load returns domain.ErrPlayerNotFound when no snapshot exists
	Load(ctx context.Context, playerID string) (*domain.Player, error)
	// Save replaces the stored snapshot. wins is the ladder win counter kept beside it.
	Save(ctx context.Context, p *domain.Player, wins int) error
	// ListPendingActivities returns every player that has an activity in flight
	ListPendingActivities(ctx context.Context) ([]PendingActivity, error)
	// MaxRank returns the lowest ladder position in use, or 0 for an empty ladder
	MaxRank(ctx context.Context) (int, error)
}

// PendingActivity pairs a player with the deadline of their current activity
type PendingActivity struct {
	PlayerID string
	Activity domain.ActivityState
}
