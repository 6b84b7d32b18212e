package repository

import (
	"context"

	"github.com/mwei-dev/CaseSim_Go/internal/domain"
)

// UserStatsRow is one user's stat line as read from storage, before ranking.
type UserStatsRow struct {
	UserID   string
	Username string
	Stats    domain.UserStats
}

// Stats defines the interface for reading stat lines for the leaderboard
type Stats interface {
	// ListAllUserStats returns every user's stats, ordered by username
	// ascending so that full ties keep a deterministic relative order.
	ListAllUserStats(ctx context.Context) ([]UserStatsRow, error)
}
