package stats

import (
	"context"
	"fmt"

	"github.com/mwei-dev/CaseSim_Go/internal/domain"
	"github.com/mwei-dev/CaseSim_Go/internal/logger"
	"github.com/mwei-dev/CaseSim_Go/internal/repository"
)

// Service defines the interface for leaderboard queries
type Service interface {
	// GetLeaderboard returns the top entries plus, when currentUserID is
	// non-empty, registered, and ranked beyond the returned slice, that
	// user's absolute 1-based rank.
	GetLeaderboard(ctx context.Context, currentUserID string) (*domain.Leaderboard, error)
}

// service implements the Service interface
type service struct {
	repo repository.Stats
}

// NewService creates a new stats service
func NewService(repo repository.Stats) Service {
	return &service{repo: repo}
}

// GetLeaderboard ranks every user and slices the top LeaderboardLimit.
// The requesting user's absolute rank is computed from the full ranking so a
// client can show "you are ranked #N" when N is beyond the slice; a requester
// already visible in the slice gets no separate entry.
func (s *service) GetLeaderboard(ctx context.Context, currentUserID string) (*domain.Leaderboard, error) {
	log := logger.FromContext(ctx)

	rows, err := s.repo.ListAllUserStats(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListStatsFailed, err)
	}

	ranked := Rank(rows)

	limit := LeaderboardLimit
	if len(ranked) < limit {
		limit = len(ranked)
	}

	board := &domain.Leaderboard{
		Entries: make([]domain.LeaderboardEntry, 0, limit),
	}
	for i, row := range ranked {
		if i < limit {
			board.Entries = append(board.Entries, domain.LeaderboardEntry{
				Rank:     i + 1,
				Username: row.Username,
				Stats:    row.Stats,
			})
		}
		if i >= limit && currentUserID != "" && row.UserID == currentUserID {
			board.CurrentUser = &domain.LeaderboardEntry{
				Rank:     i + 1,
				Username: row.Username,
				Stats:    row.Stats,
			}
		}
	}

	log.Debug(LogMsgRetrievedLeaderboard, "entries", len(board.Entries), "total_users", len(ranked))
	return board, nil
}
