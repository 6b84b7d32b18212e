package stats

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mwei-dev/CaseSim_Go/internal/domain"
	"github.com/mwei-dev/CaseSim_Go/internal/repository"
)

// mockStatsRepo mocks repository.Stats
type mockStatsRepo struct {
	mock.Mock
}

func (m *mockStatsRepo) ListAllUserStats(ctx context.Context) ([]repository.UserStatsRow, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]repository.UserStatsRow), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestGetLeaderboard(t *testing.T) {
	ctx := context.Background()

	t.Run("caps entries at the limit and ranks the requester beyond it", func(t *testing.T) {
		// 60 users with strictly decreasing covert counts; user-54 sits at
		// rank 55, outside the returned slice.
		rows := make([]repository.UserStatsRow, 0, 60)
		for i := 0; i < 60; i++ {
			rows = append(rows, repository.UserStatsRow{
				UserID:   fmt.Sprintf("user-%d", i),
				Username: fmt.Sprintf("player%02d", i),
				Stats:    domain.UserStats{Covert: 60 - i, Total: 60 - i},
			})
		}

		repo := &mockStatsRepo{}
		repo.On("ListAllUserStats", mock.Anything).Return(rows, nil)

		board, err := NewService(repo).GetLeaderboard(ctx, "user-54")
		require.NoError(t, err)

		assert.Len(t, board.Entries, LeaderboardLimit)
		assert.Equal(t, 1, board.Entries[0].Rank)
		assert.Equal(t, "player00", board.Entries[0].Username)
		assert.Equal(t, LeaderboardLimit, board.Entries[len(board.Entries)-1].Rank)

		require.NotNil(t, board.CurrentUser)
		assert.Equal(t, 55, board.CurrentUser.Rank)
		assert.Equal(t, "player54", board.CurrentUser.Username)
	})

	t.Run("requester inside the top slice gets no separate entry", func(t *testing.T) {
		rows := []repository.UserStatsRow{
			{UserID: "a", Username: "alice", Stats: domain.UserStats{Covert: 2}},
			{UserID: "b", Username: "bob", Stats: domain.UserStats{Covert: 5}},
		}

		repo := &mockStatsRepo{}
		repo.On("ListAllUserStats", mock.Anything).Return(rows, nil)

		board, err := NewService(repo).GetLeaderboard(ctx, "a")
		require.NoError(t, err)

		require.Len(t, board.Entries, 2)
		assert.Equal(t, "bob", board.Entries[0].Username)
		assert.Equal(t, "alice", board.Entries[1].Username)
		assert.Nil(t, board.CurrentUser)
	})

	t.Run("anonymous request has no current user", func(t *testing.T) {
		repo := &mockStatsRepo{}
		repo.On("ListAllUserStats", mock.Anything).Return([]repository.UserStatsRow{
			{UserID: "a", Username: "alice", Stats: domain.UserStats{}},
		}, nil)

		board, err := NewService(repo).GetLeaderboard(ctx, "")
		require.NoError(t, err)
		assert.Nil(t, board.CurrentUser)
	})

	t.Run("unknown requester has no current user", func(t *testing.T) {
		repo := &mockStatsRepo{}
		repo.On("ListAllUserStats", mock.Anything).Return([]repository.UserStatsRow{
			{UserID: "a", Username: "alice", Stats: domain.UserStats{}},
		}, nil)

		board, err := NewService(repo).GetLeaderboard(ctx, "ghost")
		require.NoError(t, err)
		assert.Nil(t, board.CurrentUser)
	})

	t.Run("repository failure", func(t *testing.T) {
		repo := &mockStatsRepo{}
		repo.On("ListAllUserStats", mock.Anything).Return(nil, assert.AnError)

		_, err := NewService(repo).GetLeaderboard(ctx, "")
		require.Error(t, err)
	})
}
