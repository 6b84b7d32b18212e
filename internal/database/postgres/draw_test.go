package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwei-dev/CaseSim_Go/internal/cooldown"
	"github.com/mwei-dev/CaseSim_Go/internal/domain"
)

func TestDrawAdmission(t *testing.T) {
	policy := cooldown.NewPolicy(10 * time.Second)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("below the cap every win is recorded", func(t *testing.T) {
		for count := 0; count < domain.CollectionRetentionCap; count++ {
			collected, err := drawAdmission(policy, nil, now, count)
			require.NoError(t, err)
			assert.True(t, collected, "count %d", count)
		}
	})

	t.Run("at the cap the win counts but is not recorded", func(t *testing.T) {
		collected, err := drawAdmission(policy, nil, now, domain.CollectionRetentionCap)
		require.NoError(t, err)
		assert.False(t, collected)
	})

	t.Run("cooldown denial precedes the cap decision", func(t *testing.T) {
		last := now.Add(-3 * time.Second)
		collected, err := drawAdmission(policy, &last, now, 0)
		assert.False(t, collected)

		var cdErr cooldown.ErrOnCooldown
		require.ErrorAs(t, err, &cdErr)
		assert.Equal(t, 7, cdErr.RemainingSeconds())
	})

	t.Run("of two simultaneous draws only the first is admitted", func(t *testing.T) {
		// Both requests pass the unlocked pre-check with no prior draw; the
		// advisory lock serializes them, so the loser re-reads the winner's
		// committed timestamp here.
		collected, err := drawAdmission(policy, nil, now, 0)
		require.NoError(t, err)
		assert.True(t, collected)

		later := now.Add(50 * time.Millisecond)
		collected, err = drawAdmission(policy, &now, later, 1)
		assert.False(t, collected)
		assert.ErrorIs(t, err, cooldown.ErrOnCooldown{})
	})
}

func TestHashUserAction(t *testing.T) {
	t.Run("stable for the same inputs", func(t *testing.T) {
		assert.Equal(t, hashUserAction("user-1", DrawAction), hashUserAction("user-1", DrawAction))
	})

	t.Run("distinct users get distinct lock keys", func(t *testing.T) {
		assert.NotEqual(t, hashUserAction("user-1", DrawAction), hashUserAction("user-2", DrawAction))
	})

	t.Run("never negative", func(t *testing.T) {
		for _, id := range []string{"", "user-1", "user-2", "ffffffff-ffff-ffff-ffff-ffffffffffff"} {
			assert.GreaterOrEqual(t, hashUserAction(id, DrawAction), int64(0))
		}
	})
}
