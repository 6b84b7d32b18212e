package draw

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwei-dev/CaseSim_Go/internal/domain"
)

func TestSequenceBuild(t *testing.T) {
	table := newTestTable(t)
	rng := NewSeededSource(7)
	builder := NewSequenceBuilder(NewSelector(table, rng), rng)

	t.Run("shape and winner placement", func(t *testing.T) {
		items, slot := builder.Build(domain.TierCovert, 3)

		require.Len(t, items, SequenceLength)
		assert.GreaterOrEqual(t, slot, WinnerWindowStart)
		assert.LessOrEqual(t, slot, WinnerWindowEnd)

		winner := items[slot]
		assert.True(t, winner.IsWinner)
		assert.Equal(t, domain.TierCovert, winner.Tier)
		assert.Equal(t, "/covert/pic3.png", winner.AssetPath)
	})

	t.Run("exactly one winner flag", func(t *testing.T) {
		items, slot := builder.Build(domain.TierMilspec, 10)

		winners := 0
		for i, item := range items {
			if item.IsWinner {
				winners++
				assert.Equal(t, slot, i)
			}
		}
		assert.Equal(t, 1, winners)
	})

	t.Run("decoys are valid items", func(t *testing.T) {
		items, _ := builder.Build(domain.TierIndustrial, 1)

		for _, item := range items {
			assert.True(t, domain.IsValidTier(item.Tier))
			assert.True(t, strings.HasPrefix(item.AssetPath, "/"+item.Tier.String()+"/pic"))
			assert.True(t, strings.HasSuffix(item.AssetPath, ".png"))
		}
	})

	t.Run("winner slot covers the whole window", func(t *testing.T) {
		seen := make(map[int]bool)
		for i := 0; i < 2000; i++ {
			_, slot := builder.Build(domain.TierClassified, 1)
			seen[slot] = true
		}
		for slot := WinnerWindowStart; slot <= WinnerWindowEnd; slot++ {
			assert.True(t, seen[slot], "slot %d never used", slot)
		}
		assert.Len(t, seen, WinnerWindowEnd-WinnerWindowStart+1)
	})

	t.Run("duplicates of the winning item are allowed", func(t *testing.T) {
		// With a covert winner, decoy slots can legitimately contain covert
		// items too; only the flagged slot is authoritative.
		items, slot := builder.Build(domain.TierCovert, 1)
		for i, item := range items {
			if i != slot {
				assert.False(t, item.IsWinner)
			}
		}
	})
}
