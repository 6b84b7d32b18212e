package draw

import (
	"github.com/mwei-dev/CaseSim_Go/internal/domain"
	"github.com/mwei-dev/CaseSim_Go/internal/rarity"
)

// Selector draws a rarity tier and an asset index from the rarity table.
// It is read-only over immutable configuration and needs no synchronization
// beyond that of its Source.
type Selector struct {
	table *rarity.Table
	rng   Source
}

// NewSelector creates a Selector over a validated rarity table.
func NewSelector(table *rarity.Table, rng Source) *Selector {
	return &Selector{table: table, rng: rng}
}

// SelectTier draws one tier. It walks the tiers in fixed rarity order
// accumulating weights; the first tier whose running sum reaches the drawn
// value wins. The comparison is boundary-inclusive, a deliberate tie-break
// for values landing exactly on a boundary.
func (s *Selector) SelectTier() domain.Tier {
	r := s.rng.Float64() * s.table.TotalWeight()

	sum := 0.0
	for _, tier := range domain.TiersByRarity {
		sum += s.table.Get(tier).Weight
		if r <= sum {
			return tier
		}
	}
	// Floating-point accumulation can leave r a hair above the final sum.
	return domain.TiersByRarity[len(domain.TiersByRarity)-1]
}

// SelectAsset draws a uniform asset index in [1, poolSize] for the tier.
func (s *Selector) SelectAsset(tier domain.Tier) int {
	return 1 + s.rng.IntN(s.table.Get(tier).PoolSize)
}

// item builds a sequence item for the tier/index pair.
func (s *Selector) item(tier domain.Tier, index int, winner bool) domain.SequenceItem {
	return domain.SequenceItem{
		Tier:      tier,
		AssetPath: s.table.AssetPath(tier, index),
		IsWinner:  winner,
	}
}
