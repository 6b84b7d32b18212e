package draw

import (
	"github.com/mwei-dev/CaseSim_Go/internal/domain"
)

// SequenceBuilder assembles the display sequence around a winning item.
type SequenceBuilder struct {
	selector *Selector
	rng      Source
}

// NewSequenceBuilder creates a builder sharing the selector's rarity table.
func NewSequenceBuilder(selector *Selector, rng Source) *SequenceBuilder {
	return &SequenceBuilder{selector: selector, rng: rng}
}

// Build returns a SequenceLength-slot sequence with the winner forced into a
// uniform slot within the winner window. Every other slot is an independent
// draw; duplicates of any item, including the winner's, are allowed.
func (b *SequenceBuilder) Build(winnerTier domain.Tier, winnerIndex int) ([]domain.SequenceItem, int) {
	slot := WinnerWindowStart + b.rng.IntN(WinnerWindowEnd-WinnerWindowStart+1)

	items := make([]domain.SequenceItem, SequenceLength)
	for i := range items {
		if i == slot {
			items[i] = b.selector.item(winnerTier, winnerIndex, true)
			continue
		}
		tier := b.selector.SelectTier()
		items[i] = b.selector.item(tier, b.selector.SelectAsset(tier), false)
	}

	return items, slot
}
