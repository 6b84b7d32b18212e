package stats

import (
	"sort"

	"github.com/mwei-dev/CaseSim_Go/internal/repository"
)

// Rank orders stat rows by the fixed tie-break chain: descending count of the
// rarest tier first, falling through tier by tier to the most common. There is
// no fallback on total; rows tied on every tier keep their input order (the
// repository returns username-ascending), which the stable sort preserves.
func Rank(rows []repository.UserStatsRow) []repository.UserStatsRow {
	ranked := make([]repository.UserStatsRow, len(rows))
	copy(ranked, rows)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Stats.Compare(ranked[j].Stats) < 0
	})

	return ranked
}
