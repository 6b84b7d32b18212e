package domain

// UserStats holds the per-tier winning-draw counters for a user.
// Total always equals the sum of the five tier counters; both are maintained
// in the same transaction that records a draw.
type UserStats struct {
	Covert     int `json:"covert"`
	Classified int `json:"classified"`
	Restricted int `json:"restricted"`
	Milspec    int `json:"milspec"`
	Industrial int `json:"industrial"`
	Total      int `json:"total"`
}

// Count returns the counter for a single tier.
func (s UserStats) Count(t Tier) int {
	switch t {
	case TierCovert:
		return s.Covert
	case TierClassified:
		return s.Classified
	case TierRestricted:
		return s.Restricted
	case TierMilspec:
		return s.Milspec
	case TierIndustrial:
		return s.Industrial
	}
	return 0
}

// Compare orders two stat lines for the leaderboard: descending by the rarest
// tier's count, falling through tier by tier. Returns a negative value when a
// ranks above b, positive when below, zero when tied on every tier.
// There is deliberately no fallback to Total.
func (s UserStats) Compare(other UserStats) int {
	for _, tier := range TiersByRarity {
		if d := other.Count(tier) - s.Count(tier); d != 0 {
			return d
		}
	}
	return 0
}

// LeaderboardEntry is one ranked row of the global leaderboard.
type LeaderboardEntry struct {
	Rank     int       `json:"rank"`
	Username string    `json:"username"`
	Stats    UserStats `json:"stats"`
}

// Leaderboard is the top slice of the ranking plus, when a requesting user is
// known and ranked outside the slice, that user's absolute position.
type Leaderboard struct {
	Entries     []LeaderboardEntry `json:"leaderboard"`
	CurrentUser *LeaderboardEntry  `json:"current_user,omitempty"`
}
