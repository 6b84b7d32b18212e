package domain

// Tier identifies a rarity tier. The set is closed; persistence and the
// selector both dispatch over TiersByRarity rather than arbitrary strings.
type Tier string

const (
	TierCovert     Tier = "covert"
	TierClassified Tier = "classified"
	TierRestricted Tier = "restricted"
	TierMilspec    Tier = "milspec"
	TierIndustrial Tier = "industrial"
)

// TiersByRarity lists all tiers ordered rarest first. The weighted selector
// walks this order, and the leaderboard tie-break chain follows it.
var TiersByRarity = []Tier{
	TierCovert,
	TierClassified,
	TierRestricted,
	TierMilspec,
	TierIndustrial,
}

func (t Tier) String() string {
	return string(t)
}

// IsValidTier reports whether t is one of the known tiers.
func IsValidTier(t Tier) bool {
	switch t {
	case TierCovert, TierClassified, TierRestricted, TierMilspec, TierIndustrial:
		return true
	}
	return false
}
