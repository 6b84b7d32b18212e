package domain

import "time"

// CollectionRetentionCap is the maximum number of collection entries kept per
// (user, tier). Once a pair reaches the cap, further wins are counted in stats
// but not recorded in the collection; existing entries are never evicted.
const CollectionRetentionCap = 5

// CollectionEntry is one recorded winning draw in a user's collection.
type CollectionEntry struct {
	ID         int64     `json:"-"`
	UserID     string    `json:"-"`
	Tier       Tier      `json:"tier"`
	AssetIndex int       `json:"asset_index"`
	CreatedAt  time.Time `json:"created_at"`
}

// Collection groups a user's entries by tier, chronological within each tier.
type Collection map[Tier][]CollectionEntry
