package repository

import (
	"context"
	"time"

	"github.com/mwei-dev/CaseSim_Go/internal/domain"
)

// DrawRecord carries the winning pair of one draw into the storage layer.
type DrawRecord struct {
	UserID     string
	Tier       domain.Tier
	AssetIndex int
	Now        time.Time
}

// Draw defines the interface for the draw transaction and its fast pre-check.
//
// RecordDraw must apply the whole read-modify-write sequence atomically per
// user: re-check the cooldown under an exclusive lock, insert the collection
// entry unless the (user, tier) pair is at its retention cap, increment the
// tier counter and total, and commit the new last-draw timestamp. It returns
// the stats after the draw and whether a collection entry was stored.
// A locked re-check that fails returns cooldown.ErrOnCooldown.
type Draw interface {
	GetLastDrawTime(ctx context.Context, userID string) (*time.Time, error)
	RecordDraw(ctx context.Context, rec DrawRecord) (domain.UserStats, bool, error)
}
