package postgres

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mwei-dev/CaseSim_Go/internal/cooldown"
	"github.com/mwei-dev/CaseSim_Go/internal/domain"
	"github.com/mwei-dev/CaseSim_Go/internal/logger"
	"github.com/mwei-dev/CaseSim_Go/internal/repository"
)

// drawUpdateStatements maps each tier to its counter-update statement.
// The tier set is closed, so dispatch goes through this fixed lookup table;
// column names are never assembled from request data.
var drawUpdateStatements = map[domain.Tier]string{
	domain.TierCovert: `
		UPDATE users
		SET covert_count = covert_count + 1, total_count = total_count + 1,
		    last_draw_at = $2, updated_at = NOW()
		WHERE user_id = $1
		RETURNING covert_count, classified_count, restricted_count, milspec_count, industrial_count, total_count`,
	domain.TierClassified: `
		UPDATE users
		SET classified_count = classified_count + 1, total_count = total_count + 1,
		    last_draw_at = $2, updated_at = NOW()
		WHERE user_id = $1
		RETURNING covert_count, classified_count, restricted_count, milspec_count, industrial_count, total_count`,
	domain.TierRestricted: `
		UPDATE users
		SET restricted_count = restricted_count + 1, total_count = total_count + 1,
		    last_draw_at = $2, updated_at = NOW()
		WHERE user_id = $1
		RETURNING covert_count, classified_count, restricted_count, milspec_count, industrial_count, total_count`,
	domain.TierMilspec: `
		UPDATE users
		SET milspec_count = milspec_count + 1, total_count = total_count + 1,
		    last_draw_at = $2, updated_at = NOW()
		WHERE user_id = $1
		RETURNING covert_count, classified_count, restricted_count, milspec_count, industrial_count, total_count`,
	domain.TierIndustrial: `
		UPDATE users
		SET industrial_count = industrial_count + 1, total_count = total_count + 1,
		    last_draw_at = $2, updated_at = NOW()
		WHERE user_id = $1
		RETURNING covert_count, classified_count, restricted_count, milspec_count, industrial_count, total_count`,
}

// DrawRepository implements the draw transaction for PostgreSQL
type DrawRepository struct {
	db     *pgxpool.Pool
	policy cooldown.Policy
}

// NewDrawRepository creates a new DrawRepository
func NewDrawRepository(db *pgxpool.Pool, policy cooldown.Policy) *DrawRepository {
	return &DrawRepository{db: db, policy: policy}
}

// GetLastDrawTime reads the user's last draw timestamp (unlocked read, used
// for the cheap cooldown pre-check).
func (r *DrawRepository) GetLastDrawTime(ctx context.Context, userID string) (*time.Time, error) {
	var lastDraw *time.Time
	err := r.db.QueryRow(ctx, SQLSelectLastDraw, userID).Scan(&lastDraw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get last draw time: %w", err)
	}
	return lastDraw, nil
}

// RecordDraw applies one draw's effects as a single transaction:
// advisory lock per user, locked cooldown re-check, retention-capped
// collection insert, counter increment, and the last-draw commit.
// Either everything below the lock commits or nothing does.
func (r *DrawRepository) RecordDraw(ctx context.Context, rec repository.DrawRecord) (domain.UserStats, bool, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return domain.UserStats{}, false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	// Serialize with any concurrent draw by the same user. The lock works
	// even before the user's first draw, when there is nothing to row-lock.
	lockKey := hashUserAction(rec.UserID, DrawAction)
	if _, err := tx.Exec(ctx, SQLAdvisoryLock, lockKey); err != nil {
		return domain.UserStats{}, false, fmt.Errorf("failed to acquire draw lock: %w", err)
	}

	// Re-read the gate state with the lock held; a concurrent request may
	// have committed between the caller's pre-check and here.
	var lastDraw *time.Time
	if err := tx.QueryRow(ctx, SQLSelectLastDraw, rec.UserID).Scan(&lastDraw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.UserStats{}, false, domain.ErrUserNotFound
		}
		return domain.UserStats{}, false, fmt.Errorf("failed to re-read last draw time: %w", err)
	}
	var count int
	if err := tx.QueryRow(ctx, SQLCountCollection, rec.UserID, rec.Tier).Scan(&count); err != nil {
		return domain.UserStats{}, false, fmt.Errorf("failed to count collection entries: %w", err)
	}

	collected, err := drawAdmission(r.policy, lastDraw, rec.Now, count)
	if err != nil {
		log.Debug("Concurrent draw lost cooldown race", "user_id", rec.UserID)
		return domain.UserStats{}, false, err
	}
	if collected {
		if _, err := tx.Exec(ctx, SQLInsertCollection, rec.UserID, rec.Tier, rec.AssetIndex, rec.Now); err != nil {
			return domain.UserStats{}, false, fmt.Errorf("failed to insert collection entry: %w", err)
		}
	}

	update, ok := drawUpdateStatements[rec.Tier]
	if !ok {
		return domain.UserStats{}, false, fmt.Errorf("%w: unknown tier %q", domain.ErrInvalidInput, rec.Tier)
	}

	var stats domain.UserStats
	err = tx.QueryRow(ctx, update, rec.UserID, rec.Now).Scan(
		&stats.Covert,
		&stats.Classified,
		&stats.Restricted,
		&stats.Milspec,
		&stats.Industrial,
		&stats.Total,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.UserStats{}, false, domain.ErrUserNotFound
		}
		return domain.UserStats{}, false, fmt.Errorf("failed to update draw counters: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.UserStats{}, false, fmt.Errorf("failed to commit draw transaction: %w", err)
	}

	return stats, collected, nil
}

// drawAdmission is the post-lock gate for one draw. Given the state re-read
// under the user's advisory lock, it either denies with ErrOnCooldown or
// admits, reporting whether the win is still recorded in the collection.
// At the retention cap wins count in stats only; entries are never evicted
// or replaced.
func drawAdmission(policy cooldown.Policy, lastDraw *time.Time, now time.Time, tierCount int) (collected bool, err error) {
	if onCooldown, remaining := policy.Check(lastDraw, now); onCooldown {
		return false, cooldown.ErrOnCooldown{Remaining: remaining}
	}
	return tierCount < domain.CollectionRetentionCap, nil
}

// hashUserAction creates a consistent int64 hash from userID + action for advisory locking
func hashUserAction(userID, action string) int64 {
	h := sha256.Sum256([]byte(userID + HashSeparator + action))
	return int64(binary.BigEndian.Uint64(h[:8]) & HashMaskPositiveInt64)
}
