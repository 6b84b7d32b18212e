package draw

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mwei-dev/CaseSim_Go/internal/cooldown"
	"github.com/mwei-dev/CaseSim_Go/internal/domain"
	"github.com/mwei-dev/CaseSim_Go/internal/logger"
	"github.com/mwei-dev/CaseSim_Go/internal/metrics"
	"github.com/mwei-dev/CaseSim_Go/internal/rarity"
	"github.com/mwei-dev/CaseSim_Go/internal/repository"
)

// Service defines the draw orchestration interface
type Service interface {
	// PerformDraw runs one full draw for the user: rate-limit check, weighted
	// selection, sequence build, then the atomic record transaction.
	PerformDraw(ctx context.Context, userID string) (*domain.DrawResult, error)
}

type service struct {
	repo     repository.Draw
	table    *rarity.Table
	selector *Selector
	builder  *SequenceBuilder
	policy   cooldown.Policy
}

// NewService creates a new draw service over a validated rarity table.
func NewService(repo repository.Draw, table *rarity.Table, rng Source, policy cooldown.Policy) Service {
	selector := NewSelector(table, rng)
	return &service{
		repo:     repo,
		table:    table,
		selector: selector,
		builder:  NewSequenceBuilder(selector, rng),
		policy:   policy,
	}
}

// PerformDraw implements the draw state machine:
// Idle -> RateChecked -> Selected -> Recorded -> Responded.
//
// The cooldown is checked twice, mirroring the two-phase pattern of the
// storage layer: a cheap unlocked read here rejects most cooling-down
// requests, and RecordDraw re-checks under an exclusive per-user lock so two
// concurrent requests cannot both pass. Stats, the collection entry, and the
// last-draw timestamp commit together or not at all.
func (s *service) PerformDraw(ctx context.Context, userID string) (*domain.DrawResult, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		return nil, fmt.Errorf("%w: user id required", domain.ErrInvalidInput)
	}

	lastDraw, err := s.repo.GetLastDrawTime(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to read last draw time: %w", err)
	}
	if onCooldown, remaining := s.policy.Check(lastDraw, time.Now()); onCooldown {
		log.Debug(LogMsgDrawDenied, "user_id", userID, "remaining", remaining)
		metrics.CooldownRejections.Inc()
		return nil, cooldown.ErrOnCooldown{Remaining: remaining}
	}

	tier := s.selector.SelectTier()
	assetIndex := s.selector.SelectAsset(tier)
	items, slot := s.builder.Build(tier, assetIndex)

	stats, collected, err := s.repo.RecordDraw(ctx, repository.DrawRecord{
		UserID:     userID,
		Tier:       tier,
		AssetIndex: assetIndex,
		Now:        time.Now(),
	})
	if err != nil {
		var cdErr cooldown.ErrOnCooldown
		if errors.As(err, &cdErr) {
			// Lost the race to a concurrent draw from the same user.
			log.Debug(LogMsgDrawDenied, "user_id", userID, "remaining", cdErr.Remaining)
			metrics.CooldownRejections.Inc()
			return nil, cdErr
		}
		log.Error(LogMsgDrawFailed, "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to record draw: %w", err)
	}

	metrics.DrawsTotal.WithLabelValues(tier.String()).Inc()
	if !collected {
		metrics.CollectionCapSkips.WithLabelValues(tier.String()).Inc()
	}

	log.Info(LogMsgDrawCompleted,
		"user_id", userID,
		"tier", tier,
		"asset_index", assetIndex,
		"collected", collected)

	return &domain.DrawResult{
		WinningTier: tier,
		AssetIndex:  assetIndex,
		WinningItem: items[slot],
		Items:       items,
		WinnerSlot:  slot,
		StatsAfter:  stats,
		Collected:   collected,
	}, nil
}
