package collection

import (
	"context"
	"fmt"

	"github.com/mwei-dev/CaseSim_Go/internal/domain"
	"github.com/mwei-dev/CaseSim_Go/internal/logger"
	"github.com/mwei-dev/CaseSim_Go/internal/repository"
)

// Service defines the interface for reading a user's collection
type Service interface {
	// Fetch returns the user's collection grouped by tier, chronological
	// within each tier. Every tier key is present even when empty.
	Fetch(ctx context.Context, userID string) (domain.Collection, error)
}

type service struct {
	repo repository.Collection
}

// NewService creates a new collection service
func NewService(repo repository.Collection) Service {
	return &service{repo: repo}
}

func (s *service) Fetch(ctx context.Context, userID string) (domain.Collection, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		return nil, fmt.Errorf("%w: user id required", domain.ErrInvalidInput)
	}

	entries, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list collection entries: %w", err)
	}

	grouped := make(domain.Collection, len(domain.TiersByRarity))
	for _, tier := range domain.TiersByRarity {
		grouped[tier] = []domain.CollectionEntry{}
	}
	for _, entry := range entries {
		grouped[entry.Tier] = append(grouped[entry.Tier], entry)
	}

	log.Debug("Fetched collection", "user_id", userID, "entries", len(entries))
	return grouped, nil
}
