package repository

import (
	"context"

	"github.com/mwei-dev/CaseSim_Go/internal/domain"
)

// Collection defines the interface for reading a user's capped collection
type Collection interface {
	ListByUser(ctx context.Context, userID string) ([]domain.CollectionEntry, error)
}
