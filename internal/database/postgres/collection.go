package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mwei-dev/CaseSim_Go/internal/domain"
)

// CollectionRepository implements the collection repository for PostgreSQL
type CollectionRepository struct {
	db *pgxpool.Pool
}

// NewCollectionRepository creates a new CollectionRepository
func NewCollectionRepository(db *pgxpool.Pool) *CollectionRepository {
	return &CollectionRepository{db: db}
}

// ListByUser returns all of the user's collection entries, oldest first.
func (r *CollectionRepository) ListByUser(ctx context.Context, userID string) ([]domain.CollectionEntry, error) {
	rows, err := r.db.Query(ctx, SQLListCollection, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list collection entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.CollectionEntry
	for rows.Next() {
		var e domain.CollectionEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Tier, &e.AssetIndex, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan collection entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate collection entries: %w", err)
	}
	return entries, nil
}
