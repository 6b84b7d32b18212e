package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mwei-dev/CaseSim_Go/internal/repository"
)

// StatsRepository implements the stats repository for PostgreSQL
type StatsRepository struct {
	db *pgxpool.Pool
}

// NewStatsRepository creates a new StatsRepository
func NewStatsRepository(db *pgxpool.Pool) *StatsRepository {
	return &StatsRepository{db: db}
}

// ListAllUserStats returns every user's stat line, ordered by username so that
// ranking ties resolve the same way on every request.
func (r *StatsRepository) ListAllUserStats(ctx context.Context) ([]repository.UserStatsRow, error) {
	rows, err := r.db.Query(ctx, SQLListAllUserStats)
	if err != nil {
		return nil, fmt.Errorf("failed to list user stats: %w", err)
	}
	defer rows.Close()

	var out []repository.UserStatsRow
	for rows.Next() {
		var row repository.UserStatsRow
		err := rows.Scan(
			&row.UserID,
			&row.Username,
			&row.Stats.Covert,
			&row.Stats.Classified,
			&row.Stats.Restricted,
			&row.Stats.Milspec,
			&row.Stats.Industrial,
			&row.Stats.Total,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user stats: %w", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate user stats: %w", err)
	}
	return out, nil
}
