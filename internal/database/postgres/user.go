package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mwei-dev/CaseSim_Go/internal/domain"
)

// UserRepository implements the user repository for PostgreSQL
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// CreateUser inserts a new user and fills in its generated ID and timestamps.
// Returns domain.ErrUsernameTaken when the username is already registered.
func (r *UserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	err := r.db.QueryRow(ctx, SQLInsertUser, user.Username, user.PasswordHash).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == PgErrCodeUniqueViolation {
			return domain.ErrUsernameTaken
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// GetUserByUsername fetches a user with stats by username.
func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.scanUser(r.db.QueryRow(ctx, SQLSelectUserByUsername, username))
}

// GetUserByID fetches a user with stats by ID.
func (r *UserRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.scanUser(r.db.QueryRow(ctx, SQLSelectUserByID, userID))
}

func (r *UserRepository) scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.Stats.Covert,
		&user.Stats.Classified,
		&user.Stats.Restricted,
		&user.Stats.Milspec,
		&user.Stats.Industrial,
		&user.Stats.Total,
		&user.LastDrawAt,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// CreateSession stores a new session token.
func (r *UserRepository) CreateSession(ctx context.Context, session *domain.Session) error {
	_, err := r.db.Exec(ctx, SQLInsertSession,
		session.Token, session.UserID, session.CreatedAt, session.ExpiresAt)
	if err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}
	return nil
}

// GetSession fetches a session by token.
// Returns domain.ErrInvalidSession for unknown tokens.
func (r *UserRepository) GetSession(ctx context.Context, token string) (*domain.Session, error) {
	var session domain.Session
	err := r.db.QueryRow(ctx, SQLSelectSession, token).Scan(
		&session.Token,
		&session.UserID,
		&session.CreatedAt,
		&session.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInvalidSession
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return &session, nil
}

// DeleteSession removes a session token.
func (r *UserRepository) DeleteSession(ctx context.Context, token string) error {
	_, err := r.db.Exec(ctx, SQLDeleteSession, token)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
