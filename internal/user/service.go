package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/unicode/norm"

	"github.com/mwei-dev/CaseSim_Go/internal/domain"
	"github.com/mwei-dev/CaseSim_Go/internal/logger"
	"github.com/mwei-dev/CaseSim_Go/internal/repository"
)

// Service defines the interface for registration, login and session checks
type Service interface {
	Register(ctx context.Context, username, password string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (*domain.Session, *domain.User, error)
	// Authenticate resolves a session token to a user ID.
	// Returns domain.ErrInvalidSession for unknown or expired tokens.
	Authenticate(ctx context.Context, token string) (string, error)
	Logout(ctx context.Context, token string) error
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}

type service struct {
	repo       repository.User
	sessionTTL time.Duration
	cache      *sessionCache
}

// NewService creates a new user service
func NewService(repo repository.User, sessionTTL time.Duration) Service {
	cacheTTL := SessionCacheTTL
	if sessionTTL < cacheTTL {
		cacheTTL = sessionTTL
	}
	return &service{
		repo:       repo,
		sessionTTL: sessionTTL,
		cache:      newSessionCache(SessionCacheSize, cacheTTL),
	}
}

// Register creates a new user with a bcrypt-hashed credential.
func (s *service) Register(ctx context.Context, username, password string) (*domain.User, error) {
	log := logger.FromContext(ctx)

	username, err := normalizeUsername(username)
	if err != nil {
		return nil, err
	}
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrInvalidInput, MinPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	log.Info(LogMsgUserRegistered, "user_id", user.ID, "username", username)
	return user, nil
}

// Login verifies credentials and opens a new session.
func (s *service) Login(ctx context.Context, username, password string) (*domain.Session, *domain.User, error) {
	log := logger.FromContext(ctx)

	username, err := normalizeUsername(username)
	if err != nil {
		return nil, nil, err
	}

	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if isNotFound(err) {
			// Same error as a bad password so usernames can't be probed.
			return nil, nil, domain.ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, nil, domain.ErrInvalidCredentials
	}

	now := time.Now()
	session := &domain.Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL),
	}
	if err := s.repo.CreateSession(ctx, session); err != nil {
		return nil, nil, fmt.Errorf("failed to create session: %w", err)
	}
	s.cache.Set(session.Token, session)

	log.Info(LogMsgUserLoggedIn, "user_id", user.ID, "username", username)
	return session, user, nil
}

// Authenticate resolves a session token to the owning user ID.
func (s *service) Authenticate(ctx context.Context, token string) (string, error) {
	log := logger.FromContext(ctx)

	if token == "" {
		return "", domain.ErrInvalidSession
	}

	now := time.Now()
	if session, ok := s.cache.Get(token); ok {
		if session.Expired(now) {
			s.cache.Invalidate(token)
			return "", domain.ErrInvalidSession
		}
		return session.UserID, nil
	}

	session, err := s.repo.GetSession(ctx, token)
	if err != nil {
		if isNotFound(err) {
			log.Debug(LogMsgSessionRejected, "reason", "unknown token")
			return "", domain.ErrInvalidSession
		}
		return "", fmt.Errorf("failed to look up session: %w", err)
	}
	if session.Expired(now) {
		log.Debug(LogMsgSessionRejected, "reason", "expired", "user_id", session.UserID)
		// Best-effort cleanup; an expired row is harmless if this fails.
		_ = s.repo.DeleteSession(ctx, token)
		return "", domain.ErrInvalidSession
	}

	s.cache.Set(token, session)
	return session.UserID, nil
}

// Logout revokes a session.
func (s *service) Logout(ctx context.Context, token string) error {
	s.cache.Invalidate(token)
	if err := s.repo.DeleteSession(ctx, token); err != nil && !isNotFound(err) {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// GetUserByID fetches a user with current stats.
func (s *service) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.GetUserByID(ctx, userID)
}

// normalizeUsername applies NFKC normalization and trims surrounding space so
// visually identical names collide on the unique index instead of coexisting.
func normalizeUsername(username string) (string, error) {
	username = strings.TrimSpace(norm.NFKC.String(username))
	length := utf8.RuneCountInString(username)
	if length < MinUsernameLength || length > MaxUsernameLength {
		return "", fmt.Errorf("%w: username must be %d-%d characters", domain.ErrInvalidInput, MinUsernameLength, MaxUsernameLength)
	}
	return username, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrInvalidSession)
}
