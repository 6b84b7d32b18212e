package user

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwei-dev/CaseSim_Go/internal/domain"
)

// fakeUserRepo is an in-memory repository.User
type fakeUserRepo struct {
	mu       sync.Mutex
	users    map[string]*domain.User
	sessions map[string]*domain.Session
	nextID   int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:    make(map[string]*domain.User),
		sessions: make(map[string]*domain.Session),
	}
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.users[user.Username]; exists {
		return domain.ErrUsernameTaken
	}
	f.nextID++
	user.ID = fmt.Sprintf("user-%d", f.nextID)
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	stored := *user
	f.users[user.Username] = &stored
	return nil
}

func (f *fakeUserRepo) GetUserByUsername(_ context.Context, username string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserRepo) GetUserByID(_ context.Context, userID string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.ID == userID {
			copied := *u
			return &copied, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) CreateSession(_ context.Context, session *domain.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored := *session
	f.sessions[session.Token] = &stored
	return nil
}

func (f *fakeUserRepo) GetSession(_ context.Context, token string) (*domain.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sessions[token]
	if !ok {
		return nil, domain.ErrInvalidSession
	}
	copied := *s
	return &copied, nil
}

func (f *fakeUserRepo) DeleteSession(_ context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.sessions, token)
	return nil
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("hashes the password and normalizes the username", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := NewService(repo, time.Hour)

		u, err := svc.Register(ctx, "  alice  ", "hunter22")
		require.NoError(t, err)

		assert.Equal(t, "alice", u.Username)
		assert.NotEmpty(t, u.ID)
		assert.NotEqual(t, "hunter22", u.PasswordHash)
		assert.NotContains(t, u.PasswordHash, "hunter22")
	})

	t.Run("rejects short usernames", func(t *testing.T) {
		svc := NewService(newFakeUserRepo(), time.Hour)
		_, err := svc.Register(ctx, "ab", "hunter22")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("rejects short passwords", func(t *testing.T) {
		svc := NewService(newFakeUserRepo(), time.Hour)
		_, err := svc.Register(ctx, "alice", "12345")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("duplicate username", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := NewService(repo, time.Hour)

		_, err := svc.Register(ctx, "alice", "hunter22")
		require.NoError(t, err)

		_, err = svc.Register(ctx, "alice", "other-password")
		assert.ErrorIs(t, err, domain.ErrUsernameTaken)
	})

	t.Run("visually identical usernames collide after normalization", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := NewService(repo, time.Hour)

		_, err := svc.Register(ctx, "alice", "hunter22")
		require.NoError(t, err)

		// Fullwidth letters normalize (NFKC) to their ASCII forms.
		_, err = svc.Register(ctx, "ａｌｉｃｅ", "hunter22")
		assert.ErrorIs(t, err, domain.ErrUsernameTaken)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("valid credentials open a session", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := NewService(repo, time.Hour)
		registered, err := svc.Register(ctx, "alice", "hunter22")
		require.NoError(t, err)

		session, u, err := svc.Login(ctx, "alice", "hunter22")
		require.NoError(t, err)

		assert.Equal(t, registered.ID, u.ID)
		assert.NotEmpty(t, session.Token)
		assert.Equal(t, u.ID, session.UserID)
		assert.True(t, session.ExpiresAt.After(time.Now()))
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := NewService(repo, time.Hour)
		_, err := svc.Register(ctx, "alice", "hunter22")
		require.NoError(t, err)

		_, _, err = svc.Login(ctx, "alice", "wrong")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown username yields the same error as a bad password", func(t *testing.T) {
		svc := NewService(newFakeUserRepo(), time.Hour)
		_, _, err := svc.Login(ctx, "nobody", "hunter22")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()

	t.Run("valid token resolves to the user", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := NewService(repo, time.Hour)
		_, err := svc.Register(ctx, "alice", "hunter22")
		require.NoError(t, err)
		session, u, err := svc.Login(ctx, "alice", "hunter22")
		require.NoError(t, err)

		userID, err := svc.Authenticate(ctx, session.Token)
		require.NoError(t, err)
		assert.Equal(t, u.ID, userID)
	})

	t.Run("empty token", func(t *testing.T) {
		svc := NewService(newFakeUserRepo(), time.Hour)
		_, err := svc.Authenticate(ctx, "")
		assert.ErrorIs(t, err, domain.ErrInvalidSession)
	})

	t.Run("unknown token", func(t *testing.T) {
		svc := NewService(newFakeUserRepo(), time.Hour)
		_, err := svc.Authenticate(ctx, "no-such-token")
		assert.ErrorIs(t, err, domain.ErrInvalidSession)
	})

	t.Run("expired session is rejected and cleaned up", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := NewService(repo, time.Hour)

		expired := &domain.Session{
			Token:     "stale-token",
			UserID:    "user-1",
			CreatedAt: time.Now().Add(-2 * time.Hour),
			ExpiresAt: time.Now().Add(-time.Hour),
		}
		require.NoError(t, repo.CreateSession(ctx, expired))

		_, err := svc.Authenticate(ctx, "stale-token")
		assert.ErrorIs(t, err, domain.ErrInvalidSession)

		_, err = repo.GetSession(ctx, "stale-token")
		assert.ErrorIs(t, err, domain.ErrInvalidSession)
	})
}

func TestLogout(t *testing.T) {
	ctx := context.Background()

	t.Run("revoked token no longer authenticates", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := NewService(repo, time.Hour)
		_, err := svc.Register(ctx, "alice", "hunter22")
		require.NoError(t, err)
		session, _, err := svc.Login(ctx, "alice", "hunter22")
		require.NoError(t, err)

		require.NoError(t, svc.Logout(ctx, session.Token))

		_, err = svc.Authenticate(ctx, session.Token)
		assert.ErrorIs(t, err, domain.ErrInvalidSession)
	})

	t.Run("logging out an unknown token is not an error", func(t *testing.T) {
		svc := NewService(newFakeUserRepo(), time.Hour)
		assert.NoError(t, svc.Logout(ctx, "no-such-token"))
	})
}
