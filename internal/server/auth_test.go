package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mwei-dev/CaseSim_Go/internal/domain"
	"github.com/mwei-dev/CaseSim_Go/internal/handler"
)

// mockUserService mocks user.Service for middleware tests
type mockUserService struct {
	mock.Mock
}

func (m *mockUserService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	args := m.Called(ctx, username, password)
	if v := args.Get(0); v != nil {
		return v.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserService) Login(ctx context.Context, username, password string) (*domain.Session, *domain.User, error) {
	args := m.Called(ctx, username, password)
	var session *domain.Session
	var u *domain.User
	if v := args.Get(0); v != nil {
		session = v.(*domain.Session)
	}
	if v := args.Get(1); v != nil {
		u = v.(*domain.User)
	}
	return session, u, args.Error(2)
}

func (m *mockUserService) Authenticate(ctx context.Context, token string) (string, error) {
	args := m.Called(ctx, token)
	return args.String(0), args.Error(1)
}

func (m *mockUserService) Logout(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *mockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if v := args.Get(0); v != nil {
		return v.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func captureUserID(t *testing.T, found *string, ok *bool) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*found, *ok = handler.UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestSessionAuthMiddleware(t *testing.T) {
	t.Run("valid token injects the user", func(t *testing.T) {
		svc := &mockUserService{}
		svc.On("Authenticate", mock.Anything, "tok-1").Return("user-1", nil)

		var userID string
		var ok bool
		mw := SessionAuthMiddleware(svc)(captureUserID(t, &userID, &ok))

		req := httptest.NewRequest("POST", "/api/v1/draw", nil)
		req.Header.Set("Authorization", "Bearer tok-1")
		w := httptest.NewRecorder()
		mw.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, ok)
		assert.Equal(t, "user-1", userID)
	})

	t.Run("invalid token rejected", func(t *testing.T) {
		svc := &mockUserService{}
		svc.On("Authenticate", mock.Anything, "bad").Return("", domain.ErrInvalidSession)

		called := false
		mw := SessionAuthMiddleware(svc)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			called = true
		}))

		req := httptest.NewRequest("POST", "/api/v1/draw", nil)
		req.Header.Set("Authorization", "Bearer bad")
		w := httptest.NewRecorder()
		mw.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, called)
	})

	t.Run("missing token rejected", func(t *testing.T) {
		svc := &mockUserService{}
		svc.On("Authenticate", mock.Anything, "").Return("", domain.ErrInvalidSession)

		mw := SessionAuthMiddleware(svc)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

		req := httptest.NewRequest("POST", "/api/v1/draw", nil)
		w := httptest.NewRecorder()
		mw.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestOptionalSessionAuthMiddleware(t *testing.T) {
	t.Run("anonymous passes through without a user", func(t *testing.T) {
		svc := &mockUserService{}

		var userID string
		var ok bool
		mw := OptionalSessionAuthMiddleware(svc)(captureUserID(t, &userID, &ok))

		req := httptest.NewRequest("GET", "/api/v1/leaderboard", nil)
		w := httptest.NewRecorder()
		mw.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.False(t, ok)
		svc.AssertNotCalled(t, "Authenticate", mock.Anything, mock.Anything)
	})

	t.Run("valid token injects the user", func(t *testing.T) {
		svc := &mockUserService{}
		svc.On("Authenticate", mock.Anything, "tok-1").Return("user-1", nil)

		var userID string
		var ok bool
		mw := OptionalSessionAuthMiddleware(svc)(captureUserID(t, &userID, &ok))

		req := httptest.NewRequest("GET", "/api/v1/leaderboard", nil)
		req.Header.Set("Authorization", "Bearer tok-1")
		w := httptest.NewRecorder()
		mw.ServeHTTP(w, req)

		assert.True(t, ok)
		assert.Equal(t, "user-1", userID)
	})

	t.Run("stale token still passes through anonymously", func(t *testing.T) {
		svc := &mockUserService{}
		svc.On("Authenticate", mock.Anything, "stale").Return("", domain.ErrInvalidSession)

		var userID string
		var ok bool
		mw := OptionalSessionAuthMiddleware(svc)(captureUserID(t, &userID, &ok))

		req := httptest.NewRequest("GET", "/api/v1/leaderboard", nil)
		req.Header.Set("Authorization", "Bearer stale")
		w := httptest.NewRecorder()
		mw.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.False(t, ok)
	})
}
