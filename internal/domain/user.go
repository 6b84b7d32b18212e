package domain

import "time"

// User represents a registered player.
// PasswordHash never leaves the repository/service layer.
type User struct {
	ID           string     `json:"user_id"`
	Username     string     `json:"username"`
	PasswordHash string     `json:"-"`
	Stats        UserStats  `json:"stats"`
	LastDrawAt   *time.Time `json:"last_draw_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Session is an opaque server-side session token for a user.
type Session struct {
	Token     string    `json:"token"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session is past its expiry at the given time.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
