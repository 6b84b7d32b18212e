package user

import "time"

// Username constraints
const (
	MinUsernameLength = 3
	MaxUsernameLength = 50
	MinPasswordLength = 6
)

// Session cache settings. The cache TTL is deliberately shorter than the
// session TTL so revoked sessions age out quickly.
const (
	SessionCacheSize = 1024
	SessionCacheTTL  = 5 * time.Minute
)

// Log messages
const (
	LogMsgUserRegistered  = "User registered"
	LogMsgUserLoggedIn    = "User logged in"
	LogMsgSessionRejected = "Session rejected"
)
