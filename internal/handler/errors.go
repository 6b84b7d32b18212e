package handler

// Generic HTTP error messages for client responses.
// These intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to stay consistent.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	ErrMsgMissingQueryParam = "Missing %s query parameter"

	ErrMsgMissingAuthToken = "Missing session token"

	ErrMsgDrawFailed           = "Failed to perform draw"
	ErrMsgGetCollectionsFailed = "Failed to retrieve collections"
	ErrMsgGetLeaderboardFailed = "Failed to retrieve leaderboard"
	ErrMsgGetTriviaFailed      = "No trivia available right now"
	ErrMsgRegisterFailed       = "Failed to register user"
	ErrMsgLoginFailed          = "Failed to log in"
	ErrMsgLogoutFailed         = "Failed to log out"
)

// Success messages for API responses
const (
	MsgRegisteredSuccess = "User registered successfully"
	MsgLoggedOutSuccess  = "Logged out"
)
