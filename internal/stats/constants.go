package stats

// LeaderboardLimit is the number of entries exposed on the public leaderboard.
const LeaderboardLimit = 50

// Error messages
const (
	ErrMsgListStatsFailed = "failed to list user stats: %w"
)

// Log messages
const (
	LogMsgRetrievedLeaderboard = "Retrieved leaderboard"
)
