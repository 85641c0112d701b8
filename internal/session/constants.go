package session

// Leaderboard paging
const (
	DefaultLeaderboardLimit = 10
	MaxLeaderboardLimit     = 100
)

// Error contexts
const (
	ErrContextBeginTx     = "failed to begin session transaction"
	ErrContextLoadSession = "failed to load ongoing session"
	ErrContextCreate      = "failed to create session"
	ErrContextCommit      = "failed to commit session"
	ErrContextLeaderboard = "failed to load leaderboard"
)

// Log messages
const (
	LogMsgSessionStarted = "Session started"
	LogMsgPublishFailed  = "Failed to publish session event"
)
