package database

// Pool sizing defaults
const (
	DefaultMinConnections = 2
	DefaultMaxConnections = 10
)

// Error Messages - Database Operations
const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
)

// Log Messages
const (
	LogMsgConnected = "Connected to the database"
)
