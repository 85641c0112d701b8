package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Constraint names the repository maps to domain errors
const (
	ConstraintOneOngoingSession = "idx_sessions_one_ongoing"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction = "failed to begin transaction"
	ErrMsgFailedToCommit           = "failed to commit transaction"
)

// Error Messages - Queries
const (
	ErrMsgFailedToGetCatalog       = "failed to get catalog"
	ErrMsgFailedToGetCatalogItem   = "failed to get catalog item"
	ErrMsgFailedToGetSession       = "failed to get ongoing session"
	ErrMsgFailedToCreateSession    = "failed to create session"
	ErrMsgFailedToUpdateSession    = "failed to update session"
	ErrMsgFailedToGetStock         = "failed to get stock"
	ErrMsgFailedToUpsertStock      = "failed to upsert stock"
	ErrMsgFailedToDeleteStock      = "failed to delete stock"
	ErrMsgFailedToListStock        = "failed to list stock"
	ErrMsgFailedToGetRoundItem     = "failed to get round item"
	ErrMsgFailedToUpsertRoundItem  = "failed to upsert round item"
	ErrMsgFailedToListRoundItems   = "failed to list round items"
	ErrMsgFailedToQueryLeaderboard = "failed to query leaderboard"
	ErrMsgFailedToScanRow          = "failed to scan row"
)
