package inventory

// Error contexts
const (
	ErrContextGetStock       = "failed to get stock"
	ErrContextWriteStock     = "failed to write stock"
	ErrContextListStock      = "failed to list stock"
	ErrContextGetRoundItem   = "failed to get round item"
	ErrContextWriteRoundItem = "failed to write round item"
	ErrContextListRoundItems = "failed to list round items"
)

// Service error contexts
const (
	ErrContextBeginTx     = "failed to begin inventory transaction"
	ErrContextCatalog     = "failed to load catalog"
	ErrContextCommit      = "failed to commit inventory"
	ErrContextLoadCatalog = "failed to look up item"
)

// Log messages
const (
	LogMsgStockAdjusted = "Stock adjusted"
)
