package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidLimit          = "Invalid limit parameter"
	ErrMsgMissingItemID         = "Missing item id"
	ErrMsgRequestTooLarge       = "Request body too large"
)

// User-facing messages derived from domain errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgAuthFailedError     = "Authentication failed. Please provide a valid token."
	ErrMsgNoGameError         = "You have no game in progress. Start one first."
	ErrMsgGameInProgressError = "You already have a game in progress."
	ErrMsgItemNotFoundError   = "Item not found"
	ErrMsgNotEnoughItemsError = "You don't have enough of that item"
	ErrMsgSpringUsedError     = "Your spring has already been used this game"
	ErrMsgTooMuchLeadError    = "That's too much lead for one coin"
	ErrMsgConflictError       = "Leadmites can't share a side with your leads"
	ErrMsgSpecialCoinError    = "Special coins can't be combined with other items"
	ErrMsgInvalidSideError    = "Every weighted item needs a side: heads or tails"
)

// Health statuses
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
	HealthMsgStorageFailed  = "storage check failed"
)

// Log messages
const (
	LogMsgDecodeFailed    = "Failed to decode request"
	LogMsgRequestDecoded  = "Request decoded"
	LogMsgServiceError    = "Service call failed"
	LogMsgEncodeFailed    = "Failed to encode JSON response"
	LogMsgWriteFailed     = "Failed to write response buffer"
	LogMsgReadinessFailed = "Readiness check failed"
	LogMsgStockAdjusted   = "Admin stock adjustment"
)

// Default category for games started without one
const DefaultCategory = "classic"
