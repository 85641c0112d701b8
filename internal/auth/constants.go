package auth

// Token settings
const (
	SigningMethod       = "HS256"
	BearerPrefix        = "Bearer "
	HeaderAuthorization = "Authorization"
	DefaultTokenTTL     = 24 * 60 * 60 // seconds
)

// Error messages
const (
	ErrMsgMissingToken   = "missing bearer token"
	ErrMsgInvalidToken   = "invalid token"
	ErrMsgTokenExpired   = "token expired"
	ErrMsgIssuerMismatch = "token issuer mismatch"
	ErrMsgMissingSubject = "token has no subject"
	ErrMsgEmptySecret    = "signing secret is empty"
	ErrMsgEmptyOwner     = "owner id is required"
	ErrMsgUnauthorized   = "Unauthorized"
)

// Log messages
const (
	LogMsgIdentifyFailed = "Owner identification failed"
	LogMsgTokenIssued    = "Token issued"
)
