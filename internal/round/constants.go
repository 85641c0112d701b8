package round

// Error contexts
const (
	ErrContextBeginTx        = "failed to begin round transaction"
	ErrContextLoadSession    = "failed to load ongoing session"
	ErrContextValidate       = "failed to validate stakes"
	ErrContextTrackSpring    = "failed to track spring"
	ErrContextConsumeStake   = "failed to consume staked items"
	ErrContextParasites      = "failed to run parasite consumption"
	ErrContextRewards        = "failed to grant rewards"
	ErrContextUpdateSession  = "failed to update session"
	ErrContextSnapshot       = "failed to snapshot inventory"
	ErrContextUsedItems      = "failed to list used items"
	ErrContextClearParasites = "failed to clear parasites"
	ErrContextCommit         = "failed to commit round"
)

// Log messages
const (
	LogMsgResolveRoundCalled = "ResolveRound called"
	LogMsgStakeRejected      = "Stake rejected"
	LogMsgRoundResolved      = "Round resolved"
	LogMsgPublishFailed      = "Failed to publish round event"
)
