package domain

// Outcome names the branch a round took
type Outcome string

const (
	OutcomeCorrect   Outcome = "correct"
	OutcomeSaved     Outcome = "saved"
	OutcomeLost      Outcome = "lost"
	OutcomeAmplified Outcome = "amplifier"
	OutcomeRigged    Outcome = "rigged"
)

// RoundResult is everything a round produced
type RoundResult struct {
	SessionID      int64            `json:"session_id"`
	Outcome        Outcome          `json:"outcome"`
	CoinResult     Side             `json:"coin_result"`
	Won            bool             `json:"won"`
	Score          int              `json:"score"`
	Status         SessionStatus    `json:"status"`
	Message        string           `json:"message"`
	ParasiteReport string           `json:"parasite_report,omitempty"`
	Rewards        []Drop           `json:"rewards,omitempty"`
	Enemy          *Drop            `json:"enemy,omitempty"`
	Inventory      []InventoryLine  `json:"inventory,omitempty"`
	UsedItems      []RoundItemEntry `json:"used_items,omitempty"`
}

// Finished reports whether the round ended the session
func (r *RoundResult) Finished() bool {
	return r.Status == SessionFinished
}
