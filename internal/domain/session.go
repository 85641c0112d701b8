package domain

import "time"

// Category selects the game ruleset
type Category string

const (
	CategoryClassic  Category = "classic"
	CategoryItemless Category = "itemless"
)

// Valid reports whether c is a known category
func (c Category) Valid() bool {
	return c == CategoryClassic || c == CategoryItemless
}

// SessionStatus is the lifecycle state of a session
type SessionStatus string

const (
	SessionOngoing  SessionStatus = "ongoing"
	SessionFinished SessionStatus = "finished"
)

// Session is one player's run of consecutive rounds
type Session struct {
	ID        int64         `json:"id" db:"id"`
	OwnerID   string        `json:"owner_id" db:"owner_id"`
	Score     int           `json:"score" db:"score"`
	Category  Category      `json:"category" db:"category"`
	Status    SessionStatus `json:"status" db:"status"`
	CreatedAt time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt time.Time     `json:"updated_at" db:"updated_at"`
}

// IsOngoing reports whether the session still accepts rounds
func (s *Session) IsOngoing() bool {
	return s != nil && s.Status == SessionOngoing
}

// LeaderboardEntry is one owner's best score
type LeaderboardEntry struct {
	Rank     int      `json:"rank"`
	OwnerID  string   `json:"owner_id"`
	Score    int      `json:"score"`
	Category Category `json:"category"`
}
