package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/CoinToss_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"` // Event schema version (e.g., "1.0")
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// Game event types
const (
	SessionStarted  Type = "session.started"
	SessionFinished Type = "session.finished"
	RoundResolved   Type = "round.resolved"
	StakeRejected   Type = "stake.rejected"
	ItemsGranted    Type = "items.granted"
)

// SessionPayloadV1 is the payload for session.started and session.finished
type SessionPayloadV1 struct {
	SessionID int64           `json:"session_id"`
	OwnerID   string          `json:"owner_id"`
	Category  domain.Category `json:"category"`
	Score     int             `json:"score"`
	Timestamp int64           `json:"timestamp"`
}

// RoundPayloadV1 is the payload for round.resolved
type RoundPayloadV1 struct {
	SessionID int64          `json:"session_id"`
	OwnerID   string         `json:"owner_id"`
	Outcome   domain.Outcome `json:"outcome"`
	Won       bool           `json:"won"`
	Score     int            `json:"score"`
	Duration  time.Duration  `json:"duration"`
}

// StakeRejectedPayloadV1 is the payload for stake.rejected
type StakeRejectedPayloadV1 struct {
	OwnerID string `json:"owner_id"`
	Reason  string `json:"reason"`
	Item    string `json:"item,omitempty"`
}

// ItemsGrantedPayloadV1 is the payload for items.granted. Source is round, enemy or session_end.
type ItemsGrantedPayloadV1 struct {
	OwnerID string        `json:"owner_id"`
	Source  string        `json:"source"`
	Drops   []domain.Drop `json:"drops"`
}

// Grant sources
const (
	SourceRound      = "round"
	SourceEnemy      = "enemy"
	SourceSessionEnd = "session_end"
)

// NewSessionStartedEvent creates a session.started event
func NewSessionStartedEvent(s *domain.Session) Event {
	return newSessionEvent(SessionStarted, s)
}

// NewSessionFinishedEvent creates a session.finished event
func NewSessionFinishedEvent(s *domain.Session) Event {
	return newSessionEvent(SessionFinished, s)
}

func newSessionEvent(t Type, s *domain.Session) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    t,
		Payload: SessionPayloadV1{
			SessionID: s.ID,
			OwnerID:   s.OwnerID,
			Category:  s.Category,
			Score:     s.Score,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewRoundResolvedEvent creates a round.resolved event
func NewRoundResolvedEvent(ownerID string, result *domain.RoundResult, duration time.Duration) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    RoundResolved,
		Payload: RoundPayloadV1{
			SessionID: result.SessionID,
			OwnerID:   ownerID,
			Outcome:   result.Outcome,
			Won:       result.Won,
			Score:     result.Score,
			Duration:  duration,
		},
	}
}

// NewStakeRejectedEvent creates a stake.rejected event
func NewStakeRejectedEvent(ownerID string, stakeErr *domain.StakeError) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    StakeRejected,
		Payload: StakeRejectedPayloadV1{
			OwnerID: ownerID,
			Reason:  stakeErr.Reason,
			Item:    stakeErr.Item,
		},
	}
}

// NewItemsGrantedEvent creates an items.granted event
func NewItemsGrantedEvent(ownerID, source string, drops []domain.Drop) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemsGranted,
		Payload: ItemsGrantedPayloadV1{
			OwnerID: ownerID,
			Source:  source,
			Drops:   drops,
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every subscriber synchronously and joins their errors
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.Type]
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
