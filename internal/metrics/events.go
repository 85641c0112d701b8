package metrics

import (
	"context"

	"github.com/osse101/CoinToss_Go/internal/event"
	"github.com/osse101/CoinToss_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all game events
func (e *EventMetricsCollector) Register(bus event.Bus) {
	eventTypes := []event.Type{
		event.SessionStarted,
		event.SessionFinished,
		event.RoundResolved,
		event.StakeRejected,
		event.ItemsGranted,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch payload := evt.Payload.(type) {
	case event.SessionPayloadV1:
		if evt.Type == event.SessionStarted {
			SessionsStarted.WithLabelValues(string(payload.Category)).Inc()
		} else {
			SessionsFinished.WithLabelValues(string(payload.Category)).Inc()
			FinalScore.Observe(float64(payload.Score))
		}

	case event.RoundPayloadV1:
		RoundsResolved.WithLabelValues(string(payload.Outcome)).Inc()
		RoundDuration.Observe(payload.Duration.Seconds())

	case event.StakeRejectedPayloadV1:
		StakesRejected.WithLabelValues(payload.Reason).Inc()

	case event.ItemsGrantedPayloadV1:
		for _, drop := range payload.Drops {
			ItemsGranted.WithLabelValues(drop.ItemID, payload.Source).Add(float64(drop.Quantity))
		}

	default:
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		log.Debug(LogMsgUnexpectedPayload, "type", evt.Type)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
