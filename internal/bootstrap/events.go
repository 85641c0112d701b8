package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/CoinToss_Go/internal/event"
	"github.com/osse101/CoinToss_Go/internal/logger"
	"github.com/osse101/CoinToss_Go/internal/metrics"
)

// InitializeEventSystem creates the bus and attaches the metrics collector and the game log
func InitializeEventSystem() event.Bus {
	bus := event.NewMemoryBus()

	metrics.NewEventMetricsCollector().Register(bus)
	bus.Subscribe(event.SessionFinished, logFinishedSession)

	slog.Default().Info(LogMsgEventSystemReady)
	return bus
}

func logFinishedSession(ctx context.Context, evt event.Event) error {
	payload, ok := evt.Payload.(event.SessionPayloadV1)
	if !ok {
		return nil
	}
	logger.FromContext(ctx).Info(LogMsgSessionFinished,
		"session_id", payload.SessionID,
		"owner_id", payload.OwnerID,
		"category", payload.Category,
		"score", payload.Score)
	return nil
}
