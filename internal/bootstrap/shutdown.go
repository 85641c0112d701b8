package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/CoinToss_Go/internal/server"
)

// ShutdownComponents holds everything that needs an orderly stop
type ShutdownComponents struct {
	Server  *server.Server
	Storage *Storage
}

// GracefulShutdown stops accepting requests, lets in-flight rounds finish, then closes storage.
// Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	// pool close waits for connections still checked out
	if components.Storage != nil && components.Storage.Close != nil {
		components.Storage.Close()
	}

	slog.Info(LogMsgServerStopped)
}
