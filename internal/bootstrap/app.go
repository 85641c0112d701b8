// Package bootstrap assembles the service from configuration.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/osse101/CoinToss_Go/internal/auth"
	"github.com/osse101/CoinToss_Go/internal/catalog"
	"github.com/osse101/CoinToss_Go/internal/concurrency"
	"github.com/osse101/CoinToss_Go/internal/config"
	"github.com/osse101/CoinToss_Go/internal/inventory"
	"github.com/osse101/CoinToss_Go/internal/loot"
	"github.com/osse101/CoinToss_Go/internal/metrics"
	"github.com/osse101/CoinToss_Go/internal/round"
	"github.com/osse101/CoinToss_Go/internal/server"
	"github.com/osse101/CoinToss_Go/internal/session"
	"github.com/osse101/CoinToss_Go/internal/stake"
)

// App is a fully wired service
type App struct {
	Server  *server.Server
	storage *Storage
	cfg     *config.Config
}

// Build wires storage, services and the HTTP server.
// A nil registry uses the process-wide prometheus registry.
func Build(ctx context.Context, cfg *config.Config, reg *prometheus.Registry) (*App, error) {
	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if reg != nil {
		registerer, gatherer = reg, reg
	}

	storage, err := OpenStorage(ctx, cfg)
	if err != nil {
		return nil, err
	}

	cat := catalog.NewService(storage.Repo, cfg.CatalogCacheTTL)
	if err := metrics.RegisterCatalogCache(registerer, func() (int64, int64, int) {
		s := cat.Stats()
		return s.Hits, s.Misses, s.Size
	}); err != nil {
		storage.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgRegisterCacheMetric, err)
	}

	bus := InitializeEventSystem()
	locks := concurrency.NewLockManager()
	generator := loot.NewGenerator(cat, nil, cfg.EnemyMinScore)

	svc := server.Services{
		Sessions:   session.NewService(storage.Repo, locks, bus),
		Engine:     round.NewEngine(storage.Repo, stake.NewValidator(), generator, cat, locks, nil, bus),
		Inventory:  inventory.NewService(storage.Repo, cat, locks),
		Catalog:    cat,
		Identifier: auth.NewJWTIdentifier(cfg.JWTSecret, cfg.JWTIssuer),
		Ready:      storage.Ready,
		Gatherer:   gatherer,
	}

	srv := server.NewServer(server.Options{
		Addr:           cfg.Addr(),
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		MaxBodyBytes:   cfg.MaxBodyBytes,
	}, svc)

	return &App{Server: srv, storage: storage, cfg: cfg}, nil
}

// Run serves until ctx is cancelled or the listener fails, then shuts down
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := a.Server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	var serveErr error
	select {
	case <-ctx.Done():
	case serveErr = <-errCh:
		if serveErr != nil {
			slog.Default().Error(LogMsgServerFailed, "error", serveErr)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), a.cfg.ShutdownTimeout)
	defer cancel()
	GracefulShutdown(shutdownCtx, ShutdownComponents{Server: a.Server, Storage: a.storage})

	return serveErr
}
