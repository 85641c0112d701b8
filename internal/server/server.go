// Package server wires the HTTP routes and middleware.
package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/CoinToss_Go/internal/auth"
	"github.com/osse101/CoinToss_Go/internal/catalog"
	"github.com/osse101/CoinToss_Go/internal/handler"
	"github.com/osse101/CoinToss_Go/internal/inventory"
	"github.com/osse101/CoinToss_Go/internal/metrics"
	"github.com/osse101/CoinToss_Go/internal/round"
	"github.com/osse101/CoinToss_Go/internal/session"
)

// Options are the transport settings
type Options struct {
	Addr           string
	APIKey         string
	TrustedProxies []string
	MaxBodyBytes   int64
}

// Services are the collaborators the routes call
type Services struct {
	Sessions   session.Service
	Engine     round.Service
	Inventory  inventory.Service
	Catalog    catalog.Service
	Identifier auth.Identifier
	Ready      handler.Pinger // nil when storage is in-process
	Gatherer   prometheus.Gatherer
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(opts Options, svc Services) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              opts.Addr,
			Handler:           NewRouter(opts, svc),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter builds the chi router. Middleware runs in the order it is added, outermost first.
func NewRouter(opts Options, svc Services) http.Handler {
	r := chi.NewRouter()
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(RateLimitMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(opts.MaxBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(svc.Ready))
	r.Get("/version", handler.HandleVersion())

	gatherer := svc.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	game := handler.NewGameHandler(svc.Sessions, svc.Engine, svc.Inventory)
	items := handler.NewInventoryHandler(svc.Inventory, svc.Catalog)

	r.Route("/api/v1", func(r chi.Router) {
		// public reads
		r.Get("/items", items.HandleListItems)
		r.Get("/items/{id}", items.HandleGetItem)
		r.Get("/leaderboard", game.HandleLeaderboard)

		// owner routes
		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(svc.Identifier))

			r.Route("/game", func(r chi.Router) {
				r.Post("/start", game.HandleStart)
				r.Post("/toss", game.HandleToss)
				r.Get("/current", game.HandleCurrent)
			})
			r.Get("/inventory", items.HandleGetInventory)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(APIKeyMiddleware(opts.APIKey, opts.TrustedProxies, detector))
			r.Post("/stock", items.HandleAdjustStock)
		})
	})

	return r
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start serves until Stop is called. It returns http.ErrServerClosed after a clean stop.
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	slog.Default().Info(LogMsgServerStopping)
	return s.httpServer.Shutdown(ctx)
}
