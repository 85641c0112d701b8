package repository

import (
	"context"

	"github.com/osse101/CoinToss_Go/internal/domain"
)

// Game defines the storage collaborator required by the round engine and its read surfaces
type Game interface {
	// Transaction support
	BeginTx(ctx context.Context) (GameTx, error)

	// Catalog
	GetCatalog(ctx context.Context) ([]domain.CatalogItem, error)
	GetCatalogItem(ctx context.Context, itemID string) (*domain.CatalogItem, error)

	// Non-locking reads
	GetOngoingSession(ctx context.Context, ownerID string) (*domain.Session, error)
	GetAllStock(ctx context.Context, ownerID string) ([]domain.StockEntry, error)
	Leaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error)
}

// GameTx extends Tx with the operations one round performs atomically
type GameTx interface {
	Tx // Commit, Rollback

	// Sessions. GetOngoingSession locks the returned row until the transaction ends.
	GetOngoingSession(ctx context.Context, ownerID string) (*domain.Session, error)
	CreateSession(ctx context.Context, session *domain.Session) error
	UpdateSession(ctx context.Context, session *domain.Session) error

	// Stock. A quantity at or below zero removes the entry.
	GetStock(ctx context.Context, ownerID, itemID string) (int, error)
	UpsertStock(ctx context.Context, ownerID, itemID string, quantity int) error
	GetAllStock(ctx context.Context, ownerID string) ([]domain.StockEntry, error)

	// Round items
	GetRoundItem(ctx context.Context, sessionID int64, itemID string) (*domain.RoundItemEntry, error)
	UpsertRoundItem(ctx context.Context, sessionID int64, itemID string, quantity int) error
	GetAllRoundItems(ctx context.Context, sessionID int64) ([]domain.RoundItemEntry, error)
}
