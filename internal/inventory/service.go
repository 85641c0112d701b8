package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/CoinToss_Go/internal/concurrency"
	"github.com/osse101/CoinToss_Go/internal/domain"
	"github.com/osse101/CoinToss_Go/internal/logger"
	"github.com/osse101/CoinToss_Go/internal/repository"
)

// Catalog is the part of the catalog the inventory service reads
type Catalog interface {
	Get(ctx context.Context, itemID string) (*domain.CatalogItem, error)
	Index(ctx context.Context) (domain.CatalogIndex, error)
}

// Service serves the owner's inventory and the admin stock adjustment
type Service interface {
	View(ctx context.Context, ownerID string) ([]domain.InventoryLine, error)
	AdjustStock(ctx context.Context, ownerID, itemID string, delta int) (int, error)
}

type service struct {
	repo    repository.Game
	catalog Catalog
	locks   *concurrency.LockManager
}

// NewService creates an inventory service sharing the round engine's owner locks
func NewService(repo repository.Game, catalog Catalog, locks *concurrency.LockManager) Service {
	return &service{repo: repo, catalog: catalog, locks: locks}
}

// View returns the owner's stock aggregated by item name
func (s *service) View(ctx context.Context, ownerID string) ([]domain.InventoryLine, error) {
	stock, err := s.repo.GetAllStock(ctx, ownerID)
	if err != nil {
		return nil, storageFailure(ErrContextListStock, err)
	}
	index, err := s.catalog.Index(ctx)
	if err != nil {
		return nil, storageFailure(ErrContextCatalog, err)
	}
	return domain.AggregateInventory(stock, index), nil
}

// AdjustStock applies a signed delta and returns the new quantity. Reaching zero
// deletes the entry; a negative delta cannot create one.
func (s *service) AdjustStock(ctx context.Context, ownerID, itemID string, delta int) (int, error) {
	if _, err := s.catalog.Get(ctx, itemID); err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			return 0, err
		}
		return 0, storageFailure(ErrContextLoadCatalog, err)
	}

	unlock := s.locks.Lock(ownerID)
	defer unlock()

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return 0, storageFailure(ErrContextBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	qty, err := NewLedger(tx, ownerID).Adjust(ctx, itemID, delta)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return 0, err
		}
		return 0, storageFailure(ErrContextWriteStock, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, storageFailure(ErrContextCommit, err)
	}

	logger.FromContext(ctx).Info(LogMsgStockAdjusted, "owner_id", ownerID, "item", itemID, "delta", delta, "quantity", qty)
	return qty, nil
}

func storageFailure(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", domain.ErrStorageFailure, op, err)
}
