// Package inventory provides the per-player stock ledger and the per-session
// round-item ledger on top of an open storage transaction.
package inventory

import (
	"context"
	"fmt"

	"github.com/osse101/CoinToss_Go/internal/domain"
	"github.com/osse101/CoinToss_Go/internal/repository"
)

// Ledger reads and mutates one owner's stock inside a transaction
type Ledger struct {
	tx      repository.GameTx
	ownerID string
}

// NewLedger binds a ledger to tx and ownerID
func NewLedger(tx repository.GameTx, ownerID string) *Ledger {
	return &Ledger{tx: tx, ownerID: ownerID}
}

// OwnerID returns the owner the ledger is bound to
func (l *Ledger) OwnerID() string {
	return l.ownerID
}

// Get returns the owned quantity, 0 when absent
func (l *Ledger) Get(ctx context.Context, itemID string) (int, error) {
	qty, err := l.tx.GetStock(ctx, l.ownerID, itemID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrContextGetStock, err)
	}
	return qty, nil
}

// Consume removes n units. It fails with domain.ErrInsufficientStock instead of going negative.
func (l *Ledger) Consume(ctx context.Context, itemID string, n int) error {
	if n <= 0 {
		return nil
	}
	qty, err := l.Get(ctx, itemID)
	if err != nil {
		return err
	}
	if qty < n {
		return domain.NewStakeError(domain.ErrInsufficientStock, itemID)
	}
	return l.set(ctx, itemID, qty-n)
}

// ConsumeUpTo removes min(n, owned) units and returns how many were removed
func (l *Ledger) ConsumeUpTo(ctx context.Context, itemID string, n int) (int, error) {
	if n <= 0 {
		return 0, nil
	}
	qty, err := l.Get(ctx, itemID)
	if err != nil {
		return 0, err
	}
	taken := min(n, qty)
	if taken == 0 {
		return 0, nil
	}
	return taken, l.set(ctx, itemID, qty-taken)
}

// Add grants n units
func (l *Ledger) Add(ctx context.Context, itemID string, n int) error {
	if n <= 0 {
		return nil
	}
	qty, err := l.Get(ctx, itemID)
	if err != nil {
		return err
	}
	return l.set(ctx, itemID, qty+n)
}

// Adjust applies a signed delta, clamping at zero. Removing from an absent entry fails.
func (l *Ledger) Adjust(ctx context.Context, itemID string, delta int) (int, error) {
	qty, err := l.Get(ctx, itemID)
	if err != nil {
		return 0, err
	}
	if qty == 0 && delta < 0 {
		return 0, fmt.Errorf("%w: %s", domain.ErrValidation, domain.ErrMsgNegativeStockWithoutEntry)
	}
	next := max(qty+delta, 0)
	return next, l.set(ctx, itemID, next)
}

// Zero removes the entry entirely
func (l *Ledger) Zero(ctx context.Context, itemID string) error {
	return l.set(ctx, itemID, 0)
}

// Snapshot returns every non-zero entry
func (l *Ledger) Snapshot(ctx context.Context) ([]domain.StockEntry, error) {
	entries, err := l.tx.GetAllStock(ctx, l.ownerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextListStock, err)
	}
	return entries, nil
}

func (l *Ledger) set(ctx context.Context, itemID string, qty int) error {
	if err := l.tx.UpsertStock(ctx, l.ownerID, itemID, qty); err != nil {
		return fmt.Errorf("%s: %w", ErrContextWriteStock, err)
	}
	return nil
}
