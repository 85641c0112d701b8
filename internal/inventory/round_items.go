package inventory

import (
	"context"
	"fmt"

	"github.com/osse101/CoinToss_Go/internal/domain"
	"github.com/osse101/CoinToss_Go/internal/repository"
)

// RoundItems tracks one session's consumable usage inside a transaction
type RoundItems struct {
	tx        repository.GameTx
	sessionID int64
}

// NewRoundItems binds the round-item ledger to tx and sessionID
func NewRoundItems(tx repository.GameTx, sessionID int64) *RoundItems {
	return &RoundItems{tx: tx, sessionID: sessionID}
}

// Get returns the entry, or nil when the item was never recorded this session
func (r *RoundItems) Get(ctx context.Context, itemID string) (*domain.RoundItemEntry, error) {
	entry, err := r.tx.GetRoundItem(ctx, r.sessionID, itemID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextGetRoundItem, err)
	}
	return entry, nil
}

// Quantity returns the recorded count, 0 when absent
func (r *RoundItems) Quantity(ctx context.Context, itemID string) (int, error) {
	entry, err := r.Get(ctx, itemID)
	if err != nil || entry == nil {
		return 0, err
	}
	return entry.Quantity, nil
}

// Track records the item with quantity 0 if it has no entry yet
func (r *RoundItems) Track(ctx context.Context, itemID string) error {
	entry, err := r.Get(ctx, itemID)
	if err != nil || entry != nil {
		return err
	}
	return r.set(ctx, itemID, 0)
}

// MarkSpent sets the entry to 1, flagging a once-per-session item as used
func (r *RoundItems) MarkSpent(ctx context.Context, itemID string) error {
	return r.set(ctx, itemID, 1)
}

// Increment bumps the usage count, creating the entry at 1
func (r *RoundItems) Increment(ctx context.Context, itemID string) error {
	qty, err := r.Quantity(ctx, itemID)
	if err != nil {
		return err
	}
	return r.set(ctx, itemID, qty+1)
}

// List returns every entry recorded for the session
func (r *RoundItems) List(ctx context.Context) ([]domain.RoundItemEntry, error) {
	entries, err := r.tx.GetAllRoundItems(ctx, r.sessionID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextListRoundItems, err)
	}
	return entries, nil
}

func (r *RoundItems) set(ctx context.Context, itemID string, qty int) error {
	if err := r.tx.UpsertRoundItem(ctx, r.sessionID, itemID, qty); err != nil {
		return fmt.Errorf("%s: %w", ErrContextWriteRoundItem, err)
	}
	return nil
}
