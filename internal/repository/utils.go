package repository

import (
	"context"
	"errors"

	"github.com/osse101/CoinToss_Go/internal/domain"
	"github.com/osse101/CoinToss_Go/internal/logger"
)

// ErrTxDone is returned by in-process transactions used after Commit or Rollback
var ErrTxDone = errors.New(domain.ErrMsgTxClosed)

// SafeRollback rolls back a transaction, logging anything but an already finished one
func SafeRollback(ctx context.Context, tx Tx) {
	err := tx.Rollback(ctx)
	if err == nil || errors.Is(err, ErrTxDone) || err.Error() == domain.ErrMsgTxClosed {
		return
	}
	logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
}
