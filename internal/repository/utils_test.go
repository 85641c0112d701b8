package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubTx struct {
	rollbackErr error
	rolledBack  bool
}

func (s *stubTx) Commit(ctx context.Context) error { return nil }

func (s *stubTx) Rollback(ctx context.Context) error {
	s.rolledBack = true
	return s.rollbackErr
}

func TestSafeRollback(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"clean rollback", nil},
		{"already finished", ErrTxDone},
		{"driver closed error", errors.New("tx is closed")},
		{"unexpected error is logged", errors.New("connection reset")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := &stubTx{rollbackErr: tt.err}
			assert.NotPanics(t, func() { SafeRollback(context.Background(), tx) })
			assert.True(t, tx.rolledBack)
		})
	}
}
