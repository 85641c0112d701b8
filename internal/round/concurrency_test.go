package round

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CoinToss_Go/internal/domain"
	"github.com/osse101/CoinToss_Go/internal/testing/leaktest"
)

func TestResolveRound_SerializesSameOwner(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)
	defer checker.Check(2)

	f := newFixture(t, 0, map[string]int{domain.ItemLead: 10})
	f.rng.FallbackFloat = 0 // always heads

	const workers = 25
	var wg sync.WaitGroup
	var wins, rejected atomic.Int32
	stakes := domain.Stakes{domain.StakeLead: {Quantity: 1, Side: "heads"}}

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.engine.ResolveRound(context.Background(), owner, "heads", stakes)
			switch {
			case err == nil:
				wins.Add(1)
			case errors.Is(err, domain.ErrInsufficientStock):
				rejected.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(10), wins.Load(), "one win per lead owned")
	assert.Equal(t, int32(workers-10), rejected.Load())
	assert.Empty(t, f.stock(t))

	session, err := f.store.GetOngoingSession(context.Background(), owner)
	require.NoError(t, err)
	assert.Equal(t, 10, session.Score)
}

func TestResolveRound_OwnersAreIndependent(t *testing.T) {
	f := newFixture(t, 0, nil)
	f.rng.FallbackFloat = 0

	ctx := context.Background()
	const owners = 8
	tx, err := f.store.BeginTx(ctx)
	require.NoError(t, err)
	for i := 0; i < owners; i++ {
		s := &domain.Session{OwnerID: fmt.Sprintf("owner-%d", i), Category: domain.CategoryClassic, Status: domain.SessionOngoing}
		require.NoError(t, tx.CreateSession(ctx, s))
	}
	require.NoError(t, tx.Commit(ctx))

	var wg sync.WaitGroup
	for i := 0; i < owners; i++ {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			for round := 0; round < 5; round++ {
				_, err := f.engine.ResolveRound(ctx, id, "heads", nil)
				assert.NoError(t, err)
			}
		}(fmt.Sprintf("owner-%d", i))
	}
	wg.Wait()

	for i := 0; i < owners; i++ {
		session, err := f.store.GetOngoingSession(ctx, fmt.Sprintf("owner-%d", i))
		require.NoError(t, err)
		assert.Equal(t, 5, session.Score)
	}
}

func TestResolveRound_NotBlockedByOtherOwnersTransaction(t *testing.T) {
	f := newFixture(t, 0, nil)
	f.rng.FallbackFloat = 0
	ctx := context.Background()

	held, err := f.store.BeginTx(ctx)
	require.NoError(t, err)
	_, err = held.GetOngoingSession(ctx, "owner-b")
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		_, err := f.engine.ResolveRound(ctx, owner, "heads", nil)
		done <- err
	}()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("round for player-1 waited on an open transaction for owner-b")
	}
	require.NoError(t, held.Rollback(ctx))

	session, err := f.store.GetOngoingSession(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, 1, session.Score)
}

func BenchmarkResolveRound(b *testing.B) {
	f := newFixture(b, 0, nil)
	f.rng.FallbackFloat = 0
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := f.engine.ResolveRound(ctx, owner, "heads", nil); err != nil {
			b.Fatal(err)
		}
	}
}
