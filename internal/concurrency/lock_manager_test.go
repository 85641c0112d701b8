package concurrency

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLockManager_SerializesSameOwner(t *testing.T) {
	lm := NewLockManager()

	var (
		wg      sync.WaitGroup
		inside  atomic.Int32
		maxSeen atomic.Int32
		counter int
	)

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := lm.Lock("player-1")
			defer unlock()

			n := inside.Add(1)
			if n > maxSeen.Load() {
				maxSeen.Store(n)
			}
			counter++
			inside.Add(-1)
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
	assert.Equal(t, int32(1), maxSeen.Load())
	assert.Zero(t, lm.Len(), "idle owners are forgotten")
}

func TestLockManager_OwnersAreIndependent(t *testing.T) {
	lm := NewLockManager()

	unlockA := lm.Lock("a")
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlock := lm.Lock("b")
		unlock()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock on b blocked behind a")
	}
	assert.Equal(t, 1, lm.Len())
}

func TestLockManager_UnlockIsIdempotent(t *testing.T) {
	lm := NewLockManager()

	unlock := lm.Lock("a")
	unlock()
	unlock()

	assert.Zero(t, lm.Len())
	lm.Lock("a")()
}
