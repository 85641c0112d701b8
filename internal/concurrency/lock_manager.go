// Package concurrency serializes work per owner inside one process.
package concurrency

import (
	"sync"
)

type ownerLock struct {
	mu      sync.Mutex
	waiters int
}

// LockManager hands out one mutex per owner. Entries are dropped once nobody holds or waits on them.
type LockManager struct {
	mu    sync.Mutex
	locks map[string]*ownerLock
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{locks: make(map[string]*ownerLock)}
}

// Lock blocks until the owner's lock is held and returns the release func
func (lm *LockManager) Lock(owner string) (unlock func()) {
	lm.mu.Lock()
	l, ok := lm.locks[owner]
	if !ok {
		l = &ownerLock{}
		lm.locks[owner] = l
	}
	l.waiters++
	lm.mu.Unlock()

	l.mu.Lock()

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Unlock()

			lm.mu.Lock()
			l.waiters--
			if l.waiters == 0 {
				delete(lm.locks, owner)
			}
			lm.mu.Unlock()
		})
	}
}

// Len reports how many owners currently have a lock entry
func (lm *LockManager) Len() int {
	lm.mu.Lock()
	defer lm.mu.Unlock()
	return len(lm.locks)
}
