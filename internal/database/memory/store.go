// Package memory is an in-process implementation of repository.Game.
// A transaction locks each owner it touches on first use and works on a private
// copy of that owner's state, which replaces the shared copy only on Commit.
// Transactions on different owners never wait on each other.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/osse101/CoinToss_Go/internal/domain"
	"github.com/osse101/CoinToss_Go/internal/repository"
)

// orphanOwner holds round items recorded against a session the store does not know
const orphanOwner = ""

// ownerState is everything stored for one owner
type ownerState struct {
	sessions   map[int64]domain.Session
	stock      map[string]int
	roundItems map[int64]map[string]int
}

func newOwnerState() *ownerState {
	return &ownerState{
		sessions:   make(map[int64]domain.Session),
		stock:      make(map[string]int),
		roundItems: make(map[int64]map[string]int),
	}
}

func (s *ownerState) clone() *ownerState {
	c := &ownerState{
		sessions:   make(map[int64]domain.Session, len(s.sessions)),
		stock:      cloneCounts(s.stock),
		roundItems: make(map[int64]map[string]int, len(s.roundItems)),
	}
	for id, sess := range s.sessions {
		c.sessions[id] = sess
	}
	for id, items := range s.roundItems {
		c.roundItems[id] = cloneCounts(items)
	}
	return c
}

func cloneCounts(m map[string]int) map[string]int {
	c := make(map[string]int, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

func (s *ownerState) ongoing() *domain.Session {
	for _, sess := range s.sessions {
		if sess.Status == domain.SessionOngoing {
			found := sess
			return &found
		}
	}
	return nil
}

func (s *ownerState) stockEntries(ownerID string) []domain.StockEntry {
	entries := make([]domain.StockEntry, 0, len(s.stock))
	for itemID, qty := range s.stock {
		entries = append(entries, domain.StockEntry{OwnerID: ownerID, ItemID: itemID, Quantity: qty})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ItemID < entries[j].ItemID })
	return entries
}

// ownerSlot pairs an owner's committed state with the lock a transaction holds while working on it
type ownerSlot struct {
	txMu      sync.Mutex
	committed *ownerState // guarded by Store.mu
}

// Store holds all game state in memory
type Store struct {
	mu           sync.RWMutex // guards owners, sessionOwner and every slot's committed pointer
	owners       map[string]*ownerSlot
	sessionOwner map[int64]string
	catalog      []domain.CatalogItem

	seqMu         sync.Mutex
	nextSessionID int64

	now func() time.Time
}

// NewStore creates a store seeded with catalog
func NewStore(catalog []domain.CatalogItem) *Store {
	items := make([]domain.CatalogItem, len(catalog))
	copy(items, catalog)
	return &Store{
		owners:        make(map[string]*ownerSlot),
		sessionOwner:  make(map[int64]string),
		catalog:       items,
		nextSessionID: 1,
		now:           time.Now,
	}
}

// BeginTx starts a transaction. Owner locks are taken lazily, so this never blocks.
// A transaction that touches several owners locks them in first-use order; the
// services only ever touch one owner per transaction.
func (s *Store) BeginTx(ctx context.Context) (repository.GameTx, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &tx{
		store:       s,
		work:        make(map[string]*ownerState),
		newSessions: make(map[int64]string),
	}, nil
}

// slot returns the owner's slot, creating it on first use
func (s *Store) slot(ownerID string) *ownerSlot {
	s.mu.RLock()
	sl, ok := s.owners[ownerID]
	s.mu.RUnlock()
	if ok {
		return sl
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if sl, ok = s.owners[ownerID]; !ok {
		sl = &ownerSlot{committed: newOwnerState()}
		s.owners[ownerID] = sl
	}
	return sl
}

// committed returns a read-only view of the owner's committed state. Caller must hold mu.
func (s *Store) committed(ownerID string) *ownerState {
	if sl, ok := s.owners[ownerID]; ok {
		return sl.committed
	}
	return nil
}

// nextID allocates a session id. Ids burned by rolled-back transactions are not reused.
func (s *Store) nextID() int64 {
	s.seqMu.Lock()
	defer s.seqMu.Unlock()
	id := s.nextSessionID
	s.nextSessionID++
	return id
}

// GetCatalog returns every catalog item in seed order
func (s *Store) GetCatalog(ctx context.Context) ([]domain.CatalogItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]domain.CatalogItem, len(s.catalog))
	copy(items, s.catalog)
	return items, nil
}

// GetCatalogItem returns nil when the item is unknown
func (s *Store) GetCatalogItem(ctx context.Context, itemID string) (*domain.CatalogItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.catalog {
		if item.ID == itemID {
			found := item
			return &found, nil
		}
	}
	return nil, nil
}

// GetOngoingSession reads the committed ongoing session, or nil
func (s *Store) GetOngoingSession(ctx context.Context, ownerID string) (*domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if st := s.committed(ownerID); st != nil {
		return st.ongoing(), nil
	}
	return nil, nil
}

// GetAllStock reads committed stock ordered by item ID
func (s *Store) GetAllStock(ctx context.Context, ownerID string) ([]domain.StockEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if st := s.committed(ownerID); st != nil {
		return st.stockEntries(ownerID), nil
	}
	return []domain.StockEntry{}, nil
}

// Leaderboard ranks owners by their best session score
func (s *Store) Leaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	s.mu.RLock()
	entries := make([]domain.LeaderboardEntry, 0, len(s.owners))
	for owner, sl := range s.owners {
		var best *domain.Session
		for _, sess := range sl.committed.sessions {
			if best == nil || sess.Score > best.Score || (sess.Score == best.Score && sess.ID < best.ID) {
				found := sess
				best = &found
			}
		}
		if best != nil {
			entries = append(entries, domain.LeaderboardEntry{OwnerID: owner, Score: best.Score, Category: best.Category})
		}
	}
	s.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].OwnerID < entries[j].OwnerID
	})
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries, nil
}

// Ping always succeeds; it lets the store stand in for a database pool in readiness checks
func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

// Close is a no-op
func (s *Store) Close() {}
