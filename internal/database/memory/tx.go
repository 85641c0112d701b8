package memory

import (
	"context"
	"sort"

	"github.com/osse101/CoinToss_Go/internal/domain"
	"github.com/osse101/CoinToss_Go/internal/repository"
)

type tx struct {
	store       *Store
	work        map[string]*ownerState // owners locked by this transaction
	locked      []*ownerSlot
	newSessions map[int64]string
	done        bool
}

// owner locks ownerID on first use and returns the transaction's copy of its state
func (t *tx) owner(ownerID string) *ownerState {
	if w, ok := t.work[ownerID]; ok {
		return w
	}
	sl := t.store.slot(ownerID)
	sl.txMu.Lock()
	t.locked = append(t.locked, sl)

	t.store.mu.RLock()
	w := sl.committed.clone()
	t.store.mu.RUnlock()

	t.work[ownerID] = w
	return w
}

// sessionOwner resolves the owner of a session, including ones created by this transaction
func (t *tx) sessionOwner(sessionID int64) string {
	if owner, ok := t.newSessions[sessionID]; ok {
		return owner
	}
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()
	if owner, ok := t.store.sessionOwner[sessionID]; ok {
		return owner
	}
	return orphanOwner
}

func (t *tx) finish() {
	t.done = true
	t.work = nil
	for i := len(t.locked) - 1; i >= 0; i-- {
		t.locked[i].txMu.Unlock()
	}
	t.locked = nil
}

func (t *tx) Commit(ctx context.Context) error {
	if t.done {
		return repository.ErrTxDone
	}
	t.store.mu.Lock()
	for ownerID, w := range t.work {
		t.store.owners[ownerID].committed = w
	}
	for id, ownerID := range t.newSessions {
		t.store.sessionOwner[id] = ownerID
	}
	t.store.mu.Unlock()
	t.finish()
	return nil
}

func (t *tx) Rollback(ctx context.Context) error {
	if t.done {
		return repository.ErrTxDone
	}
	t.finish()
	return nil
}

func (t *tx) GetOngoingSession(ctx context.Context, ownerID string) (*domain.Session, error) {
	if t.done {
		return nil, repository.ErrTxDone
	}
	return t.owner(ownerID).ongoing(), nil
}

func (t *tx) CreateSession(ctx context.Context, session *domain.Session) error {
	if t.done {
		return repository.ErrTxDone
	}
	w := t.owner(session.OwnerID)
	if session.Status == domain.SessionOngoing && w.ongoing() != nil {
		return domain.ErrSessionAlreadyOngoing
	}
	now := t.store.now()
	session.ID = t.store.nextID()
	session.CreatedAt = now
	session.UpdatedAt = now
	w.sessions[session.ID] = *session
	t.newSessions[session.ID] = session.OwnerID
	return nil
}

func (t *tx) UpdateSession(ctx context.Context, session *domain.Session) error {
	if t.done {
		return repository.ErrTxDone
	}
	w := t.owner(t.sessionOwner(session.ID))
	cur, ok := w.sessions[session.ID]
	if !ok {
		return domain.ErrNoOngoingSession
	}
	cur.Score = session.Score
	cur.Status = session.Status
	cur.UpdatedAt = t.store.now()
	session.UpdatedAt = cur.UpdatedAt
	w.sessions[session.ID] = cur
	return nil
}

func (t *tx) GetStock(ctx context.Context, ownerID, itemID string) (int, error) {
	if t.done {
		return 0, repository.ErrTxDone
	}
	return t.owner(ownerID).stock[itemID], nil
}

func (t *tx) UpsertStock(ctx context.Context, ownerID, itemID string, quantity int) error {
	if t.done {
		return repository.ErrTxDone
	}
	w := t.owner(ownerID)
	if quantity <= 0 {
		delete(w.stock, itemID)
		return nil
	}
	w.stock[itemID] = quantity
	return nil
}

func (t *tx) GetAllStock(ctx context.Context, ownerID string) ([]domain.StockEntry, error) {
	if t.done {
		return nil, repository.ErrTxDone
	}
	return t.owner(ownerID).stockEntries(ownerID), nil
}

func (t *tx) GetRoundItem(ctx context.Context, sessionID int64, itemID string) (*domain.RoundItemEntry, error) {
	if t.done {
		return nil, repository.ErrTxDone
	}
	qty, ok := t.owner(t.sessionOwner(sessionID)).roundItems[sessionID][itemID]
	if !ok {
		return nil, nil
	}
	return &domain.RoundItemEntry{SessionID: sessionID, ItemID: itemID, Quantity: qty}, nil
}

func (t *tx) UpsertRoundItem(ctx context.Context, sessionID int64, itemID string, quantity int) error {
	if t.done {
		return repository.ErrTxDone
	}
	w := t.owner(t.sessionOwner(sessionID))
	items := w.roundItems[sessionID]
	if items == nil {
		items = make(map[string]int)
		w.roundItems[sessionID] = items
	}
	items[itemID] = quantity
	return nil
}

func (t *tx) GetAllRoundItems(ctx context.Context, sessionID int64) ([]domain.RoundItemEntry, error) {
	if t.done {
		return nil, repository.ErrTxDone
	}
	items := t.owner(t.sessionOwner(sessionID)).roundItems[sessionID]
	entries := make([]domain.RoundItemEntry, 0, len(items))
	for itemID, qty := range items {
		entries = append(entries, domain.RoundItemEntry{SessionID: sessionID, ItemID: itemID, Quantity: qty})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ItemID < entries[j].ItemID })
	return entries, nil
}
