package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/CoinToss_Go/internal/domain"
	"github.com/osse101/CoinToss_Go/internal/repository"
)

// gameTx implements repository.GameTx interface
type gameTx struct {
	tx pgx.Tx
}

// Commit commits the transaction
func (t *gameTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		return translateTxErr(err)
	}
	return nil
}

// Rollback rolls back the transaction
func (t *gameTx) Rollback(ctx context.Context) error {
	return translateTxErr(t.tx.Rollback(ctx))
}

// translateTxErr maps pgx.ErrTxClosed onto repository.ErrTxDone
func translateTxErr(err error) error {
	if errors.Is(err, pgx.ErrTxClosed) {
		return repository.ErrTxDone
	}
	return err
}

// GetOngoingSession locks and returns the owner's ongoing session, or nil
func (t *gameTx) GetOngoingSession(ctx context.Context, ownerID string) (*domain.Session, error) {
	return getOngoingSession(ctx, t.tx, ownerID, true)
}

// CreateSession inserts session and fills in its generated id and timestamps
func (t *gameTx) CreateSession(ctx context.Context, session *domain.Session) error {
	err := t.tx.QueryRow(ctx, `
		INSERT INTO sessions (owner_id, score, category, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`,
		session.OwnerID, session.Score, string(session.Category), string(session.Status)).
		Scan(&session.ID, &session.CreatedAt, &session.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err, ConstraintOneOngoingSession) {
			return domain.ErrSessionAlreadyOngoing
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToCreateSession, err)
	}
	return nil
}

// UpdateSession writes score and status
func (t *gameTx) UpdateSession(ctx context.Context, session *domain.Session) error {
	err := t.tx.QueryRow(ctx, `
		UPDATE sessions
		SET score = $2, status = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`,
		session.ID, session.Score, string(session.Status)).
		Scan(&session.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateSession, err)
	}
	return nil
}

// GetStock returns the owned quantity, 0 when absent. The row stays locked until the transaction ends.
func (t *gameTx) GetStock(ctx context.Context, ownerID, itemID string) (int, error) {
	var qty int
	err := t.tx.QueryRow(ctx, `
		SELECT quantity FROM stock
		WHERE owner_id = $1 AND item_id = $2
		FOR UPDATE`, ownerID, itemID).Scan(&qty)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToGetStock, err)
	}
	return qty, nil
}

// UpsertStock sets the quantity, deleting the row at or below zero
func (t *gameTx) UpsertStock(ctx context.Context, ownerID, itemID string, quantity int) error {
	if quantity <= 0 {
		if _, err := t.tx.Exec(ctx, `DELETE FROM stock WHERE owner_id = $1 AND item_id = $2`, ownerID, itemID); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteStock, err)
		}
		return nil
	}
	_, err := t.tx.Exec(ctx, `
		INSERT INTO stock (owner_id, item_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (owner_id, item_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = NOW()`,
		ownerID, itemID, quantity)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpsertStock, err)
	}
	return nil
}

// GetAllStock lists the owner's stock as seen by the transaction
func (t *gameTx) GetAllStock(ctx context.Context, ownerID string) ([]domain.StockEntry, error) {
	return getAllStock(ctx, t.tx, ownerID)
}

// GetRoundItem returns nil when the item was never recorded for the session
func (t *gameTx) GetRoundItem(ctx context.Context, sessionID int64, itemID string) (*domain.RoundItemEntry, error) {
	entry := domain.RoundItemEntry{SessionID: sessionID, ItemID: itemID}
	err := t.tx.QueryRow(ctx, `
		SELECT quantity FROM round_items
		WHERE session_id = $1 AND item_id = $2`, sessionID, itemID).Scan(&entry.Quantity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetRoundItem, err)
	}
	return &entry, nil
}

// UpsertRoundItem sets the recorded quantity. Zero is kept.
func (t *gameTx) UpsertRoundItem(ctx context.Context, sessionID int64, itemID string, quantity int) error {
	_, err := t.tx.Exec(ctx, `
		INSERT INTO round_items (session_id, item_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (session_id, item_id)
		DO UPDATE SET quantity = EXCLUDED.quantity`,
		sessionID, itemID, quantity)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpsertRoundItem, err)
	}
	return nil
}

// GetAllRoundItems lists every item recorded for the session
func (t *gameTx) GetAllRoundItems(ctx context.Context, sessionID int64) ([]domain.RoundItemEntry, error) {
	rows, err := t.tx.Query(ctx, `
		SELECT item_id, quantity FROM round_items
		WHERE session_id = $1
		ORDER BY item_id`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListRoundItems, err)
	}
	defer rows.Close()

	entries := []domain.RoundItemEntry{}
	for rows.Next() {
		entry := domain.RoundItemEntry{SessionID: sessionID}
		if err := rows.Scan(&entry.ItemID, &entry.Quantity); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanRow, err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListRoundItems, err)
	}
	return entries, nil
}
