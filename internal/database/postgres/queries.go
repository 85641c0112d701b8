package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/osse101/CoinToss_Go/internal/domain"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const sessionColumns = `id, owner_id, score, category, status, created_at, updated_at`

func scanSession(row pgx.Row) (*domain.Session, error) {
	var s domain.Session
	var category, status string
	if err := row.Scan(&s.ID, &s.OwnerID, &s.Score, &category, &status, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	s.Category = domain.Category(category)
	s.Status = domain.SessionStatus(status)
	return &s, nil
}

func getOngoingSession(ctx context.Context, q querier, ownerID string, forUpdate bool) (*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE owner_id = $1 AND status = 'ongoing'`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	session, err := scanSession(q.QueryRow(ctx, query, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetSession, err)
	}
	return session, nil
}

func getAllStock(ctx context.Context, q querier, ownerID string) ([]domain.StockEntry, error) {
	rows, err := q.Query(ctx, `
		SELECT owner_id, item_id, quantity, updated_at
		FROM stock
		WHERE owner_id = $1
		ORDER BY item_id`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListStock, err)
	}
	defer rows.Close()

	entries := []domain.StockEntry{}
	for rows.Next() {
		var e domain.StockEntry
		if err := rows.Scan(&e.OwnerID, &e.ItemID, &e.Quantity, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanRow, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListStock, err)
	}
	return entries, nil
}

func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeUniqueViolation && pgErr.ConstraintName == constraint
}
