// Package postgres implements repository.Game on PostgreSQL with pgx.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CoinToss_Go/internal/domain"
	"github.com/osse101/CoinToss_Go/internal/repository"
)

// GameRepository is the PostgreSQL storage collaborator
type GameRepository struct {
	db *pgxpool.Pool
}

// NewGameRepository creates a GameRepository on pool
func NewGameRepository(db *pgxpool.Pool) *GameRepository {
	return &GameRepository{db: db}
}

// BeginTx starts a read-committed transaction. Session reads inside it lock the row.
func (r *GameRepository) BeginTx(ctx context.Context) (repository.GameTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &gameTx{tx: tx}, nil
}

// GetCatalog returns every catalog item in display order
func (r *GameRepository) GetCatalog(ctx context.Context) ([]domain.CatalogItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT item_id, name, description, rarity, max_quantity, enemy
		FROM catalog_items
		ORDER BY sort_order, item_id`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetCatalog, err)
	}
	defer rows.Close()

	items := []domain.CatalogItem{}
	for rows.Next() {
		var item domain.CatalogItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.Rarity, &item.MaxQuantity, &item.Enemy); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanRow, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetCatalog, err)
	}
	return items, nil
}

// GetCatalogItem returns nil when the item does not exist
func (r *GameRepository) GetCatalogItem(ctx context.Context, itemID string) (*domain.CatalogItem, error) {
	var item domain.CatalogItem
	err := r.db.QueryRow(ctx, `
		SELECT item_id, name, description, rarity, max_quantity, enemy
		FROM catalog_items
		WHERE item_id = $1`, itemID).
		Scan(&item.ID, &item.Name, &item.Description, &item.Rarity, &item.MaxQuantity, &item.Enemy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetCatalogItem, err)
	}
	return &item, nil
}

// GetOngoingSession returns the owner's ongoing session or nil
func (r *GameRepository) GetOngoingSession(ctx context.Context, ownerID string) (*domain.Session, error) {
	return getOngoingSession(ctx, r.db, ownerID, false)
}

// GetAllStock returns the owner's stock ordered by item
func (r *GameRepository) GetAllStock(ctx context.Context, ownerID string) ([]domain.StockEntry, error) {
	return getAllStock(ctx, r.db, ownerID)
}

// Leaderboard ranks owners by their best session score. Ties on score go to the
// earlier session, and owners with equal best scores are ordered by id.
func (r *GameRepository) Leaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	rows, err := r.db.Query(ctx, `
		SELECT owner_id, score, category
		FROM (
			SELECT DISTINCT ON (owner_id) owner_id, score, category
			FROM sessions
			ORDER BY owner_id, score DESC, id ASC
		) best
		ORDER BY score DESC, owner_id ASC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryLeaderboard, err)
	}
	defer rows.Close()

	entries := []domain.LeaderboardEntry{}
	for rows.Next() {
		var e domain.LeaderboardEntry
		var category string
		if err := rows.Scan(&e.OwnerID, &e.Score, &category); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanRow, err)
		}
		e.Category = domain.Category(category)
		e.Rank = len(entries) + 1
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryLeaderboard, err)
	}
	return entries, nil
}

// Ping checks connectivity
func (r *GameRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
