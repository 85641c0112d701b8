package round

import (
	"context"
	"errors"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/CoinToss_Go/internal/domain"
	"github.com/osse101/CoinToss_Go/internal/repository"
)

// MockRepository is a testify mock of repository.Game
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) BeginTx(ctx context.Context) (repository.GameTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.GameTx), args.Error(1)
}

func (m *MockRepository) GetCatalog(ctx context.Context) ([]domain.CatalogItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CatalogItem), args.Error(1)
}

func (m *MockRepository) GetCatalogItem(ctx context.Context, itemID string) (*domain.CatalogItem, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CatalogItem), args.Error(1)
}

func (m *MockRepository) GetOngoingSession(ctx context.Context, ownerID string) (*domain.Session, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockRepository) GetAllStock(ctx context.Context, ownerID string) ([]domain.StockEntry, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StockEntry), args.Error(1)
}

func (m *MockRepository) Leaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeaderboardEntry), args.Error(1)
}

var errUpdateFailed = errors.New("connection reset")

// failingRepo hands out transactions whose UpdateSession always fails
type failingRepo struct {
	repository.Game
}

func (f failingRepo) BeginTx(ctx context.Context) (repository.GameTx, error) {
	tx, err := f.Game.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	return failingTx{GameTx: tx}, nil
}

type failingTx struct {
	repository.GameTx
}

func (failingTx) UpdateSession(ctx context.Context, session *domain.Session) error {
	return errUpdateFailed
}
