package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/CoinToss_Go/internal/catalog"
	"github.com/osse101/CoinToss_Go/internal/domain"
)

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) Start(ctx context.Context, ownerID string, category domain.Category) (*domain.Session, error) {
	args := m.Called(ctx, ownerID, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockSessionService) Current(ctx context.Context, ownerID string) (*domain.Session, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockSessionService) Leaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeaderboardEntry), args.Error(1)
}

type MockRoundService struct {
	mock.Mock
}

func (m *MockRoundService) ResolveRound(ctx context.Context, ownerID, guess string, stakes domain.Stakes) (*domain.RoundResult, error) {
	args := m.Called(ctx, ownerID, guess, stakes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RoundResult), args.Error(1)
}

type MockInventoryService struct {
	mock.Mock
}

func (m *MockInventoryService) View(ctx context.Context, ownerID string) ([]domain.InventoryLine, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryLine), args.Error(1)
}

func (m *MockInventoryService) AdjustStock(ctx context.Context, ownerID, itemID string, delta int) (int, error) {
	args := m.Called(ctx, ownerID, itemID, delta)
	return args.Int(0), args.Error(1)
}

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) List(ctx context.Context) ([]domain.CatalogItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CatalogItem), args.Error(1)
}

func (m *MockCatalogService) Get(ctx context.Context, itemID string) (*domain.CatalogItem, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CatalogItem), args.Error(1)
}

func (m *MockCatalogService) Index(ctx context.Context) (domain.CatalogIndex, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.CatalogIndex), args.Error(1)
}

func (m *MockCatalogService) Invalidate() {
	m.Called()
}

func (m *MockCatalogService) Stats() catalog.CacheStats {
	return m.Called().Get(0).(catalog.CacheStats)
}

// MockPinger mocks the readiness dependency
type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
