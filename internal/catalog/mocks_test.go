package catalog

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/CoinToss_Go/internal/domain"
)

type MockRepository struct {
	mock.Mock
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
