package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CoinToss_Go/internal/domain"
)

func TestList_CachesRepositoryResult(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetCatalog", mock.Anything).Return(domain.DefaultCatalog(), nil).Once()
	svc := NewService(repo, time.Minute)

	for i := 0; i < 3; i++ {
		items, err := svc.List(context.Background())
		require.NoError(t, err)
		assert.Len(t, items, len(domain.DefaultCatalog()))
	}

	stats := svc.Stats()
	assert.Equal(t, int64(2), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	repo.AssertExpectations(t)
}

func TestList_InvalidateReloads(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetCatalog", mock.Anything).Return(domain.DefaultCatalog(), nil).Twice()
	svc := NewService(repo, 0)

	_, err := svc.List(context.Background())
	require.NoError(t, err)
	svc.Invalidate()
	_, err = svc.List(context.Background())
	require.NoError(t, err)

	repo.AssertExpectations(t)
}

func TestList_RepositoryError(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetCatalog", mock.Anything).Return(nil, errors.New("db down"))
	svc := NewService(repo, time.Minute)

	_, err := svc.List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrContextLoadCatalog)
}

func TestGet(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetCatalog", mock.Anything).Return(domain.DefaultCatalog(), nil)
	repo.On("GetCatalogItem", mock.Anything, "pyrite").Return(nil, nil)
	svc := NewService(repo, time.Minute)

	item, err := svc.Get(context.Background(), domain.ItemLead)
	require.NoError(t, err)
	assert.Equal(t, "Lead", item.Name)
	assert.Equal(t, 55, item.Rarity)

	_, err = svc.Get(context.Background(), "pyrite")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestIndex(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetCatalog", mock.Anything).Return(domain.DefaultCatalog(), nil)
	svc := NewService(repo, time.Minute)

	idx, err := svc.Index(context.Background())
	require.NoError(t, err)
	assert.True(t, idx[domain.ItemLeadmite].Enemy)
	assert.False(t, idx[domain.ItemSpring].Enemy)
}
