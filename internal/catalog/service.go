package catalog

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/CoinToss_Go/internal/domain"
)

// Repository is the storage the catalog reads from
type Repository interface {
	GetCatalog(ctx context.Context) ([]domain.CatalogItem, error)
	GetCatalogItem(ctx context.Context, itemID string) (*domain.CatalogItem, error)
}

// Service serves the static item catalog
type Service interface {
	List(ctx context.Context) ([]domain.CatalogItem, error)
	Get(ctx context.Context, itemID string) (*domain.CatalogItem, error)
	Index(ctx context.Context) (domain.CatalogIndex, error)
	Invalidate()
	Stats() CacheStats
}

// CacheStats reports cache effectiveness
type CacheStats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Size   int   `json:"size"`
}

type service struct {
	repo   Repository
	cache  *expirable.LRU[string, []domain.CatalogItem]
	hits   atomic.Int64
	misses atomic.Int64
}

// NewService creates a catalog service caching listings for ttl
func NewService(repo Repository, ttl time.Duration) Service {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &service{
		repo:  repo,
		cache: expirable.NewLRU[string, []domain.CatalogItem](CacheSize, nil, ttl),
	}
}

// List returns every item. Callers must not modify the returned slice.
func (s *service) List(ctx context.Context) ([]domain.CatalogItem, error) {
	if items, ok := s.cache.Get(cacheKeyAll); ok {
		s.hits.Add(1)
		return items, nil
	}
	s.misses.Add(1)

	items, err := s.repo.GetCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextLoadCatalog, err)
	}
	s.cache.Add(cacheKeyAll, items)
	return items, nil
}

func (s *service) Get(ctx context.Context, itemID string) (*domain.CatalogItem, error) {
	items, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		if item.ID == itemID {
			found := item
			return &found, nil
		}
	}

	// Fall through to storage in case the item was added after caching
	item, err := s.repo.GetCatalogItem(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextGetItem, err)
	}
	if item == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, itemID)
	}
	s.Invalidate()
	return item, nil
}

func (s *service) Index(ctx context.Context) (domain.CatalogIndex, error) {
	items, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return domain.NewCatalogIndex(items), nil
}

func (s *service) Invalidate() {
	s.cache.Purge()
}

func (s *service) Stats() CacheStats {
	return CacheStats{Hits: s.hits.Load(), Misses: s.misses.Load(), Size: s.cache.Len()}
}
