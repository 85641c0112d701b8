package catalog

import "time"

// Cache configuration
const (
	CacheSize       = 16
	DefaultCacheTTL = 5 * time.Minute

	cacheKeyAll = "catalog:all"
)

// Error contexts
const (
	ErrContextLoadCatalog = "failed to load catalog"
	ErrContextGetItem     = "failed to get catalog item"
)
