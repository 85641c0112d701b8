package loot

// Error contexts
const (
	ErrContextCatalog = "failed to read catalog for drops"
)
