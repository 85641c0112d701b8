package domain

import "time"

// CatalogItem is a static item definition
type CatalogItem struct {
	ID          string `json:"id" db:"item_id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
	Rarity      int    `json:"rarity" db:"rarity"`             // 0-100, higher is more common
	MaxQuantity int    `json:"max_quantity" db:"max_quantity"` // per-drop cap
	Enemy       bool   `json:"enemy" db:"enemy"`
}

// StockEntry is the quantity of one item a player owns
type StockEntry struct {
	OwnerID   string    `json:"owner_id" db:"owner_id"`
	ItemID    string    `json:"item_id" db:"item_id"`
	Quantity  int       `json:"quantity" db:"quantity"`
	UpdatedAt time.Time `json:"updated_at,omitempty" db:"updated_at"`
}

// RoundItemEntry tracks per-session usage of one-time or accumulating items
type RoundItemEntry struct {
	SessionID int64  `json:"session_id" db:"session_id"`
	ItemID    string `json:"item_id" db:"item_id"`
	Quantity  int    `json:"quantity" db:"quantity"`
}

// Drop is a quantity of one catalog item granted to a player
type Drop struct {
	ItemID      string `json:"item_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Quantity    int    `json:"quantity"`
}

// InventoryLine is an inventory view entry aggregated by item name
type InventoryLine struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
}

// CatalogIndex maps item IDs to definitions
type CatalogIndex map[string]CatalogItem

// NewCatalogIndex builds an index from a catalog listing
func NewCatalogIndex(items []CatalogItem) CatalogIndex {
	idx := make(CatalogIndex, len(items))
	for _, item := range items {
		idx[item.ID] = item
	}
	return idx
}

// AggregateInventory folds stock entries into name-keyed lines, preserving first-seen order.
// Entries whose item is missing from the catalog are listed by ID.
func AggregateInventory(stock []StockEntry, catalog CatalogIndex) []InventoryLine {
	lines := make([]InventoryLine, 0, len(stock))
	pos := make(map[string]int, len(stock))
	for _, s := range stock {
		if s.Quantity <= 0 {
			continue
		}
		name, desc := s.ItemID, ""
		if item, ok := catalog[s.ItemID]; ok {
			name, desc = item.Name, item.Description
		}
		if i, ok := pos[name]; ok {
			lines[i].Quantity += s.Quantity
			continue
		}
		pos[name] = len(lines)
		lines = append(lines, InventoryLine{Name: name, Description: desc, Quantity: s.Quantity})
	}
	return lines
}
