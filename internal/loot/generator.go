// Package loot rolls round rewards, enemy spawns and end-of-session reward sets
// from the catalog's rarity table.
package loot

import (
	"context"
	"fmt"

	"github.com/osse101/CoinToss_Go/internal/coin"
	"github.com/osse101/CoinToss_Go/internal/domain"
	"github.com/osse101/CoinToss_Go/internal/inventory"
)

// CatalogSource lists catalog items
type CatalogSource interface {
	List(ctx context.Context) ([]domain.CatalogItem, error)
}

// Generator grants drops to a ledger
type Generator struct {
	catalog       CatalogSource
	rng           coin.RNG
	enemyMinScore int
}

// NewGenerator creates a Generator. Enemies spawn only once the score reaches enemyMinScore.
func NewGenerator(catalog CatalogSource, rng coin.RNG, enemyMinScore int) *Generator {
	if rng == nil {
		rng = coin.DefaultRNG()
	}
	return &Generator{catalog: catalog, rng: rng, enemyMinScore: enemyMinScore}
}

// RoundReward grants at most one regular item
func (g *Generator) RoundReward(ctx context.Context, ledger *inventory.Ledger) (*domain.Drop, error) {
	regular, _, err := g.split(ctx)
	if err != nil {
		return nil, err
	}
	return g.grantOne(ctx, ledger, regular)
}

// SpawnEnemy grants at most one enemy when score >= the configured minimum
func (g *Generator) SpawnEnemy(ctx context.Context, ledger *inventory.Ledger, score int) (*domain.Drop, error) {
	if score < g.enemyMinScore {
		return nil, nil
	}
	_, enemies, err := g.split(ctx)
	if err != nil {
		return nil, err
	}
	return g.grantOne(ctx, ledger, enemies)
}

// SessionRewards runs score independent passes over the regular items. Each item is capped
// at its MaxQuantity for the whole batch. Drops are aggregated by item name.
func (g *Generator) SessionRewards(ctx context.Context, ledger *inventory.Ledger, score int) ([]domain.Drop, error) {
	regular, _, err := g.split(ctx)
	if err != nil {
		return nil, err
	}
	if len(regular) == 0 || score <= 0 {
		return nil, nil
	}

	counts := make(map[string]int)
	var order []domain.CatalogItem
	for pass := 0; pass < score; pass++ {
		item := g.pick(regular)
		if item == nil {
			continue
		}
		remaining := item.MaxQuantity - counts[item.ID]
		if remaining <= 0 {
			continue
		}
		if counts[item.ID] == 0 {
			order = append(order, *item)
		}
		counts[item.ID] += g.rng.Intn(remaining) + 1
	}

	drops := make([]domain.Drop, 0, len(order))
	byName := make(map[string]int, len(order))
	for _, item := range order {
		qty := counts[item.ID]
		if err := ledger.Add(ctx, item.ID, qty); err != nil {
			return nil, err
		}
		if i, ok := byName[item.Name]; ok {
			drops[i].Quantity += qty
			continue
		}
		byName[item.Name] = len(drops)
		drops = append(drops, dropOf(item, qty))
	}
	return drops, nil
}

func (g *Generator) grantOne(ctx context.Context, ledger *inventory.Ledger, items []domain.CatalogItem) (*domain.Drop, error) {
	item := g.pick(items)
	if item == nil {
		return nil, nil
	}
	qty := g.rollQuantity(*item)
	if err := ledger.Add(ctx, item.ID, qty); err != nil {
		return nil, err
	}
	drop := dropOf(*item, qty)
	return &drop, nil
}

// pick shuffles items and returns the first whose rarity beats its own roll
func (g *Generator) pick(items []domain.CatalogItem) *domain.CatalogItem {
	if len(items) == 0 {
		return nil
	}
	shuffled := make([]domain.CatalogItem, len(items))
	copy(shuffled, items)
	g.rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

	for i := range shuffled {
		if shuffled[i].Rarity >= g.rng.Intn(domain.RarityRollCeiling) {
			return &shuffled[i]
		}
	}
	return nil
}

// rollQuantity starts at 1 and adds one per successful rarity roll, up to MaxQuantity
func (g *Generator) rollQuantity(item domain.CatalogItem) int {
	qty := 1
	for i := 1; i < item.MaxQuantity; i++ {
		if g.rng.Intn(domain.RarityRollCeiling) < item.Rarity {
			qty++
		}
	}
	return qty
}

func (g *Generator) split(ctx context.Context) (regular, enemies []domain.CatalogItem, err error) {
	items, err := g.catalog.List(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrContextCatalog, err)
	}
	regular, enemies = domain.SplitCatalog(items)
	return regular, enemies, nil
}

func dropOf(item domain.CatalogItem, qty int) domain.Drop {
	return domain.Drop{ItemID: item.ID, Name: item.Name, Description: item.Description, Quantity: qty}
}
