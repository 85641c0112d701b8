package domain

// DefaultCatalog returns the items every store is seeded with.
// The seed migration inserts the same rows.
func DefaultCatalog() []CatalogItem {
	return []CatalogItem{
		{
			ID:          ItemLead,
			Name:        "Lead",
			Description: "A lead disc that can add mass to one side of your coin. You can stack multiple at a time.",
			Rarity:      55,
			MaxQuantity: 5,
		},
		{
			ID:          ItemHeavyLead,
			Name:        "Heavy Lead",
			Description: "A heavy lead disc that can add mass to one side of your coin. You can stack multiple at a time.",
			Rarity:      40,
			MaxQuantity: 5,
		},
		{
			ID:          ItemGenieCoin,
			Name:        "Genie's Coin",
			Description: "A shiny coin that doubles the score if you guess correctly but cuts it by half if you guess wrong. Cancels out other items for the round.",
			Rarity:      10,
			MaxQuantity: 1,
		},
		{
			ID:          ItemCheaterCoin,
			Name:        "Cheater's Coin",
			Description: "A rigged coin that gives you 90% chance to win the round but removes 10 points from your score if you guess wrong. Cancels out other items for the round.",
			Rarity:      8,
			MaxQuantity: 1,
		},
		{
			ID:          ItemSpring,
			Name:        "Spring",
			Description: "A spring that bounces the coin back when you guess wrong, keeping your game alive. Works once per game.",
			Rarity:      12,
			MaxQuantity: 1,
		},
		{
			ID:          ItemLeadmite,
			Name:        "Leadmite",
			Description: "An insect that will eat lead from your inventory every round. Place it on your coin to get rid of it, but you can't place it on the same side as leads.",
			Rarity:      8,
			MaxQuantity: 1,
			Enemy:       true,
		},
		{
			ID:          ItemHeavyLeadmite,
			Name:        "Heavy Leadmite",
			Description: "A big insect that will eat a heavy lead from your inventory. Place it on your coin to get rid of it, but don't place it on the same side as your leads.",
			Rarity:      5,
			MaxQuantity: 1,
			Enemy:       true,
		},
	}
}

// SplitCatalog separates regular items from enemies, preserving order
func SplitCatalog(items []CatalogItem) (regular, enemies []CatalogItem) {
	for _, item := range items {
		if item.Enemy {
			enemies = append(enemies, item)
		} else {
			regular = append(regular, item)
		}
	}
	return regular, enemies
}
