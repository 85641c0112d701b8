package round

import (
	"context"
	"fmt"
	"strings"

	"github.com/osse101/CoinToss_Go/internal/domain"
	"github.com/osse101/CoinToss_Go/internal/inventory"
)

// parasiteDiet pairs a parasite with the mass item it eats
type parasiteDiet struct {
	parasite string
	label    string
	food     string
	foodName string
}

var diets = []parasiteDiet{
	{parasite: domain.ItemLeadmite, label: "leadmite", food: domain.ItemLead, foodName: "lead"},
	{parasite: domain.ItemHeavyLeadmite, label: "heavyLeadmite", food: domain.ItemHeavyLead, foodName: "heavy lead"},
}

// consumeParasites lets each held parasite eat up to one unit of its food, capped by what is in stock.
// It returns the status line shown to the player, empty when no parasites are held.
func consumeParasites(ctx context.Context, ledger *inventory.Ledger) (string, error) {
	var held, eaten []string
	for _, d := range diets {
		count, err := ledger.Get(ctx, d.parasite)
		if err != nil {
			return "", err
		}
		if count <= 0 {
			continue
		}
		held = append(held, fmt.Sprintf("%s %s", plural(count, d.label), verb(count, "is", "are")))

		n, err := ledger.ConsumeUpTo(ctx, d.food, count)
		if err != nil {
			return "", err
		}
		if n > 0 {
			eaten = append(eaten, plural(n, d.foodName))
		}
	}

	if len(held) == 0 {
		return "", nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "(%s in your inventory.", strings.Join(held, " and "))
	if len(eaten) == 0 {
		b.WriteString(domain.MsgNoParasiteEating)
	} else {
		fmt.Fprintf(&b, " %s %s eaten.)", strings.Join(eaten, " and "), verb(len(eaten), "has been", "have been"))
	}
	return b.String(), nil
}

// plural renders "1 lead" or "3 leads"
func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

func verb(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
