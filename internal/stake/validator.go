// Package stake checks a round's declared stakes against the owner's stock and session.
package stake

import (
	"context"
	"fmt"

	"github.com/osse101/CoinToss_Go/internal/domain"
	"github.com/osse101/CoinToss_Go/internal/inventory"
	"github.com/osse101/CoinToss_Go/internal/repository"
)

// Validator rejects stakes before anything is mutated. It only reads.
type Validator struct{}

// NewValidator creates a Validator
func NewValidator() *Validator {
	return &Validator{}
}

// Validate returns a *domain.StakeError for a rejected stake, or a wrapped storage error
func (v *Validator) Validate(ctx context.Context, tx repository.GameTx, session *domain.Session, stakes domain.Stakes) error {
	if err := checkShape(stakes); err != nil {
		return err
	}

	active := stakes.Active()
	if err := checkExclusiveAbility(active); err != nil {
		return err
	}

	ledger := inventory.NewLedger(tx, session.OwnerID)
	for _, kind := range active {
		if kind == domain.StakeSpring {
			if err := checkSave(ctx, ledger, inventory.NewRoundItems(tx, session.ID)); err != nil {
				return err
			}
			continue
		}

		owned, err := ledger.Get(ctx, kind.ItemID())
		if err != nil {
			return err
		}
		if owned < requiredUnits(kind, stakes) {
			return domain.NewStakeError(domain.ErrInsufficientStock, kind.ItemID())
		}

		if kind.Weighted() {
			if _, ok := stakes.Side(kind); !ok {
				return domain.NewStakeError(domain.ErrInvalidSide, kind.ItemID())
			}
		}
	}

	if stakes.Mass() > domain.MaxStakeMass {
		return domain.NewStakeError(domain.ErrStakeTooLarge, "")
	}

	return checkConflicts(stakes)
}

// checkShape rejects kinds outside the closed set and negative quantities
func checkShape(stakes domain.Stakes) error {
	for kind, p := range stakes {
		if !kind.Valid() {
			return domain.NewStakeError(fmt.Errorf("%w: %s", domain.ErrValidation, domain.ErrMsgUnknownStakeKind), string(kind))
		}
		if p.Quantity < 0 {
			return domain.NewStakeError(fmt.Errorf("%w: %s", domain.ErrValidation, domain.ErrMsgNegativeQuantity), string(kind))
		}
	}
	return nil
}

// checkExclusiveAbility allows an ability coin only as the sole stake
func checkExclusiveAbility(active []domain.StakeKind) error {
	if len(active) < 2 {
		return nil
	}
	for _, kind := range active {
		if kind.Ability() {
			return domain.NewStakeError(domain.ErrExclusiveAbilityConflict, kind.ItemID())
		}
	}
	return nil
}

func checkSave(ctx context.Context, ledger *inventory.Ledger, roundItems *inventory.RoundItems) error {
	owned, err := ledger.Get(ctx, domain.ItemSpring)
	if err != nil {
		return err
	}
	if owned < 1 {
		return domain.NewStakeError(domain.ErrSaveUnavailable, domain.ItemSpring)
	}
	spent, err := roundItems.Quantity(ctx, domain.ItemSpring)
	if err != nil {
		return err
	}
	if spent > 0 {
		return domain.NewStakeError(domain.ErrSaveUnavailable, domain.ItemSpring)
	}
	return nil
}

// checkConflicts forbids any staked parasite sharing a side with any staked mass item
func checkConflicts(stakes domain.Stakes) error {
	for _, parasite := range domain.ParasiteKinds {
		if !stakes.Has(parasite) {
			continue
		}
		pSide, _ := stakes.Side(parasite)
		for _, mass := range domain.MassKinds {
			if !stakes.Has(mass) {
				continue
			}
			if mSide, _ := stakes.Side(mass); mSide == pSide {
				return domain.NewStakeError(domain.ErrConflictingStake, parasite.ItemID())
			}
		}
	}
	return nil
}

// requiredUnits is the stock needed to place the stake. Toggle kinds need one unit.
func requiredUnits(kind domain.StakeKind, stakes domain.Stakes) int {
	if kind.Weighted() {
		return stakes.Quantity(kind)
	}
	return 1
}
