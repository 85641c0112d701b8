package stake

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CoinToss_Go/internal/database/memory"
	"github.com/osse101/CoinToss_Go/internal/domain"
	"github.com/osse101/CoinToss_Go/internal/repository"
)

const owner = "player-1"

func setup(t *testing.T, stock map[string]int, spentSpring bool) (repository.GameTx, *domain.Session) {
	t.Helper()
	ctx := context.Background()
	tx, err := memory.NewStore(domain.DefaultCatalog()).BeginTx(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { repository.SafeRollback(ctx, tx) })

	session := &domain.Session{OwnerID: owner, Category: domain.CategoryClassic, Status: domain.SessionOngoing}
	require.NoError(t, tx.CreateSession(ctx, session))
	for item, qty := range stock {
		require.NoError(t, tx.UpsertStock(ctx, owner, item, qty))
	}
	if spentSpring {
		require.NoError(t, tx.UpsertRoundItem(ctx, session.ID, domain.ItemSpring, 1))
	}
	return tx, session
}

func TestValidate(t *testing.T) {
	full := map[string]int{
		domain.ItemLead: 5, domain.ItemHeavyLead: 5,
		domain.ItemLeadmite: 2, domain.ItemHeavyLeadmite: 1,
		domain.ItemSpring: 1, domain.ItemGenieCoin: 1, domain.ItemCheaterCoin: 1,
	}

	tests := []struct {
		name        string
		stock       map[string]int
		spentSpring bool
		stakes      domain.Stakes
		wantErr     error
		wantReason  string
		wantItem    string
	}{
		{
			name:   "no stakes is valid",
			stock:  full,
			stakes: nil,
		},
		{
			name:  "mass at the cap is valid",
			stock: full,
			stakes: domain.Stakes{
				domain.StakeLead:      {Quantity: 1, Side: "heads"},
				domain.StakeHeavyLead: {Quantity: 2, Side: "HEADS"},
			},
		},
		{
			name:  "zero quantity is ignored even with a bad side",
			stock: full,
			stakes: domain.Stakes{
				domain.StakeLead: {Quantity: 0, Side: "edge"},
			},
		},
		{
			name:       "unknown kind",
			stock:      full,
			stakes:     domain.Stakes{"pyrite": {Quantity: 1, Side: "heads"}},
			wantErr:    domain.ErrValidation,
			wantReason: domain.ReasonValidation,
			wantItem:   "pyrite",
		},
		{
			name:       "negative quantity",
			stock:      full,
			stakes:     domain.Stakes{domain.StakeLead: {Quantity: -1, Side: "heads"}},
			wantErr:    domain.ErrValidation,
			wantReason: domain.ReasonValidation,
		},
		{
			name:       "more than owned",
			stock:      map[string]int{domain.ItemLead: 1},
			stakes:     domain.Stakes{domain.StakeLead: {Quantity: 2, Side: "heads"}},
			wantErr:    domain.ErrInsufficientStock,
			wantReason: domain.ReasonInsufficientStock,
			wantItem:   domain.ItemLead,
		},
		{
			name:       "missing side",
			stock:      full,
			stakes:     domain.Stakes{domain.StakeHeavyLead: {Quantity: 1}},
			wantErr:    domain.ErrInvalidSide,
			wantReason: domain.ReasonInvalidSide,
			wantItem:   domain.ItemHeavyLead,
		},
		{
			name:       "mass over the cap",
			stock:      full,
			stakes:     domain.Stakes{domain.StakeHeavyLead: {Quantity: 3, Side: "tails"}},
			wantErr:    domain.ErrStakeTooLarge,
			wantReason: domain.ReasonStakeTooLarge,
		},
		{
			name:  "leadmite on the same side as lead",
			stock: full,
			stakes: domain.Stakes{
				domain.StakeLead:     {Quantity: 1, Side: "heads"},
				domain.StakeLeadmite: {Quantity: 1, Side: "heads"},
			},
			wantErr:    domain.ErrConflictingStake,
			wantReason: domain.ReasonConflictingStake,
			wantItem:   domain.ItemLeadmite,
		},
		{
			name:  "heavy leadmite on the same side as lead",
			stock: full,
			stakes: domain.Stakes{
				domain.StakeLead:          {Quantity: 1, Side: "tails"},
				domain.StakeHeavyLeadmite: {Quantity: 1, Side: "tails"},
			},
			wantErr:    domain.ErrConflictingStake,
			wantReason: domain.ReasonConflictingStake,
		},
		{
			name:  "parasites opposite mass are valid",
			stock: full,
			stakes: domain.Stakes{
				domain.StakeHeavyLead: {Quantity: 1, Side: "tails"},
				domain.StakeLeadmite:  {Quantity: 2, Side: "heads"},
			},
		},
		{
			name:   "spring available",
			stock:  full,
			stakes: domain.Stakes{domain.StakeSpring: {Quantity: 1}},
		},
		{
			name:       "spring not owned",
			stock:      map[string]int{},
			stakes:     domain.Stakes{domain.StakeSpring: {Quantity: 1}},
			wantErr:    domain.ErrSaveUnavailable,
			wantReason: domain.ReasonSaveUnavailable,
		},
		{
			name:        "spring already spent",
			stock:       full,
			spentSpring: true,
			stakes:      domain.Stakes{domain.StakeSpring: {Quantity: 1}},
			wantErr:     domain.ErrSaveUnavailable,
			wantReason:  domain.ReasonSaveUnavailable,
		},
		{
			name:   "genie coin alone",
			stock:  full,
			stakes: domain.Stakes{domain.StakeGenieCoin: {Quantity: 1}},
		},
		{
			name:  "both special coins",
			stock: full,
			stakes: domain.Stakes{
				domain.StakeGenieCoin:   {Quantity: 1},
				domain.StakeCheaterCoin: {Quantity: 1},
			},
			wantErr:    domain.ErrExclusiveAbilityConflict,
			wantReason: domain.ReasonExclusiveAbilityConflict,
		},
		{
			name:  "special coin with lead",
			stock: full,
			stakes: domain.Stakes{
				domain.StakeCheaterCoin: {Quantity: 1},
				domain.StakeLead:        {Quantity: 1, Side: "heads"},
			},
			wantErr:    domain.ErrExclusiveAbilityConflict,
			wantReason: domain.ReasonExclusiveAbilityConflict,
		},
		{
			name:       "special coin not owned",
			stock:      map[string]int{},
			stakes:     domain.Stakes{domain.StakeCheaterCoin: {Quantity: 1}},
			wantErr:    domain.ErrInsufficientStock,
			wantReason: domain.ReasonInsufficientStock,
			wantItem:   domain.ItemCheaterCoin,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx, session := setup(t, tt.stock, tt.spentSpring)

			err := NewValidator().Validate(context.Background(), tx, session, tt.stakes)

			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)

			var stakeErr *domain.StakeError
			require.True(t, errors.As(err, &stakeErr))
			assert.Equal(t, tt.wantReason, stakeErr.Reason)
			if tt.wantItem != "" {
				assert.Equal(t, tt.wantItem, stakeErr.Item)
			}
		})
	}
}

func TestValidate_DoesNotMutate(t *testing.T) {
	ctx := context.Background()
	tx, session := setup(t, map[string]int{domain.ItemLead: 1}, false)

	err := NewValidator().Validate(ctx, tx, session, domain.Stakes{domain.StakeLead: {Quantity: 3, Side: "heads"}})
	require.Error(t, err)

	qty, err := tx.GetStock(ctx, owner, domain.ItemLead)
	require.NoError(t, err)
	assert.Equal(t, 1, qty)

	items, err := tx.GetAllRoundItems(ctx, session.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}
