package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Stake errors
	ErrMsgValidation                = "invalid stake"
	ErrMsgInvalidSide               = "side must be heads or tails"
	ErrMsgInsufficientStock         = "insufficient stock"
	ErrMsgSaveUnavailable           = "spring already used this game"
	ErrMsgStakeTooLarge             = "too much lead staked"
	ErrMsgConflictingStake          = "leadmites and leads cannot be placed on the same side"
	ErrMsgExclusiveAbilityConflict  = "special coins cannot be combined with other items"
	ErrMsgUnknownStakeKind          = "unknown stake item"
	ErrMsgNegativeQuantity          = "quantity cannot be negative"
	ErrMsgInvalidGuess              = "guess must be heads or tails"
	ErrMsgInvalidCategory           = "category must be classic or itemless"
	ErrMsgNegativeStockWithoutEntry = "cannot remove an item the owner does not have"

	// Session errors
	ErrMsgNoOngoingSession      = "no ongoing game"
	ErrMsgSessionAlreadyOngoing = "a game is already ongoing"

	// Catalog errors
	ErrMsgItemNotFound = "item not found"

	// Identity errors
	ErrMsgUnauthenticated = "unauthenticated"

	// Database/System errors
	ErrMsgStorageFailure = "storage failure"
	ErrMsgTxClosed       = "tx is closed"
)

// Stake rejection reasons, reported to clients alongside the message
const (
	ReasonValidation               = "validation"
	ReasonInvalidSide              = "invalid_side"
	ReasonInsufficientStock        = "insufficient_stock"
	ReasonSaveUnavailable          = "save_unavailable"
	ReasonStakeTooLarge            = "stake_too_large"
	ReasonConflictingStake         = "conflicting_stake"
	ReasonExclusiveAbilityConflict = "exclusive_ability_conflict"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrValidation               = errors.New(ErrMsgValidation)
	ErrInvalidSide              = errors.New(ErrMsgInvalidSide)
	ErrInsufficientStock        = errors.New(ErrMsgInsufficientStock)
	ErrSaveUnavailable          = errors.New(ErrMsgSaveUnavailable)
	ErrStakeTooLarge            = errors.New(ErrMsgStakeTooLarge)
	ErrConflictingStake         = errors.New(ErrMsgConflictingStake)
	ErrExclusiveAbilityConflict = errors.New(ErrMsgExclusiveAbilityConflict)

	ErrNoOngoingSession      = errors.New(ErrMsgNoOngoingSession)
	ErrSessionAlreadyOngoing = errors.New(ErrMsgSessionAlreadyOngoing)

	ErrItemNotFound    = errors.New(ErrMsgItemNotFound)
	ErrUnauthenticated = errors.New(ErrMsgUnauthenticated)
	ErrStorageFailure  = errors.New(ErrMsgStorageFailure)
)

// StakeError is a rejected stake. It unwraps to one of the stake sentinels.
type StakeError struct {
	Reason string
	Item   string
	Err    error
}

func (e *StakeError) Error() string {
	if e.Item == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Err.Error(), e.Item)
}

func (e *StakeError) Unwrap() error {
	return e.Err
}

// NewStakeError builds a StakeError, deriving the reason from the sentinel
func NewStakeError(err error, item string) *StakeError {
	return &StakeError{Reason: reasonFor(err), Item: item, Err: err}
}

func reasonFor(err error) string {
	switch {
	case errors.Is(err, ErrInvalidSide):
		return ReasonInvalidSide
	case errors.Is(err, ErrInsufficientStock):
		return ReasonInsufficientStock
	case errors.Is(err, ErrSaveUnavailable):
		return ReasonSaveUnavailable
	case errors.Is(err, ErrStakeTooLarge):
		return ReasonStakeTooLarge
	case errors.Is(err, ErrConflictingStake):
		return ReasonConflictingStake
	case errors.Is(err, ErrExclusiveAbilityConflict):
		return ReasonExclusiveAbilityConflict
	}
	return ReasonValidation
}
