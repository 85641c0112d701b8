package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/CoinToss_Go/internal/domain"
)

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		want       ErrorResponse
	}{
		{"nil", nil, http.StatusInternalServerError, ErrorResponse{Error: ErrMsgUnknownError}},
		{"spring used", domain.NewStakeError(domain.ErrSaveUnavailable, domain.ItemSpring), http.StatusBadRequest,
			ErrorResponse{Error: ErrMsgSpringUsedError, Reason: domain.ReasonSaveUnavailable, Item: domain.ItemSpring}},
		{"too much lead", domain.NewStakeError(domain.ErrStakeTooLarge, ""), http.StatusBadRequest,
			ErrorResponse{Error: ErrMsgTooMuchLeadError, Reason: domain.ReasonStakeTooLarge}},
		{"conflict", domain.NewStakeError(domain.ErrConflictingStake, domain.ItemLeadmite), http.StatusBadRequest,
			ErrorResponse{Error: ErrMsgConflictError, Reason: domain.ReasonConflictingStake, Item: domain.ItemLeadmite}},
		{"special coin", domain.NewStakeError(domain.ErrExclusiveAbilityConflict, domain.ItemGenieCoin), http.StatusBadRequest,
			ErrorResponse{Error: ErrMsgSpecialCoinError, Reason: domain.ReasonExclusiveAbilityConflict, Item: domain.ItemGenieCoin}},
		{"missing side", domain.NewStakeError(domain.ErrInvalidSide, domain.ItemHeavyLead), http.StatusBadRequest,
			ErrorResponse{Error: ErrMsgInvalidSideError, Reason: domain.ReasonInvalidSide, Item: domain.ItemHeavyLead}},
		{"unknown stake kind",
			domain.NewStakeError(fmt.Errorf("%w: %s", domain.ErrValidation, domain.ErrMsgUnknownStakeKind), "queen"),
			http.StatusBadRequest,
			ErrorResponse{Error: "invalid stake: unknown stake item: queen", Reason: domain.ReasonValidation, Item: "queen"}},
		{"wrapped stake error", fmt.Errorf("round: %w", domain.NewStakeError(domain.ErrInsufficientStock, domain.ItemLead)),
			http.StatusBadRequest, ErrorResponse{Error: ErrMsgNotEnoughItemsError, Reason: domain.ReasonInsufficientStock, Item: domain.ItemLead}},
		{"invalid guess", fmt.Errorf("%w: %s", domain.ErrValidation, domain.ErrMsgInvalidGuess), http.StatusBadRequest,
			ErrorResponse{Error: "invalid stake: guess must be heads or tails", Reason: domain.ReasonValidation}},
		{"unauthenticated", domain.ErrUnauthenticated, http.StatusUnauthorized, ErrorResponse{Error: ErrMsgAuthFailedError}},
		{"no game", domain.ErrNoOngoingSession, http.StatusNotFound, ErrorResponse{Error: ErrMsgNoGameError}},
		{"game ongoing", domain.ErrSessionAlreadyOngoing, http.StatusConflict, ErrorResponse{Error: ErrMsgGameInProgressError}},
		{"storage", fmt.Errorf("%w: commit: %w", domain.ErrStorageFailure, errors.New("tcp reset")), http.StatusInternalServerError,
			ErrorResponse{Error: ErrMsgGenericServerError}},
		{"unknown", errors.New("pq: relation does not exist"), http.StatusInternalServerError, ErrorResponse{Error: ErrMsgGenericServerError}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := mapServiceErrorToUserMessage(tt.err)

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.want, body)
		})
	}
}
