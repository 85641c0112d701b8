package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/osse101/CoinToss_Go/internal/domain"
	"github.com/osse101/CoinToss_Go/internal/logger"
)

// ErrorResponse is the body of every error reply. Reason and Item are set for rejected stakes.
type ErrorResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason,omitempty"`
	Item   string `json:"item,omitempty"`
}

// bufferPool reduces allocations during JSON encoding
var bufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload any) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	// Encode first so an encoding failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs err and replies with its mapped status and message
func respondServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status, body := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(LogMsgServiceError, "op", op, "error", err)
	} else {
		log.Debug(LogMsgServiceError, "op", op, "error", err)
	}
	respondJSON(w, status, body)
}

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses.
// Anything unrecognised becomes a generic 500 so storage details never leak.
func mapServiceErrorToUserMessage(err error) (int, ErrorResponse) {
	if err == nil {
		return http.StatusInternalServerError, ErrorResponse{Error: ErrMsgUnknownError}
	}

	var stakeErr *domain.StakeError
	if errors.As(err, &stakeErr) {
		return http.StatusBadRequest, ErrorResponse{
			Error:  stakeMessage(stakeErr),
			Reason: stakeErr.Reason,
			Item:   stakeErr.Item,
		}
	}

	switch {
	case errors.Is(err, domain.ErrStorageFailure):
		return http.StatusInternalServerError, ErrorResponse{Error: ErrMsgGenericServerError}
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, ErrorResponse{Error: ErrMsgAuthFailedError}
	case errors.Is(err, domain.ErrNoOngoingSession):
		return http.StatusNotFound, ErrorResponse{Error: ErrMsgNoGameError}
	case errors.Is(err, domain.ErrSessionAlreadyOngoing):
		return http.StatusConflict, ErrorResponse{Error: ErrMsgGameInProgressError}
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrorResponse{Error: ErrMsgItemNotFoundError}
	case errors.Is(err, domain.ErrValidation):
		// validation messages are built from domain constants and safe to echo
		return http.StatusBadRequest, ErrorResponse{Error: err.Error(), Reason: domain.ReasonValidation}
	}

	return http.StatusInternalServerError, ErrorResponse{Error: ErrMsgGenericServerError}
}

// stakeMessage picks the player-facing text for a rejected stake
func stakeMessage(err *domain.StakeError) string {
	switch err.Reason {
	case domain.ReasonInsufficientStock:
		return ErrMsgNotEnoughItemsError
	case domain.ReasonSaveUnavailable:
		return ErrMsgSpringUsedError
	case domain.ReasonStakeTooLarge:
		return ErrMsgTooMuchLeadError
	case domain.ReasonConflictingStake:
		return ErrMsgConflictError
	case domain.ReasonExclusiveAbilityConflict:
		return ErrMsgSpecialCoinError
	case domain.ReasonInvalidSide:
		return ErrMsgInvalidSideError
	}
	return strings.TrimSpace(err.Error())
}
