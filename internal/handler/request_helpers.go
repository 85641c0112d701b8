package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/osse101/CoinToss_Go/internal/auth"
	"github.com/osse101/CoinToss_Go/internal/logger"
)

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// DecodeAndValidateRequest decodes a JSON body into req and validates it.
// On error the response has already been written and the handler should return.
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req any, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Warn(LogMsgDecodeFailed, "action", actionName, "error", err)
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(w, http.StatusRequestEntityTooLarge, ErrMsgRequestTooLarge)
			return err
		}
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(LogMsgRequestDecoded, "action", actionName)

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// requireOwner returns the authenticated owner or writes a 401
func requireOwner(w http.ResponseWriter, r *http.Request) (string, bool) {
	ownerID, ok := auth.OwnerFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, ErrMsgAuthFailedError)
		return "", false
	}
	return ownerID, true
}

// GetOptionalIntParam parses an optional integer query parameter.
// ok is false when the parameter is present but not an integer.
func GetOptionalIntParam(r *http.Request, name string, defaultValue int) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return defaultValue, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}
