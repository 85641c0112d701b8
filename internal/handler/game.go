package handler

import (
	"net/http"

	"github.com/osse101/CoinToss_Go/internal/domain"
	"github.com/osse101/CoinToss_Go/internal/inventory"
	"github.com/osse101/CoinToss_Go/internal/round"
	"github.com/osse101/CoinToss_Go/internal/session"
)

// GameHandler serves the session and toss endpoints
type GameHandler struct {
	sessions  session.Service
	engine    round.Service
	inventory inventory.Service
}

// NewGameHandler creates a GameHandler
func NewGameHandler(sessions session.Service, engine round.Service, inv inventory.Service) *GameHandler {
	return &GameHandler{sessions: sessions, engine: engine, inventory: inv}
}

// StartGameRequest starts a session. Category defaults to classic.
type StartGameRequest struct {
	Category string `json:"category" validate:"omitempty,category"`
}

// TossRequest is one round: a guess plus the items placed on the coin
type TossRequest struct {
	Guess  string        `json:"guess" validate:"required,coinside"`
	Stakes domain.Stakes `json:"stakes" validate:"omitempty,max=7"`
}

// CurrentGameResponse is the ongoing session and the owner's inventory
type CurrentGameResponse struct {
	Session   *domain.Session        `json:"session"`
	Inventory []domain.InventoryLine `json:"inventory"`
}

// HandleStart starts a game for the authenticated owner
func (h *GameHandler) HandleStart(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := requireOwner(w, r)
	if !ok {
		return
	}

	var req StartGameRequest
	if r.ContentLength != 0 {
		if err := DecodeAndValidateRequest(r, w, &req, "Start game"); err != nil {
			return
		}
	}
	if req.Category == "" {
		req.Category = DefaultCategory
	}

	s, err := h.sessions.Start(r.Context(), ownerID, domain.Category(req.Category))
	if err != nil {
		respondServiceError(w, r, "Start game", err)
		return
	}

	respondJSON(w, http.StatusCreated, s)
}

// HandleToss resolves one round
func (h *GameHandler) HandleToss(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := requireOwner(w, r)
	if !ok {
		return
	}

	var req TossRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Toss"); err != nil {
		return
	}

	result, err := h.engine.ResolveRound(r.Context(), ownerID, req.Guess, req.Stakes)
	if err != nil {
		respondServiceError(w, r, "Toss", err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// HandleCurrent returns the ongoing game and inventory
func (h *GameHandler) HandleCurrent(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := requireOwner(w, r)
	if !ok {
		return
	}

	s, err := h.sessions.Current(r.Context(), ownerID)
	if err != nil {
		respondServiceError(w, r, "Current game", err)
		return
	}
	lines, err := h.inventory.View(r.Context(), ownerID)
	if err != nil {
		respondServiceError(w, r, "Current game", err)
		return
	}

	respondJSON(w, http.StatusOK, CurrentGameResponse{Session: s, Inventory: lines})
}

// HandleLeaderboard lists the best score per owner
func (h *GameHandler) HandleLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit, ok := GetOptionalIntParam(r, "limit", session.DefaultLeaderboardLimit)
	if !ok {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidLimit)
		return
	}

	entries, err := h.sessions.Leaderboard(r.Context(), limit)
	if err != nil {
		respondServiceError(w, r, "Leaderboard", err)
		return
	}

	respondJSON(w, http.StatusOK, entries)
}
