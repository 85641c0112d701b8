package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CoinToss_Go/internal/auth"
	"github.com/osse101/CoinToss_Go/internal/domain"
)

const testOwner = "player-1"

// authed builds a request carrying testOwner in its context
func authed(method, path string, body any) *http.Request {
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		_ = json.NewEncoder(&buf).Encode(b)
	}
	req := httptest.NewRequest(method, path, &buf)
	return req.WithContext(auth.WithOwner(req.Context(), testOwner))
}

func newGameHandler(t *testing.T) (*GameHandler, *MockSessionService, *MockRoundService, *MockInventoryService) {
	t.Helper()
	ms, mr, mi := &MockSessionService{}, &MockRoundService{}, &MockInventoryService{}
	t.Cleanup(func() {
		ms.AssertExpectations(t)
		mr.AssertExpectations(t)
		mi.AssertExpectations(t)
	})
	return NewGameHandler(ms, mr, mi), ms, mr, mi
}

func TestHandleToss(t *testing.T) {
	stakes := domain.Stakes{domain.StakeLead: {Quantity: 2, Side: "heads"}}

	tests := []struct {
		name           string
		body           any
		setupMocks     func(*MockRoundService)
		expectedStatus int
		expectedBody   []string
	}{
		{
			name: "Success",
			body: TossRequest{Guess: "heads", Stakes: stakes},
			setupMocks: func(m *MockRoundService) {
				m.On("ResolveRound", mock.Anything, testOwner, "heads", stakes).Return(&domain.RoundResult{
					Outcome: domain.OutcomeCorrect, CoinResult: domain.SideHeads, Won: true, Score: 1,
					Status: domain.SessionOngoing, Message: domain.MsgCorrectGuess,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   []string{`"coin_result":"heads"`, `"score":1`, domain.MsgCorrectGuess},
		},
		{
			name:           "Invalid JSON",
			body:           "not json",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   []string{ErrMsgInvalidRequest},
		},
		{
			name:           "Missing guess",
			body:           TossRequest{},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   []string{ErrMsgInvalidRequestSummary, `"guess":"This field is required"`},
		},
		{
			name:           "Guess not a side",
			body:           TossRequest{Guess: "edge"},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   []string{`"guess":"Must be heads or tails"`},
		},
		{
			name: "Stake rejected",
			body: TossRequest{Guess: "heads", Stakes: stakes},
			setupMocks: func(m *MockRoundService) {
				m.On("ResolveRound", mock.Anything, testOwner, "heads", stakes).
					Return(nil, domain.NewStakeError(domain.ErrInsufficientStock, domain.ItemLead))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   []string{ErrMsgNotEnoughItemsError, `"reason":"insufficient_stock"`, `"item":"lead"`},
		},
		{
			name: "No game",
			body: TossRequest{Guess: "tails"},
			setupMocks: func(m *MockRoundService) {
				m.On("ResolveRound", mock.Anything, testOwner, "tails", domain.Stakes(nil)).Return(nil, domain.ErrNoOngoingSession)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   []string{ErrMsgNoGameError},
		},
		{
			name: "Storage failure is not leaked",
			body: TossRequest{Guess: "tails"},
			setupMocks: func(m *MockRoundService) {
				m.On("ResolveRound", mock.Anything, testOwner, "tails", domain.Stakes(nil)).
					Return(nil, fmt.Errorf("%w: update session: connection reset", domain.ErrStorageFailure))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   []string{ErrMsgGenericServerError},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _, mr, _ := newGameHandler(t)
			if tt.setupMocks != nil {
				tt.setupMocks(mr)
			}

			w := httptest.NewRecorder()
			h.HandleToss(w, authed(http.MethodPost, "/api/v1/game/toss", tt.body))

			assert.Equal(t, tt.expectedStatus, w.Code)
			for _, want := range tt.expectedBody {
				assert.Contains(t, w.Body.String(), want)
			}
			assert.NotContains(t, w.Body.String(), "connection reset")
		})
	}
}

func TestHandleToss_Unauthenticated(t *testing.T) {
	h, _, _, _ := newGameHandler(t)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/game/toss", bytes.NewBufferString(`{"guess":"heads"}`))
	w := httptest.NewRecorder()

	h.HandleToss(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandleStart(t *testing.T) {
	t.Run("defaults to classic", func(t *testing.T) {
		h, ms, _, _ := newGameHandler(t)
		ms.On("Start", mock.Anything, testOwner, domain.CategoryClassic).
			Return(&domain.Session{ID: 7, OwnerID: testOwner, Category: domain.CategoryClassic, Status: domain.SessionOngoing}, nil)

		w := httptest.NewRecorder()
		h.HandleStart(w, authed(http.MethodPost, "/api/v1/game/start", nil))

		assert.Equal(t, http.StatusCreated, w.Code)
		var got domain.Session
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, int64(7), got.ID)
	})

	t.Run("itemless", func(t *testing.T) {
		h, ms, _, _ := newGameHandler(t)
		ms.On("Start", mock.Anything, testOwner, domain.CategoryItemless).
			Return(&domain.Session{ID: 8, Category: domain.CategoryItemless}, nil)

		w := httptest.NewRecorder()
		h.HandleStart(w, authed(http.MethodPost, "/api/v1/game/start", StartGameRequest{Category: "itemless"}))

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("unknown category", func(t *testing.T) {
		h, _, _, _ := newGameHandler(t)

		w := httptest.NewRecorder()
		h.HandleStart(w, authed(http.MethodPost, "/api/v1/game/start", StartGameRequest{Category: "hardcore"}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Must be classic or itemless")
	})

	t.Run("already ongoing", func(t *testing.T) {
		h, ms, _, _ := newGameHandler(t)
		ms.On("Start", mock.Anything, testOwner, domain.CategoryClassic).Return(nil, domain.ErrSessionAlreadyOngoing)

		w := httptest.NewRecorder()
		h.HandleStart(w, authed(http.MethodPost, "/api/v1/game/start", nil))

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgGameInProgressError)
	})
}

func TestHandleCurrent(t *testing.T) {
	h, ms, _, mi := newGameHandler(t)
	ms.On("Current", mock.Anything, testOwner).Return(&domain.Session{ID: 3, Score: 4, Status: domain.SessionOngoing}, nil)
	mi.On("View", mock.Anything, testOwner).Return([]domain.InventoryLine{{Name: "Lead", Quantity: 2}}, nil)

	w := httptest.NewRecorder()
	h.HandleCurrent(w, authed(http.MethodGet, "/api/v1/game/current", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var got CurrentGameResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, 4, got.Session.Score)
	assert.Equal(t, []domain.InventoryLine{{Name: "Lead", Quantity: 2}}, got.Inventory)
}

func TestHandleCurrent_NoGame(t *testing.T) {
	h, ms, _, _ := newGameHandler(t)
	ms.On("Current", mock.Anything, testOwner).Return(nil, domain.ErrNoOngoingSession)

	w := httptest.NewRecorder()
	h.HandleCurrent(w, authed(http.MethodGet, "/api/v1/game/current", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleLeaderboard(t *testing.T) {
	t.Run("default limit", func(t *testing.T) {
		h, ms, _, _ := newGameHandler(t)
		ms.On("Leaderboard", mock.Anything, 10).Return([]domain.LeaderboardEntry{{Rank: 1, OwnerID: "a", Score: 9}}, nil)

		w := httptest.NewRecorder()
		h.HandleLeaderboard(w, httptest.NewRequest(http.MethodGet, "/api/v1/leaderboard", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"owner_id":"a"`)
	})

	t.Run("explicit limit", func(t *testing.T) {
		h, ms, _, _ := newGameHandler(t)
		ms.On("Leaderboard", mock.Anything, 3).Return([]domain.LeaderboardEntry{}, nil)

		w := httptest.NewRecorder()
		h.HandleLeaderboard(w, httptest.NewRequest(http.MethodGet, "/api/v1/leaderboard?limit=3", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]\n", w.Body.String())
	})

	t.Run("bad limit", func(t *testing.T) {
		h, _, _, _ := newGameHandler(t)

		w := httptest.NewRecorder()
		h.HandleLeaderboard(w, httptest.NewRequest(http.MethodGet, "/api/v1/leaderboard?limit=ten", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidLimit)
	})
}
