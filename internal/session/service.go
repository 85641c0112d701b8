// Package session starts sessions and serves the session read surfaces:
// the owner's current session and the leaderboard.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/CoinToss_Go/internal/concurrency"
	"github.com/osse101/CoinToss_Go/internal/domain"
	"github.com/osse101/CoinToss_Go/internal/event"
	"github.com/osse101/CoinToss_Go/internal/logger"
	"github.com/osse101/CoinToss_Go/internal/repository"
)

// Service defines session operations
type Service interface {
	Start(ctx context.Context, ownerID string, category domain.Category) (*domain.Session, error)
	Current(ctx context.Context, ownerID string) (*domain.Session, error)
	Leaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error)
}

type service struct {
	repo  repository.Game
	locks *concurrency.LockManager
	bus   event.Bus
}

// NewService creates a session service. locks must be the manager the round engine uses.
func NewService(repo repository.Game, locks *concurrency.LockManager, bus event.Bus) Service {
	return &service{repo: repo, locks: locks, bus: bus}
}

// Start opens a new ongoing session. An owner can only have one at a time.
func (s *service) Start(ctx context.Context, ownerID string, category domain.Category) (*domain.Session, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, domain.ErrMsgInvalidCategory)
	}

	unlock := s.locks.Lock(ownerID)
	defer unlock()

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, storageFailure(ErrContextBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	existing, err := tx.GetOngoingSession(ctx, ownerID)
	if err != nil {
		return nil, storageFailure(ErrContextLoadSession, err)
	}
	if existing != nil {
		return nil, domain.ErrSessionAlreadyOngoing
	}

	session := &domain.Session{
		OwnerID:  ownerID,
		Category: category,
		Status:   domain.SessionOngoing,
	}
	if err := tx.CreateSession(ctx, session); err != nil {
		if errors.Is(err, domain.ErrSessionAlreadyOngoing) {
			return nil, err
		}
		return nil, storageFailure(ErrContextCreate, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, storageFailure(ErrContextCommit, err)
	}

	logger.FromContext(ctx).Info(LogMsgSessionStarted, "session_id", session.ID, "owner_id", ownerID, "category", category)
	if s.bus != nil {
		if err := s.bus.Publish(ctx, event.NewSessionStartedEvent(session)); err != nil {
			logger.FromContext(ctx).Warn(LogMsgPublishFailed, "error", err)
		}
	}
	return session, nil
}

// Current returns the owner's ongoing session
func (s *service) Current(ctx context.Context, ownerID string) (*domain.Session, error) {
	session, err := s.repo.GetOngoingSession(ctx, ownerID)
	if err != nil {
		return nil, storageFailure(ErrContextLoadSession, err)
	}
	if session == nil {
		return nil, domain.ErrNoOngoingSession
	}
	return session, nil
}

// Leaderboard returns each owner's best score, highest first. limit is clamped to [1, MaxLeaderboardLimit].
func (s *service) Leaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	switch {
	case limit <= 0:
		limit = DefaultLeaderboardLimit
	case limit > MaxLeaderboardLimit:
		limit = MaxLeaderboardLimit
	}
	entries, err := s.repo.Leaderboard(ctx, limit)
	if err != nil {
		return nil, storageFailure(ErrContextLeaderboard, err)
	}
	return entries, nil
}

func storageFailure(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", domain.ErrStorageFailure, op, err)
}
