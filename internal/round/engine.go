// Package round resolves one coin-toss round: it validates the stakes, tosses the
// coin, applies the outcome to the session and the owner's stock, and grants drops.
// Every round runs under the owner's lock inside a single storage transaction.
package round

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/CoinToss_Go/internal/coin"
	"github.com/osse101/CoinToss_Go/internal/concurrency"
	"github.com/osse101/CoinToss_Go/internal/domain"
	"github.com/osse101/CoinToss_Go/internal/event"
	"github.com/osse101/CoinToss_Go/internal/inventory"
	"github.com/osse101/CoinToss_Go/internal/logger"
	"github.com/osse101/CoinToss_Go/internal/loot"
	"github.com/osse101/CoinToss_Go/internal/repository"
	"github.com/osse101/CoinToss_Go/internal/stake"
)

// Service resolves rounds
type Service interface {
	ResolveRound(ctx context.Context, ownerID, guess string, stakes domain.Stakes) (*domain.RoundResult, error)
}

// CatalogIndexer builds the id → item lookup used for inventory snapshots
type CatalogIndexer interface {
	Index(ctx context.Context) (domain.CatalogIndex, error)
}

// clearedOnLoss are the parasite stocks wiped when a session ends
var clearedOnLoss = []string{domain.ItemLeadmite, domain.ItemHeavyLeadmite}

// Engine is the round resolution engine
type Engine struct {
	repo      repository.Game
	validator *stake.Validator
	loot      *loot.Generator
	catalog   CatalogIndexer
	locks     *concurrency.LockManager
	rng       coin.RNG
	bus       event.Bus
	now       func() time.Time
}

// NewEngine creates an Engine. A nil rng uses the process-wide source; a nil bus disables events.
func NewEngine(
	repo repository.Game,
	validator *stake.Validator,
	generator *loot.Generator,
	catalog CatalogIndexer,
	locks *concurrency.LockManager,
	rng coin.RNG,
	bus event.Bus,
) *Engine {
	if rng == nil {
		rng = coin.DefaultRNG()
	}
	if locks == nil {
		locks = concurrency.NewLockManager()
	}
	return &Engine{
		repo:      repo,
		validator: validator,
		loot:      generator,
		catalog:   catalog,
		locks:     locks,
		rng:       rng,
		bus:       bus,
		now:       time.Now,
	}
}

// round carries the state of one resolution
type round struct {
	session    *domain.Session
	guess      domain.Side
	stakes     domain.Stakes
	ledger     *inventory.Ledger
	roundItems *inventory.RoundItems
	result     *domain.RoundResult
	granted    map[string][]domain.Drop
}

// ResolveRound plays one round of the owner's ongoing session. Nothing is written
// unless the whole round succeeds.
func (e *Engine) ResolveRound(ctx context.Context, ownerID, guess string, stakes domain.Stakes) (*domain.RoundResult, error) {
	ctx = logger.WithOwnerID(ctx, ownerID)
	log := logger.FromContext(ctx)
	log.Debug(LogMsgResolveRoundCalled, "guess", guess, "stakes", len(stakes))
	start := e.now()

	side, ok := domain.ParseSide(guess)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, domain.ErrMsgInvalidGuess)
	}

	unlock := e.locks.Lock(ownerID)
	defer unlock()

	tx, err := e.repo.BeginTx(ctx)
	if err != nil {
		return nil, storageFailure(ErrContextBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	session, err := tx.GetOngoingSession(ctx, ownerID)
	if err != nil {
		return nil, storageFailure(ErrContextLoadSession, err)
	}
	if !session.IsOngoing() {
		return nil, domain.ErrNoOngoingSession
	}

	if err := e.validator.Validate(ctx, tx, session, stakes); err != nil {
		var stakeErr *domain.StakeError
		if errors.As(err, &stakeErr) {
			log.Info(LogMsgStakeRejected, "reason", stakeErr.Reason, "item", stakeErr.Item)
			e.publish(ctx, event.NewStakeRejectedEvent(ownerID, stakeErr))
			return nil, err
		}
		return nil, storageFailure(ErrContextValidate, err)
	}

	r := &round{
		session:    session,
		guess:      side,
		stakes:     stakes,
		ledger:     inventory.NewLedger(tx, ownerID),
		roundItems: inventory.NewRoundItems(tx, session.ID),
		result:     &domain.RoundResult{SessionID: session.ID, Score: session.Score, Status: session.Status},
		granted:    make(map[string][]domain.Drop),
	}

	switch {
	case stakes.Has(domain.StakeGenieCoin):
		err = e.playAmplifier(ctx, r)
	case stakes.Has(domain.StakeCheaterCoin):
		err = e.playRigged(ctx, r)
	default:
		err = e.playToss(ctx, r)
	}
	if err != nil {
		return nil, err
	}

	session.Score = r.result.Score
	session.Status = r.result.Status
	session.UpdatedAt = e.now()
	if err := tx.UpdateSession(ctx, session); err != nil {
		return nil, storageFailure(ErrContextUpdateSession, err)
	}

	if !r.result.Finished() {
		if err := e.snapshot(ctx, r); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, storageFailure(ErrContextCommit, err)
	}

	elapsed := e.now().Sub(start)
	log.Info(LogMsgRoundResolved,
		"session_id", session.ID,
		"outcome", r.result.Outcome,
		"coin", r.result.CoinResult,
		"score", r.result.Score,
		"status", r.result.Status,
		"duration", elapsed)

	e.publish(ctx, event.NewRoundResolvedEvent(ownerID, r.result, elapsed))
	for _, source := range []string{event.SourceRound, event.SourceEnemy, event.SourceSessionEnd} {
		if drops := r.granted[source]; len(drops) > 0 {
			e.publish(ctx, event.NewItemsGrantedEvent(ownerID, source, drops))
		}
	}
	if r.result.Finished() {
		e.publish(ctx, event.NewSessionFinishedEvent(session))
	}

	return r.result, nil
}

// playToss runs the weighted toss and its three branches
func (e *Engine) playToss(ctx context.Context, r *round) error {
	if r.stakes.Has(domain.StakeSpring) {
		if err := r.roundItems.Track(ctx, domain.ItemSpring); err != nil {
			return storageFailure(ErrContextTrackSpring, err)
		}
	}

	r.result.CoinResult = coin.Resolve(e.rng, r.stakes)

	switch {
	case r.result.CoinResult == r.guess:
		return e.correctGuess(ctx, r)
	case r.stakes.Has(domain.StakeSpring):
		return e.springSave(ctx, r)
	default:
		return e.loseSession(ctx, r)
	}
}

func (e *Engine) correctGuess(ctx context.Context, r *round) error {
	res := r.result
	res.Outcome = domain.OutcomeCorrect
	res.Won = true

	leadmites, err := r.ledger.ConsumeUpTo(ctx, domain.ItemLeadmite, r.stakes.Quantity(domain.StakeLeadmite))
	if err != nil {
		return storageFailure(ErrContextConsumeStake, err)
	}
	heavyLeadmites, err := r.ledger.ConsumeUpTo(ctx, domain.ItemHeavyLeadmite, r.stakes.Quantity(domain.StakeHeavyLeadmite))
	if err != nil {
		return storageFailure(ErrContextConsumeStake, err)
	}
	res.Score += domain.PointsCorrectGuess +
		domain.PointsPerLeadmiteEliminated*leadmites +
		domain.PointsPerHeavyLeadmiteKilled*heavyLeadmites

	for _, kind := range domain.MassKinds {
		if !r.stakes.Has(kind) {
			continue
		}
		if err := r.ledger.Consume(ctx, kind.ItemID(), 1); err != nil {
			return storageFailure(ErrContextConsumeStake, err)
		}
	}

	res.Message = joinMessage(domain.MsgCorrectGuess, eliminationNote(leadmites, heavyLeadmites))
	return e.continueSession(ctx, r)
}

func (e *Engine) springSave(ctx context.Context, r *round) error {
	res := r.result
	res.Outcome = domain.OutcomeSaved

	if err := r.ledger.Consume(ctx, domain.ItemSpring, 1); err != nil {
		return storageFailure(ErrContextConsumeStake, err)
	}
	if err := r.roundItems.MarkSpent(ctx, domain.ItemSpring); err != nil {
		return storageFailure(ErrContextConsumeStake, err)
	}

	res.Message = domain.MsgSaved
	return e.continueSession(ctx, r)
}

// loseSession ends the session: the full stake is lost, parasites are cleared and
// the end-of-session reward set is granted
func (e *Engine) loseSession(ctx context.Context, r *round) error {
	res := r.result
	res.Outcome = domain.OutcomeLost
	res.Status = domain.SessionFinished
	res.Message = domain.MsgWrongGuess

	for _, kind := range domain.MassKinds {
		if err := r.ledger.Consume(ctx, kind.ItemID(), r.stakes.Quantity(kind)); err != nil {
			return storageFailure(ErrContextConsumeStake, err)
		}
	}

	for _, itemID := range clearedOnLoss {
		if err := r.ledger.Zero(ctx, itemID); err != nil {
			return storageFailure(ErrContextClearParasites, err)
		}
	}

	rewards, err := e.loot.SessionRewards(ctx, r.ledger, res.Score)
	if err != nil {
		return storageFailure(ErrContextRewards, err)
	}
	res.Rewards = rewards
	r.granted[event.SourceSessionEnd] = rewards

	used, err := r.roundItems.List(ctx)
	if err != nil {
		return storageFailure(ErrContextUsedItems, err)
	}
	res.UsedItems = used
	return nil
}

func (e *Engine) playAmplifier(ctx context.Context, r *round) error {
	if err := e.spendAbility(ctx, r, domain.ItemGenieCoin); err != nil {
		return err
	}

	res := r.result
	res.Outcome = domain.OutcomeAmplified
	res.CoinResult = coin.Flip(e.rng)
	res.Won = res.CoinResult == r.guess
	res.Score = coin.AmplifiedScore(res.Score, res.Won)
	res.Message = domain.MsgAmplifierLoss
	if res.Won {
		res.Message = domain.MsgAmplifierWin
	}
	return e.continueSession(ctx, r)
}

func (e *Engine) playRigged(ctx context.Context, r *round) error {
	if err := e.spendAbility(ctx, r, domain.ItemCheaterCoin); err != nil {
		return err
	}

	res := r.result
	res.Outcome = domain.OutcomeRigged
	res.CoinResult = coin.RiggedToss(e.rng, r.guess)
	res.Won = res.CoinResult == r.guess
	res.Score = coin.RiggedScore(res.Score, res.Won)
	res.Message = domain.MsgRiggedLoss
	if res.Won {
		res.Message = domain.MsgRiggedWin
	}
	return e.continueSession(ctx, r)
}

// spendAbility consumes one special coin and counts its use for the session
func (e *Engine) spendAbility(ctx context.Context, r *round, itemID string) error {
	if err := r.ledger.Consume(ctx, itemID, 1); err != nil {
		return storageFailure(ErrContextConsumeStake, err)
	}
	if err := r.roundItems.Increment(ctx, itemID); err != nil {
		return storageFailure(ErrContextConsumeStake, err)
	}
	return nil
}

// continueSession runs the steps shared by every round that keeps the session alive
func (e *Engine) continueSession(ctx context.Context, r *round) error {
	res := r.result

	report, err := consumeParasites(ctx, r.ledger)
	if err != nil {
		return storageFailure(ErrContextParasites, err)
	}
	res.ParasiteReport = report
	res.Message = joinMessage(res.Message, report)

	reward, err := e.loot.RoundReward(ctx, r.ledger)
	if err != nil {
		return storageFailure(ErrContextRewards, err)
	}
	if reward != nil {
		res.Rewards = []domain.Drop{*reward}
		r.granted[event.SourceRound] = res.Rewards
	}

	enemy, err := e.loot.SpawnEnemy(ctx, r.ledger, res.Score)
	if err != nil {
		return storageFailure(ErrContextRewards, err)
	}
	if enemy != nil {
		res.Enemy = enemy
		r.granted[event.SourceEnemy] = []domain.Drop{*enemy}
	}
	return nil
}

func (e *Engine) snapshot(ctx context.Context, r *round) error {
	stock, err := r.ledger.Snapshot(ctx)
	if err != nil {
		return storageFailure(ErrContextSnapshot, err)
	}
	index, err := e.catalog.Index(ctx)
	if err != nil {
		return storageFailure(ErrContextSnapshot, err)
	}
	r.result.Inventory = domain.AggregateInventory(stock, index)
	return nil
}

func (e *Engine) publish(ctx context.Context, evt event.Event) {
	if e.bus == nil {
		return
	}
	if err := e.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}

// storageFailure wraps a collaborator error so callers can match domain.ErrStorageFailure
func storageFailure(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", domain.ErrStorageFailure, op, err)
}

func eliminationNote(leadmites, heavyLeadmites int) string {
	var note string
	if leadmites > 0 {
		note = fmt.Sprintf("You got rid of %s!", plural(leadmites, "leadmite"))
	}
	if heavyLeadmites > 0 {
		note = joinMessage(note, fmt.Sprintf("You got rid of %s!", plural(heavyLeadmites, "heavy leadmite")))
	}
	return note
}

func joinMessage(parts ...string) string {
	var out string
	for _, p := range parts {
		switch {
		case p == "":
		case out == "":
			out = p
		default:
			out += " " + p
		}
	}
	return out
}
