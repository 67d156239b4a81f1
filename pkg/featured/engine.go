// Package featured picks the drink of the day.
//
// The featured drink is recomputed lazily: the first read on a new UTC day replaces it with the drink
// that collected the most votes the day before, or with a random drink when nobody voted.
package featured

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"droscher.com/DrinkCatalog/pkg/model"
	"droscher.com/DrinkCatalog/pkg/repository"
)

var ErrEmptyCatalog = errors.New("catalog has no drinks")

type drinkGetter interface {
	GetDrinkByID(ctx context.Context, drinkID uint) (*model.Drink, error)
}

// Random returns a uniformly distributed value in [0, n).
type Random interface {
	Int64N(n int64) int64
}

type globalRandom struct{}

func (globalRandom) Int64N(n int64) int64 {
	return rand.Int63n(n) //nolint:gosec // selection is not security sensitive
}

type Engine struct {
	votes   repository.VoteRepository
	catalog drinkGetter
	logger  *zap.Logger
	clock   func() time.Time
	random  Random
}

type Option func(*Engine)

func WithClock(clock func() time.Time) Option {
	return func(e *Engine) {
		e.clock = clock
	}
}

func WithRandom(random Random) Option {
	return func(e *Engine) {
		e.random = random
	}
}

func NewEngine(votes repository.VoteRepository, catalog drinkGetter, logger *zap.Logger, options ...Option) *Engine {
	engine := &Engine{
		votes:   votes,
		catalog: catalog,
		logger:  logger,
		clock:   time.Now,
		random:  globalRandom{},
	}

	for _, option := range options {
		option(engine)
	}

	return engine
}

// GetFeaturedDrink returns today's featured drink, recomputing it first when it is missing or was
// chosen on an earlier day.
func (e *Engine) GetFeaturedDrink(ctx context.Context) (*model.Drink, error) {
	now := e.clock().UTC()

	featured, err := e.votes.GetFeaturedDrink(ctx)
	if err != nil && !errors.Is(err, repository.ErrNoFeaturedDrink) {
		e.logger.Warn("unable to read featured drink, recomputing", zap.Error(err))
	}

	if featured == nil || !model.SameUTCDay(featured.AsOf, now) {
		drinkID, err := e.ComputeTopVotedOrRandom(ctx)
		if err != nil {
			return nil, err
		}

		featured, err = e.votes.SaveFeaturedDrink(ctx, drinkID, now)
		if err != nil {
			return nil, fmt.Errorf("error replacing featured drink: %w", err)
		}

		e.logger.Info("featured drink replaced", zap.Uint("drink_id", drinkID), zap.Time("as_of", featured.AsOf))
	}

	return e.catalog.GetDrinkByID(ctx, featured.DrinkID)
}

// ComputeTopVotedOrRandom returns the drink with most votes yesterday (UTC), ties going to the lowest
// drink id. Without votes a random drink is chosen.
func (e *Engine) ComputeTopVotedOrRandom(ctx context.Context) (uint, error) {
	yesterday := model.UTCDay(e.clock()).AddDate(0, 0, -1)

	tally, err := e.votes.TopVotedDrink(ctx, yesterday)
	if err == nil {
		return tally.DrinkID, nil
	}

	if !errors.Is(err, repository.ErrNoVotes) {
		e.logger.Warn("unable to tally votes, choosing a random drink", zap.Time("day", yesterday), zap.Error(err))
	}

	return e.RandomDrinkID(ctx)
}

// TopVotedDrinkID is ComputeTopVotedOrRandom without touching the featured drink.
func (e *Engine) TopVotedDrinkID(ctx context.Context) (uint, error) {
	return e.ComputeTopVotedOrRandom(ctx)
}

// RandomDrinkID picks uniformly among the existing drinks.
func (e *Engine) RandomDrinkID(ctx context.Context) (uint, error) {
	count, err := e.votes.CountDrinks(ctx)
	if err != nil {
		return 0, err
	}

	if count == 0 {
		return 0, ErrEmptyCatalog
	}

	drinkID, err := e.votes.DrinkIDAtOffset(ctx, int(e.random.Int64N(count)))
	if err != nil {
		return 0, fmt.Errorf("error picking random drink: %w", err)
	}

	return drinkID, nil
}

// RecordVote records the user's vote for today, replacing any earlier vote they cast today.
func (e *Engine) RecordVote(ctx context.Context, userID uint, drinkID uint) (*model.Vote, error) {
	if _, err := e.catalog.GetDrinkByID(ctx, drinkID); err != nil {
		return nil, err
	}

	return e.votes.RecordVote(ctx, userID, drinkID, e.clock())
}
