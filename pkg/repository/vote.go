package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"droscher.com/DrinkCatalog/pkg/model"
)

var (
	ErrNoVotes         = errors.New("no votes for day")
	ErrNoFeaturedDrink = errors.New("no featured drink")
)

// VoteRepository persists daily votes and the featured drink slot.
type VoteRepository interface {
	RecordVote(ctx context.Context, userID uint, drinkID uint, now time.Time) (*model.Vote, error)
	TopVotedDrink(ctx context.Context, day time.Time) (*model.VoteTally, error)
	CountDrinks(ctx context.Context) (int64, error)
	DrinkIDAtOffset(ctx context.Context, offset int) (uint, error)
	GetFeaturedDrink(ctx context.Context) (*model.FeaturedDrink, error)
	SaveFeaturedDrink(ctx context.Context, drinkID uint, asOf time.Time) (*model.FeaturedDrink, error)
}

// RecordVote stores the user's vote for the UTC day of now. A second vote on the same day replaces
// the first in a single upsert on the (user, day) unique index.
func (r *Repository) RecordVote(ctx context.Context, userID uint, drinkID uint, now time.Time) (*model.Vote, error) {
	vote := model.Vote{
		UserID:  userID,
		DrinkID: drinkID,
		Day:     model.UTCDay(now),
		VotedAt: now.UTC(),
	}

	result := r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "day"}},
		DoUpdates: clause.AssignmentColumns([]string{"drink_id", "voted_at"}),
	}).Create(&vote)
	if result.Error != nil {
		r.Logger.Error("error recording vote", zap.Uint("user_id", userID), zap.Uint("drink_id", drinkID), zap.Error(result.Error))

		return nil, fmt.Errorf("error recording vote: %w", result.Error)
	}

	return &vote, nil
}

// TopVotedDrink tallies the votes cast on the UTC day of day. The highest count wins and equal
// counts go to the lowest drink id.
func (r *Repository) TopVotedDrink(ctx context.Context, day time.Time) (*model.VoteTally, error) {
	var tally model.VoteTally

	result := r.DB.WithContext(ctx).Model(&model.Vote{}).
		Select("drink_id, COUNT(*) AS votes").
		Where("day = ?", model.UTCDay(day)).
		Group("drink_id").
		Order("votes DESC, drink_id ASC").
		Limit(1).
		Scan(&tally)
	if result.Error != nil {
		return nil, fmt.Errorf("error tallying votes: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return nil, ErrNoVotes
	}

	return &tally, nil
}

func (r *Repository) CountDrinks(ctx context.Context) (int64, error) {
	var count int64

	if result := r.DB.WithContext(ctx).Model(&model.Drink{}).Count(&count); result.Error != nil {
		return 0, fmt.Errorf("error counting drinks: %w", result.Error)
	}

	return count, nil
}

// DrinkIDAtOffset returns the id of the drink at offset when drinks are ordered by id.
func (r *Repository) DrinkIDAtOffset(ctx context.Context, offset int) (uint, error) {
	var ids []uint

	result := r.DB.WithContext(ctx).Model(&model.Drink{}).Order("id").Offset(offset).Limit(1).Pluck("id", &ids)
	if result.Error != nil {
		return 0, fmt.Errorf("error getting drink at offset %d: %w", offset, result.Error)
	}

	if len(ids) == 0 {
		return 0, ErrDrinkNotFound
	}

	return ids[0], nil
}

func (r *Repository) GetFeaturedDrink(ctx context.Context) (*model.FeaturedDrink, error) {
	var featured model.FeaturedDrink

	if result := r.DB.WithContext(ctx).First(&featured, model.FeaturedDrinkSlot); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNoFeaturedDrink
		}

		return nil, fmt.Errorf("error getting featured drink: %w", result.Error)
	}

	return &featured, nil
}

// SaveFeaturedDrink replaces the featured drink in place, so readers never observe it missing.
func (r *Repository) SaveFeaturedDrink(ctx context.Context, drinkID uint, asOf time.Time) (*model.FeaturedDrink, error) {
	featured := model.FeaturedDrink{
		ID:      model.FeaturedDrinkSlot,
		DrinkID: drinkID,
		AsOf:    model.UTCDay(asOf),
	}

	result := r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"drink_id", "as_of", "updated_at"}),
	}).Create(&featured)
	if result.Error != nil {
		r.Logger.Error("error saving featured drink", zap.Uint("drink_id", drinkID), zap.Error(result.Error))

		return nil, fmt.Errorf("error saving featured drink: %w", result.Error)
	}

	return &featured, nil
}
