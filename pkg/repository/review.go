package repository

import (
	"context"
	"fmt"

	"droscher.com/DrinkCatalog/pkg/model"
)

type ReviewRepository interface {
	AddReview(ctx context.Context, review model.Review) (*model.Review, error)
	AverageScore(ctx context.Context, drinkID uint) (float64, error)
	ReviewsFor(ctx context.Context, drinkID uint) ([]*model.Review, error)
}

func (r *Repository) AddReview(ctx context.Context, review model.Review) (*model.Review, error) {
	if err := review.Validate(); err != nil {
		return nil, err
	}

	if result := r.DB.WithContext(ctx).Omit("Drink").Create(&review); result.Error != nil {
		return nil, fmt.Errorf("error adding review: %w", result.Error)
	}

	return &review, nil
}

// AverageScore is the mean review score of a drink, or zero when it has no reviews.
func (r *Repository) AverageScore(ctx context.Context, drinkID uint) (float64, error) {
	var average float64

	result := r.DB.WithContext(ctx).Model(&model.Review{}).
		Select("COALESCE(AVG(score), 0)").
		Where("drink_id = ?", drinkID).
		Scan(&average)
	if result.Error != nil {
		return 0, fmt.Errorf("error averaging reviews: %w", result.Error)
	}

	return average, nil
}

func (r *Repository) ReviewsFor(ctx context.Context, drinkID uint) ([]*model.Review, error) {
	reviews := []*model.Review{}

	if result := r.DB.WithContext(ctx).Where("drink_id = ?", drinkID).Order("created_at DESC, id DESC").Find(&reviews); result.Error != nil {
		return nil, fmt.Errorf("error getting reviews: %w", result.Error)
	}

	return reviews, nil
}
