package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm/clause"

	"droscher.com/DrinkCatalog/pkg/model"
)

type FavoriteRepository interface {
	AddFavorite(ctx context.Context, userID uint, drinkID uint) error
	RemoveFavorite(ctx context.Context, userID uint, drinkID uint) error
	IsFavorite(ctx context.Context, userID uint, drinkID uint) (bool, error)
	ListFavorites(ctx context.Context, userID uint, limit int) ([]*model.Drink, error)
}

func (r *Repository) AddFavorite(ctx context.Context, userID uint, drinkID uint) error {
	favorite := model.Favorite{UserID: userID, DrinkID: drinkID}

	if result := r.DB.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&favorite); result.Error != nil {
		return fmt.Errorf("error adding favorite: %w", result.Error)
	}

	return nil
}

func (r *Repository) RemoveFavorite(ctx context.Context, userID uint, drinkID uint) error {
	result := r.DB.WithContext(ctx).Where("user_id = ? AND drink_id = ?", userID, drinkID).Delete(&model.Favorite{})
	if result.Error != nil {
		return fmt.Errorf("error removing favorite: %w", result.Error)
	}

	return nil
}

func (r *Repository) IsFavorite(ctx context.Context, userID uint, drinkID uint) (bool, error) {
	var count int64

	result := r.DB.WithContext(ctx).Model(&model.Favorite{}).Where("user_id = ? AND drink_id = ?", userID, drinkID).Count(&count)
	if result.Error != nil {
		return false, fmt.Errorf("error checking favorite: %w", result.Error)
	}

	return count > 0, nil
}

// ListFavorites returns the user's favorite drinks, most recently added first. A limit of zero or
// less returns all of them.
func (r *Repository) ListFavorites(ctx context.Context, userID uint, limit int) ([]*model.Drink, error) {
	var rows []drinkRow

	query := r.drinkQuery(ctx).
		Joins("INNER JOIN favorites f ON f.drink_id = d.id AND f.user_id = ?", userID).
		Order("MAX(f.created_at) DESC").
		Order("d.id ASC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	if result := query.Scan(&rows); result.Error != nil {
		return nil, fmt.Errorf("error listing favorites: %w", result.Error)
	}

	return drinksFromRows(rows), nil
}
