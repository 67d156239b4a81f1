package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"droscher.com/DrinkCatalog/pkg/model"
)

var (
	ErrDrinkNotFound   = errors.New("drink not found")
	ErrIntegrity       = errors.New("integrity violation")
	ErrBrandNotFound   = fmt.Errorf("%w: brand does not exist", ErrIntegrity)
	ErrUnknownCategory = fmt.Errorf("%w: category does not exist", ErrIntegrity)
)

type DrinkRepository interface {
	SearchDrinks(ctx context.Context, criteria DrinkCriteria) ([]*model.Drink, error)
	GetDrinkByID(ctx context.Context, drinkID uint) (*model.Drink, error)
	ListCategories(ctx context.Context) ([]*model.Category, error)
	ListBrands(ctx context.Context) ([]*model.Brand, error)
	CreateDrink(ctx context.Context, input NewDrinkInput) (*model.Drink, error)
	UpdateDrink(ctx context.Context, drink model.Drink) (*model.Drink, error)
	DeleteDrink(ctx context.Context, drinkID uint) error
}

// NewDrinkInput carries a drink to create; the brand is resolved, or created, by name.
type NewDrinkInput struct {
	Name           string
	ImageURL       string
	CategoryIDs    []uint
	BrandName      string
	AlcoholContent float64
}

func (r *Repository) SearchDrinks(ctx context.Context, criteria DrinkCriteria) ([]*model.Drink, error) {
	var rows []drinkRow

	if result := applyCriteria(r.drinkQuery(ctx), criteria).Scan(&rows); result.Error != nil {
		r.Logger.Error("error searching drinks", zap.String("search", criteria.Search), zap.Error(result.Error))

		return nil, fmt.Errorf("error searching drinks: %w", result.Error)
	}

	return drinksFromRows(rows), nil
}

func (r *Repository) GetDrinkByID(ctx context.Context, drinkID uint) (*model.Drink, error) {
	var rows []drinkRow

	if result := r.drinkQuery(ctx).Where("d.id = ?", drinkID).Scan(&rows); result.Error != nil {
		r.Logger.Error("error getting drink", zap.Uint("drink_id", drinkID), zap.Error(result.Error))

		return nil, fmt.Errorf("error getting drink %d: %w", drinkID, result.Error)
	}

	if len(rows) == 0 {
		return nil, ErrDrinkNotFound
	}

	return drinkFromRow(rows[0]), nil
}

func (r *Repository) ListCategories(ctx context.Context) ([]*model.Category, error) {
	categories := []*model.Category{}

	if result := r.DB.WithContext(ctx).Order("id").Find(&categories); result.Error != nil {
		return nil, fmt.Errorf("error listing categories: %w", result.Error)
	}

	return categories, nil
}

func (r *Repository) ListBrands(ctx context.Context) ([]*model.Brand, error) {
	brands := []*model.Brand{}

	if result := r.DB.WithContext(ctx).Order("id").Find(&brands); result.Error != nil {
		return nil, fmt.Errorf("error listing brands: %w", result.Error)
	}

	return brands, nil
}

// GetCategoriesByNames returns the categories matching names, keyed by lower-cased name.
func (r *Repository) GetCategoriesByNames(ctx context.Context, names []string) (map[string]model.Category, error) {
	var categories []*model.Category

	if result := r.DB.WithContext(ctx).Where("LOWER(name) IN ?", normalizeNames(names)).Find(&categories); result.Error != nil {
		return nil, fmt.Errorf("error getting categories by name: %w", result.Error)
	}

	categoriesByName := make(map[string]model.Category, len(categories))

	for index := range categories {
		category := categories[index]
		categoriesByName[strings.ToLower(category.Name)] = *category
	}

	return categoriesByName, nil
}

func (r *Repository) CreateDrink(ctx context.Context, input NewDrinkInput) (*model.Drink, error) {
	brandName := strings.TrimSpace(input.BrandName)
	if err := (model.Brand{Name: brandName}).Validate(); err != nil {
		return nil, err
	}

	drink, err := model.NewDrink(input.Name, input.ImageURL, input.AlcoholContent, model.Brand{Name: brandName}, nil)
	if err != nil {
		return nil, err
	}

	err = r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		brand, err := resolveOrCreateBrand(tx, brandName)
		if err != nil {
			return err
		}

		drink.BrandID = brand.ID
		drink.Brand = *brand

		if err = tx.Omit(clause.Associations).Create(drink).Error; err != nil {
			return err
		}

		return r.addDrinkCategories(tx, drink.ID, uniqueIDs(input.CategoryIDs))
	})
	if err != nil {
		r.Logger.Error("error creating drink", zap.String("name", input.Name), zap.Error(err))

		return nil, fmt.Errorf("error creating drink %q: %w", input.Name, err)
	}

	return r.GetDrinkByID(ctx, drink.ID)
}

// UpdateDrink replaces the drink's scalar fields, brand and category set. The brand must already
// exist; categories are reconciled by difference so unchanged associations are left alone.
func (r *Repository) UpdateDrink(ctx context.Context, drink model.Drink) (*model.Drink, error) {
	drink.Name = strings.TrimSpace(drink.Name)
	if err := drink.Validate(); err != nil {
		return nil, err
	}

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		brand, err := findBrandByName(tx, strings.TrimSpace(drink.Brand.Name))
		if err != nil {
			return err
		}

		drink.BrandID = brand.ID

		result := tx.Model(&drink).Select("name", "image_url", "alcohol_content", "brand_id", "updated_at").Updates(&drink)
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return ErrDrinkNotFound
		}

		var current []uint

		if err = tx.Model(&model.DrinkCategory{}).Where("drink_id = ?", drink.ID).Order("category_id").Pluck("category_id", &current).Error; err != nil {
			return err
		}

		toAdd, toRemove := DiffCategoryIDs(current, drink.CategoryIDs())

		if err = r.addDrinkCategories(tx, drink.ID, toAdd); err != nil {
			return err
		}

		if len(toRemove) == 0 {
			return nil
		}

		return tx.Where("drink_id = ? AND category_id IN ?", drink.ID, toRemove).Delete(&model.DrinkCategory{}).Error
	})
	if err != nil {
		r.Logger.Error("error updating drink", zap.Uint("drink_id", drink.ID), zap.Error(err))

		return nil, fmt.Errorf("error updating drink %d: %w", drink.ID, err)
	}

	return r.GetDrinkByID(ctx, drink.ID)
}

// DeleteDrink removes the drink and every row referencing it.
func (r *Repository) DeleteDrink(ctx context.Context, drinkID uint) error {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, dependent := range []interface{}{
			&model.DrinkCategory{}, &model.Vote{}, &model.Favorite{}, &model.Review{}, &model.FeaturedDrink{},
		} {
			if err := tx.Where("drink_id = ?", drinkID).Delete(dependent).Error; err != nil {
				return err
			}
		}

		result := tx.Delete(&model.Drink{}, drinkID)
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return ErrDrinkNotFound
		}

		return nil
	})
	if err != nil {
		r.Logger.Error("error deleting drink", zap.Uint("drink_id", drinkID), zap.Error(err))

		return fmt.Errorf("error deleting drink %d: %w", drinkID, err)
	}

	return nil
}

func (r *Repository) addDrinkCategories(tx *gorm.DB, drinkID uint, categoryIDs []uint) error {
	if len(categoryIDs) == 0 {
		return nil
	}

	rows := make([]model.DrinkCategory, 0, len(categoryIDs))
	for _, categoryID := range categoryIDs {
		rows = append(rows, model.DrinkCategory{DrinkID: drinkID, CategoryID: categoryID})
	}

	if err := tx.Create(&rows).Error; err != nil {
		if r.isForeignKeyViolation(err) {
			return fmt.Errorf("%w: %v", ErrUnknownCategory, categoryIDs)
		}

		return err
	}

	return nil
}

func drinksFromRows(rows []drinkRow) []*model.Drink {
	drinks := make([]*model.Drink, 0, len(rows))

	for _, row := range rows {
		drinks = append(drinks, drinkFromRow(row))
	}

	return drinks
}

func drinkFromRow(row drinkRow) *model.Drink {
	return &model.Drink{
		ID:             row.ID,
		Name:           row.Name,
		ImageURL:       row.ImageURL,
		AlcoholContent: row.AlcoholContent,
		BrandID:        row.BrandID,
		Brand:          model.Brand{ID: row.BrandID, Name: row.BrandName},
		Categories:     hydrateCategories(row.CategoryIDs, row.CategoryNames),
	}
}
