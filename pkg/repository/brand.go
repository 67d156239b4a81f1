package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"droscher.com/DrinkCatalog/pkg/model"
)

// ResolveOrCreateBrand returns the brand with exactly this name, creating it first if needed.
// The unique index on brands.name makes concurrent creation of the same name settle on one row.
func (r *Repository) ResolveOrCreateBrand(ctx context.Context, name string) (*model.Brand, error) {
	brand, err := resolveOrCreateBrand(r.DB.WithContext(ctx), strings.TrimSpace(name))
	if err != nil {
		return nil, fmt.Errorf("error resolving brand %q: %w", name, err)
	}

	return brand, nil
}

func (r *Repository) FindBrandByName(ctx context.Context, name string) (*model.Brand, error) {
	return findBrandByName(r.DB.WithContext(ctx), strings.TrimSpace(name))
}

func resolveOrCreateBrand(tx *gorm.DB, name string) (*model.Brand, error) {
	brand := model.Brand{Name: name}
	if err := brand.Validate(); err != nil {
		return nil, err
	}

	if result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&brand); result.Error != nil {
		return nil, result.Error
	}

	if brand.ID == 0 {
		if result := tx.Where("name = ?", name).First(&brand); result.Error != nil {
			return nil, result.Error
		}
	}

	return &brand, nil
}

func findBrandByName(tx *gorm.DB, name string) (*model.Brand, error) {
	var brand model.Brand

	if result := tx.Where("name = ?", name).First(&brand); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %q", ErrBrandNotFound, name)
		}

		return nil, result.Error
	}

	return &brand, nil
}

// DiffCategoryIDs compares the current and desired category sets of a drink. Ids only in desired
// are returned in toAdd, ids only in current in toRemove; both are sorted and free of duplicates.
func DiffCategoryIDs(current, desired []uint) (toAdd, toRemove []uint) {
	currentSet := make(map[uint]struct{}, len(current))
	for _, id := range current {
		currentSet[id] = struct{}{}
	}

	desiredSet := make(map[uint]struct{}, len(desired))
	for _, id := range desired {
		desiredSet[id] = struct{}{}
	}

	for id := range desiredSet {
		if _, found := currentSet[id]; !found {
			toAdd = append(toAdd, id)
		}
	}

	for id := range currentSet {
		if _, found := desiredSet[id]; !found {
			toRemove = append(toRemove, id)
		}
	}

	sort.Slice(toAdd, func(i, j int) bool { return toAdd[i] < toAdd[j] })
	sort.Slice(toRemove, func(i, j int) bool { return toRemove[i] < toRemove[j] })

	return toAdd, toRemove
}

func uniqueIDs(ids []uint) []uint {
	unique, _ := DiffCategoryIDs(nil, ids)

	return unique
}

func (r *Repository) isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.ForeignKeyViolation
	}

	if translator, ok := r.DB.Dialector.(gorm.ErrorTranslator); ok {
		return errors.Is(translator.Translate(err), gorm.ErrForeignKeyViolated)
	}

	return false
}
