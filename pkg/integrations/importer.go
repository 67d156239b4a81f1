package integrations

import (
	"context"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"droscher.com/DrinkCatalog/pkg/model"
	"droscher.com/DrinkCatalog/pkg/repository"
)

// Catalog is the part of the repository an import writes to.
type Catalog interface {
	GetCategoriesByNames(ctx context.Context, names []string) (map[string]model.Category, error)
	CreateDrink(ctx context.Context, input repository.NewDrinkInput) (*model.Drink, error)
}

type Importer struct {
	catalog Catalog
	logger  *zap.Logger
}

func NewImporter(catalog Catalog, logger *zap.Logger) *Importer {
	return &Importer{catalog: catalog, logger: logger}
}

// Import adds every drink integration finds for query. A drink's style becomes its category when a
// category of that name already exists; categories are never created. Drinks that cannot be added
// are skipped and their errors returned together with the drinks that were created.
func (i *Importer) Import(ctx context.Context, integration Integration, query string) ([]*model.Drink, error) {
	found, errs := integration.FindDrinks(query)
	if len(found) == 0 {
		return nil, errs
	}

	styles := make([]string, 0, len(found))
	for _, drink := range found {
		styles = append(styles, drink.Style)
	}

	categories, err := i.catalog.GetCategoriesByNames(ctx, styles)
	if err != nil {
		return nil, multierr.Append(errs, err)
	}

	created := make([]*model.Drink, 0, len(found))

	for _, imported := range found {
		input := repository.NewDrinkInput{
			Name:      imported.Name,
			ImageURL:  imported.ImageURL,
			BrandName: imported.BrandName,
		}

		if imported.AlcoholContent != nil {
			input.AlcoholContent = *imported.AlcoholContent
		}

		if category, found := categories[strings.ToLower(strings.TrimSpace(imported.Style))]; found {
			input.CategoryIDs = []uint{category.ID}
		}

		drink, err := i.catalog.CreateDrink(ctx, input)
		if multierr.AppendInto(&errs, err) {
			i.logger.Warn("skipping imported drink", zap.String("name", imported.Name), zap.Error(err))

			continue
		}

		i.logger.Info("imported drink", zap.Uint("drink_id", drink.ID), zap.String("name", drink.Name), zap.String("brand", drink.Brand.Name))
		created = append(created, drink)
	}

	return created, errs
}
