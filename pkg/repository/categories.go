package repository

import (
	"sort"
	"strconv"
	"strings"

	"droscher.com/DrinkCatalog/pkg/model"
)

const categorySeparator = ","

// hydrateCategories rebuilds a drink's categories from the parallel id and name lists produced by
// the grouped catalog query. Ids that do not parse are skipped along with their name; the rest of
// the row is kept.
func hydrateCategories(ids, names *string) []model.Category {
	categories := []model.Category{}

	if ids == nil || names == nil || *ids == "" {
		return categories
	}

	idParts := strings.Split(*ids, categorySeparator)
	nameParts := strings.Split(*names, categorySeparator)

	for index := 0; index < len(idParts) && index < len(nameParts); index++ {
		id, err := strconv.ParseUint(strings.TrimSpace(idParts[index]), 10, 64)
		if err != nil {
			continue
		}

		categories = append(categories, model.Category{ID: uint(id), Name: strings.TrimSpace(nameParts[index])})
	}

	sort.SliceStable(categories, func(i, j int) bool { return categories[i].ID < categories[j].ID })

	return categories
}
