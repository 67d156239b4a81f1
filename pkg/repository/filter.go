package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

// DrinkCriteria narrows and orders a drink search. Every field is optional.
type DrinkCriteria struct {
	// Search is split on whitespace; every token must appear in the brand, a category or the drink name.
	Search     string
	Brands     []string
	Categories []string
	MinAlcohol *float64
	MaxAlcohol *float64
	// Sort is applied in order; unknown fields sort by average review score.
	Sort  []SortField
	Limit int
}

type SortField struct {
	Field      string
	Descending bool
}

const (
	drinkColumns = "d.id, d.name, d.image_url, d.alcohol_content, b.id, b.name"

	averageScoreExpression = "COALESCE((SELECT AVG(r.score) FROM reviews r WHERE r.drink_id = d.id), 0)"

	searchPredicate = `(LOWER(b.name) LIKE ? ESCAPE '\'` +
		` OR EXISTS (SELECT 1 FROM drink_categories sdc INNER JOIN categories sc ON sc.id = sdc.category_id` +
		` WHERE sdc.drink_id = d.id AND LOWER(sc.name) LIKE ? ESCAPE '\')` +
		` OR LOWER(d.name) LIKE ? ESCAPE '\')`

	categoryPredicate = `EXISTS (SELECT 1 FROM drink_categories fdc INNER JOIN categories fc ON fc.id = fdc.category_id` +
		` WHERE fdc.drink_id = d.id AND LOWER(TRIM(fc.name)) IN ?)`
)

// sortColumns maps the accepted sort field names, lower-cased, onto physical columns.
var sortColumns = map[string]string{
	"id":             "d.id",
	"drinkid":        "d.id",
	"name":           "d.name",
	"drinkname":      "d.name",
	"alcohol":        "d.alcohol_content",
	"alcoholcontent": "d.alcohol_content",
	"brand":          "b.name",
	"brandname":      "b.name",
	"imageurl":       "d.image_url",
}

// drinkRow is one grouped catalog row: a drink, its brand and its aggregated categories.
type drinkRow struct {
	ID             uint
	Name           string
	ImageURL       string
	AlcoholContent float64
	BrandID        uint
	BrandName      string
	CategoryIDs    *string
	CategoryNames  *string
}

// drinkQuery selects drinks grouped with their brand so that categories can be aggregated.
// Drinks whose brand cannot be resolved are dropped by the HAVING clause.
func (r *Repository) drinkQuery(ctx context.Context) *gorm.DB {
	return r.DB.WithContext(ctx).Table("drinks AS d").
		Select("d.id, d.name, d.image_url, d.alcohol_content, b.id AS brand_id, b.name AS brand_name, " + r.categoryAggregates()).
		Joins("LEFT JOIN brands b ON b.id = d.brand_id").
		Joins("LEFT JOIN drink_categories dc ON dc.drink_id = d.id").
		Joins("LEFT JOIN categories c ON c.id = dc.category_id").
		Group(drinkColumns).
		Having("COUNT(b.id) > 0")
}

func (r *Repository) categoryAggregates() string {
	if r.isSQLite() {
		return "GROUP_CONCAT(c.id, ',') AS category_ids, GROUP_CONCAT(c.name, ',') AS category_names"
	}

	return "STRING_AGG(CAST(c.id AS TEXT), ',' ORDER BY c.id) AS category_ids, " +
		"STRING_AGG(c.name, ',' ORDER BY c.id) AS category_names"
}

//nolint:cyclop // one branch per optional criterion
func applyCriteria(query *gorm.DB, criteria DrinkCriteria) *gorm.DB {
	for _, token := range strings.Fields(criteria.Search) {
		pattern := "%" + escapeLike(strings.ToLower(token)) + "%"
		query = query.Where(searchPredicate, pattern, pattern, pattern)
	}

	if brands := normalizeNames(criteria.Brands); len(brands) > 0 {
		query = query.Where("LOWER(TRIM(b.name)) IN ?", brands)
	}

	if categories := normalizeNames(criteria.Categories); len(categories) > 0 {
		query = query.Where(categoryPredicate, categories)
	}

	if criteria.MinAlcohol != nil {
		query = query.Where("d.alcohol_content >= ?", *criteria.MinAlcohol)
	}

	if criteria.MaxAlcohol != nil {
		query = query.Where("d.alcohol_content <= ?", *criteria.MaxAlcohol)
	}

	if criteria.Limit > 0 {
		query = query.Limit(criteria.Limit)
	}

	return applySort(query, criteria.Sort)
}

// applySort orders by the requested fields and always finishes with the drink id so that equal keys
// come back in a stable order.
func applySort(query *gorm.DB, fields []SortField) *gorm.DB {
	for _, field := range fields {
		expression, found := sortColumns[strings.ToLower(strings.ReplaceAll(field.Field, "_", ""))]
		if !found {
			expression = averageScoreExpression
		}

		if field.Descending {
			query = query.Order(expression + " DESC")
		} else {
			query = query.Order(expression + " ASC")
		}
	}

	return query.Order("d.id ASC")
}

func normalizeNames(names []string) []string {
	normalized := make([]string, 0, len(names))

	for _, name := range names {
		if trimmed := strings.ToLower(strings.TrimSpace(name)); trimmed != "" {
			normalized = append(normalized, trimmed)
		}
	}

	return normalized
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(value string) string {
	return likeEscaper.Replace(value)
}
