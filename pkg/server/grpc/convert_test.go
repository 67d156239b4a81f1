package grpc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.openly.dev/pointy"

	"droscher.com/DrinkCatalog/pkg/model"
	"droscher.com/DrinkCatalog/pkg/repository"
	"droscher.com/DrinkCatalog/pkg/server/grpc"
	api "droscher.com/DrinkCatalog/pkg/server/grpc/api/v1"
)

func TestDrinkFromModel(t *testing.T) {
	drink := &model.Drink{
		ID:             3,
		Name:           "Tripel",
		AlcoholContent: 9.5,
		BrandID:        2,
		Brand:          model.Brand{ID: 2, Name: "Trappist"},
		Categories:     []model.Category{{ID: 1, Name: "Ale"}},
	}

	pbDrink := grpc.DrinkFromModel(drink)

	assert.Equal(t, uint64(3), pbDrink.Id)
	assert.Equal(t, &api.Brand{Id: 2, Name: "Trappist"}, pbDrink.Brand)
	assert.Equal(t, []*api.Category{{Id: 1, Name: "Ale"}}, pbDrink.Categories)
	assert.Nil(t, grpc.DrinkFromModel(nil))
}

func TestDrinkFromModel_NoCategoriesIsEmptyList(t *testing.T) {
	pbDrink := grpc.DrinkFromModel(&model.Drink{ID: 1, Name: "Plain"})

	assert.NotNil(t, pbDrink.Categories)
	assert.Empty(t, pbDrink.Categories)
	assert.Nil(t, pbDrink.Brand)
}

func TestDrinkToModel(t *testing.T) {
	drink := grpc.DrinkToModel(&api.Drink{
		Id:         4,
		Name:       "Bock",
		Brand:      &api.Brand{Name: "Gargoyle"},
		Categories: []*api.Category{{Id: 2}, nil, {Id: 5}},
	})

	assert.Equal(t, uint(4), drink.ID)
	assert.Equal(t, "Gargoyle", drink.Brand.Name)
	assert.Equal(t, []uint{2, 5}, drink.CategoryIDs())
}

func TestCriteriaFromRequest(t *testing.T) {
	criteria := grpc.CriteriaFromRequest(&api.SearchRequest{
		Search:     "hazy",
		Brands:     []string{"Gargoyle"},
		MinAlcohol: pointy.Float64(4),
		Sort:       []*api.SortField{{Field: "DrinkName", Descending: true}, nil},
		Limit:      10,
	})

	assert.Equal(t, repository.DrinkCriteria{
		Search:     "hazy",
		Brands:     []string{"Gargoyle"},
		MinAlcohol: pointy.Float64(4),
		Sort:       []repository.SortField{{Field: "DrinkName", Descending: true}},
		Limit:      10,
	}, criteria)
}

func TestNewDrinkInputFromRequest(t *testing.T) {
	input := grpc.NewDrinkInputFromRequest(&api.CreateDrinkRequest{
		Name:           "Lager",
		CategoryIds:    []uint64{1, 2},
		BrandName:      "Gargoyle",
		AlcoholContent: 4.5,
	})

	assert.Equal(t, []uint{1, 2}, input.CategoryIDs)
	assert.Equal(t, "Gargoyle", input.BrandName)
}
