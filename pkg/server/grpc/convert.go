package grpc

import (
	"droscher.com/DrinkCatalog/pkg/model"
	"droscher.com/DrinkCatalog/pkg/repository"
	api "droscher.com/DrinkCatalog/pkg/server/grpc/api/v1"
)

func DrinksFromModel(drinks []*model.Drink) []*api.Drink {
	pbDrinks := make([]*api.Drink, 0, len(drinks))

	for _, drink := range drinks {
		pbDrinks = append(pbDrinks, DrinkFromModel(drink))
	}

	return pbDrinks
}

func DrinkFromModel(drink *model.Drink) *api.Drink {
	if drink == nil {
		return nil
	}

	pbDrink := api.Drink{
		Id:             uint64(drink.ID),
		Name:           drink.Name,
		ImageUrl:       drink.ImageURL,
		AlcoholContent: drink.AlcoholContent,
		Categories:     CategoriesFromModel(drink.Categories),
	}

	if drink.Brand.ID != 0 || drink.Brand.Name != "" {
		pbDrink.Brand = &api.Brand{Id: uint64(drink.Brand.ID), Name: drink.Brand.Name}
	}

	return &pbDrink
}

// DrinkToModel converts an API drink for an update: the brand is referenced by name and categories
// by id.
func DrinkToModel(pbDrink *api.Drink) model.Drink {
	drink := model.Drink{
		ID:             uint(pbDrink.Id),
		Name:           pbDrink.Name,
		ImageURL:       pbDrink.ImageUrl,
		AlcoholContent: pbDrink.AlcoholContent,
		Categories:     make([]model.Category, 0, len(pbDrink.Categories)),
	}

	if pbDrink.Brand != nil {
		drink.Brand = model.Brand{Name: pbDrink.Brand.Name}
	}

	for _, category := range pbDrink.Categories {
		if category != nil {
			drink.Categories = append(drink.Categories, model.Category{ID: uint(category.Id), Name: category.Name})
		}
	}

	return drink
}

func CategoriesFromModel(categories []model.Category) []*api.Category {
	pbCategories := make([]*api.Category, 0, len(categories))

	for _, category := range categories {
		pbCategories = append(pbCategories, &api.Category{Id: uint64(category.ID), Name: category.Name})
	}

	return pbCategories
}

func CategoryListFromModel(categories []*model.Category) []*api.Category {
	pbCategories := make([]*api.Category, 0, len(categories))

	for _, category := range categories {
		pbCategories = append(pbCategories, &api.Category{Id: uint64(category.ID), Name: category.Name})
	}

	return pbCategories
}

func BrandsFromModel(brands []*model.Brand) []*api.Brand {
	pbBrands := make([]*api.Brand, 0, len(brands))

	for _, brand := range brands {
		pbBrands = append(pbBrands, &api.Brand{Id: uint64(brand.ID), Name: brand.Name})
	}

	return pbBrands
}

func ReviewFromModel(review *model.Review) *api.Review {
	return &api.Review{
		Id:        uint64(review.ID),
		DrinkId:   uint64(review.DrinkID),
		Score:     int32(review.Score), //nolint:gosec // scores are 1 to 5
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
	}
}

func ReviewsFromModel(reviews []*model.Review) []*api.Review {
	pbReviews := make([]*api.Review, 0, len(reviews))

	for _, review := range reviews {
		pbReviews = append(pbReviews, ReviewFromModel(review))
	}

	return pbReviews
}

func UserFromModel(user *model.User) *api.User {
	return &api.User{
		Id:       user.UUID.String(),
		UserName: user.Username,
		Email:    user.Email,
		IsAdmin:  user.IsAdmin,
	}
}

func CriteriaFromRequest(request *api.SearchRequest) repository.DrinkCriteria {
	criteria := repository.DrinkCriteria{
		Search:     request.Search,
		Brands:     request.Brands,
		Categories: request.Categories,
		MinAlcohol: request.MinAlcohol,
		MaxAlcohol: request.MaxAlcohol,
		Limit:      int(request.Limit),
	}

	for _, field := range request.Sort {
		if field != nil {
			criteria.Sort = append(criteria.Sort, repository.SortField{Field: field.Field, Descending: field.Descending})
		}
	}

	return criteria
}

func NewDrinkInputFromRequest(request *api.CreateDrinkRequest) repository.NewDrinkInput {
	categoryIDs := make([]uint, 0, len(request.CategoryIds))
	for _, id := range request.CategoryIds {
		categoryIDs = append(categoryIDs, uint(id))
	}

	return repository.NewDrinkInput{
		Name:           request.Name,
		ImageURL:       request.ImageUrl,
		CategoryIDs:    categoryIDs,
		BrandName:      request.BrandName,
		AlcoholContent: request.AlcoholContent,
	}
}
