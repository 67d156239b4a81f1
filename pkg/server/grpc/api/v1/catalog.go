// Package apiv1 holds the messages of the catalog API. They travel as JSON.
package apiv1

import "time"

type Brand struct {
	Id   uint64 `json:"id,omitempty"`
	Name string `json:"name"`
}

type Category struct {
	Id   uint64 `json:"id"`
	Name string `json:"name,omitempty"`
}

type Drink struct {
	Id             uint64      `json:"id,omitempty"`
	Name           string      `json:"name"`
	ImageUrl       string      `json:"imageUrl,omitempty"`
	AlcoholContent float64     `json:"alcoholContent"`
	Brand          *Brand      `json:"brand,omitempty"`
	Categories     []*Category `json:"categories"`
}

type Review struct {
	Id        uint64    `json:"id,omitempty"`
	DrinkId   uint64    `json:"drinkId"`
	Score     int32     `json:"score"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type User struct {
	Id       string `json:"id"`
	UserName string `json:"userName"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"isAdmin"`
}

type SortField struct {
	Field      string `json:"field"`
	Descending bool   `json:"descending,omitempty"`
}

type SearchRequest struct {
	Search     string       `json:"search,omitempty"`
	Brands     []string     `json:"brands,omitempty"`
	Categories []string     `json:"categories,omitempty"`
	MinAlcohol *float64     `json:"minAlcohol,omitempty"`
	MaxAlcohol *float64     `json:"maxAlcohol,omitempty"`
	Sort       []*SortField `json:"sort,omitempty"`
	Limit      int32        `json:"limit,omitempty"`
}

type SearchResponse struct {
	Drinks []*Drink `json:"drinks"`
}

type GetDrinkRequest struct {
	Id uint64 `json:"id"`
}

type GetDrinkResponse struct {
	Drink        *Drink  `json:"drink"`
	AverageScore float64 `json:"averageScore"`
	IsFavorite   bool    `json:"isFavorite"`
}

type ListCategoriesRequest struct{}

type ListCategoriesResponse struct {
	Categories []*Category `json:"categories"`
}

type ListBrandsRequest struct{}

type ListBrandsResponse struct {
	Brands []*Brand `json:"brands"`
}

type CreateDrinkRequest struct {
	Name           string   `json:"name"`
	ImageUrl       string   `json:"imageUrl,omitempty"`
	CategoryIds    []uint64 `json:"categoryIds,omitempty"`
	BrandName      string   `json:"brandName"`
	AlcoholContent float64  `json:"alcoholContent"`
}

type CreateDrinkResponse struct {
	Drink *Drink `json:"drink"`
}

type UpdateDrinkRequest struct {
	Drink *Drink `json:"drink"`
}

type UpdateDrinkResponse struct {
	Drink *Drink `json:"drink"`
}

type DeleteDrinkRequest struct {
	Id uint64 `json:"id"`
}

type DeleteDrinkResponse struct{}

type FavoriteRequest struct {
	DrinkId uint64 `json:"drinkId"`
}

type FavoriteResponse struct {
	IsFavorite bool `json:"isFavorite"`
}

type ListFavoritesRequest struct {
	Limit int32 `json:"limit,omitempty"`
}

type ListFavoritesResponse struct {
	Drinks []*Drink `json:"drinks"`
}

type RecordVoteRequest struct {
	DrinkId uint64 `json:"drinkId"`
}

type RecordVoteResponse struct {
	DrinkId uint64    `json:"drinkId"`
	Day     time.Time `json:"day"`
}

type GetFeaturedDrinkRequest struct{}

type GetFeaturedDrinkResponse struct {
	Drink *Drink `json:"drink"`
}

type DrinkIdRequest struct{}

type DrinkIdResponse struct {
	DrinkId uint64 `json:"drinkId"`
}

type AddReviewRequest struct {
	DrinkId uint64 `json:"drinkId"`
	Score   int32  `json:"score"`
	Comment string `json:"comment,omitempty"`
}

type AddReviewResponse struct {
	Review *Review `json:"review"`
}

type GetReviewsRequest struct {
	DrinkId uint64 `json:"drinkId"`
}

type GetReviewsResponse struct {
	Reviews      []*Review `json:"reviews"`
	AverageScore float64   `json:"averageScore"`
}

type SuggestDrinkRequest struct {
	Name      string `json:"name"`
	BrandName string `json:"brandName"`
	Details   string `json:"details,omitempty"`
}

type SuggestDrinkResponse struct{}

type AddUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type AddUserResponse struct {
	User *User `json:"user"`
}

type GetUserByEmailRequest struct {
	Email string `json:"email"`
}

type GetUserByEmailResponse struct {
	User *User `json:"user"`
}
