package server

import (
	"context"
	"fmt"
	"strings"

	"github.com/bufbuild/connect-go"
	"go.uber.org/zap"

	"droscher.com/DrinkCatalog/pkg/auth"
	"droscher.com/DrinkCatalog/pkg/model"
	"droscher.com/DrinkCatalog/pkg/notify"
	"droscher.com/DrinkCatalog/pkg/repository"
	"droscher.com/DrinkCatalog/pkg/server/grpc"
	api "droscher.com/DrinkCatalog/pkg/server/grpc/api/v1"
	"droscher.com/DrinkCatalog/pkg/server/grpc/api/v1/apiv1connect"
)

// FeaturedEngine chooses the drink of the day and records the votes that decide it.
type FeaturedEngine interface {
	GetFeaturedDrink(ctx context.Context) (*model.Drink, error)
	TopVotedDrinkID(ctx context.Context) (uint, error)
	RandomDrinkID(ctx context.Context) (uint, error)
	RecordVote(ctx context.Context, userID uint, drinkID uint) (*model.Vote, error)
}

type CatalogServer struct {
	apiv1connect.UnimplementedCatalogServiceHandler
	drinks    repository.DrinkRepository
	favorites repository.FavoriteRepository
	reviews   repository.ReviewRepository
	featured  FeaturedEngine
	notifier  notify.Notifier
	logger    *zap.Logger
}

func NewCatalogServer(
	drinks repository.DrinkRepository,
	favorites repository.FavoriteRepository,
	reviews repository.ReviewRepository,
	featured FeaturedEngine,
	notifier notify.Notifier,
	logger *zap.Logger,
) *CatalogServer {
	return &CatalogServer{
		drinks:    drinks,
		favorites: favorites,
		reviews:   reviews,
		featured:  featured,
		notifier:  notifier,
		logger:    logger,
	}
}

func (c *CatalogServer) Search(ctx context.Context, request *connect.Request[api.SearchRequest]) (*connect.Response[api.SearchResponse], error) {
	drinks, err := c.drinks.SearchDrinks(ctx, grpc.CriteriaFromRequest(request.Msg))
	if err != nil {
		return nil, toConnectError(c.logger, "search", err)
	}

	return connect.NewResponse(&api.SearchResponse{Drinks: grpc.DrinksFromModel(drinks)}), nil
}

func (c *CatalogServer) GetDrink(ctx context.Context, request *connect.Request[api.GetDrinkRequest]) (*connect.Response[api.GetDrinkResponse], error) {
	drinkID := uint(request.Msg.Id)

	drink, err := c.drinks.GetDrinkByID(ctx, drinkID)
	if err != nil {
		return nil, toConnectError(c.logger, "get drink", err)
	}

	average, err := c.reviews.AverageScore(ctx, drinkID)
	if err != nil {
		return nil, toConnectError(c.logger, "get drink", err)
	}

	response := api.GetDrinkResponse{Drink: grpc.DrinkFromModel(drink), AverageScore: average}

	if userID, err := auth.CurrentUserID(ctx); err == nil {
		response.IsFavorite, err = c.favorites.IsFavorite(ctx, userID, drinkID)
		if err != nil {
			return nil, toConnectError(c.logger, "get drink", err)
		}
	}

	return connect.NewResponse(&response), nil
}

func (c *CatalogServer) ListCategories(ctx context.Context, _ *connect.Request[api.ListCategoriesRequest]) (*connect.Response[api.ListCategoriesResponse], error) {
	categories, err := c.drinks.ListCategories(ctx)
	if err != nil {
		return nil, toConnectError(c.logger, "list categories", err)
	}

	return connect.NewResponse(&api.ListCategoriesResponse{Categories: grpc.CategoryListFromModel(categories)}), nil
}

func (c *CatalogServer) ListBrands(ctx context.Context, _ *connect.Request[api.ListBrandsRequest]) (*connect.Response[api.ListBrandsResponse], error) {
	brands, err := c.drinks.ListBrands(ctx)
	if err != nil {
		return nil, toConnectError(c.logger, "list brands", err)
	}

	return connect.NewResponse(&api.ListBrandsResponse{Brands: grpc.BrandsFromModel(brands)}), nil
}

func (c *CatalogServer) CreateDrink(ctx context.Context, request *connect.Request[api.CreateDrinkRequest]) (*connect.Response[api.CreateDrinkResponse], error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	drink, err := c.drinks.CreateDrink(ctx, grpc.NewDrinkInputFromRequest(request.Msg))
	if err != nil {
		return nil, toConnectError(c.logger, "create drink", err)
	}

	c.logger.Info("drink created", zap.Uint("drink_id", drink.ID), zap.String("name", drink.Name))

	return connect.NewResponse(&api.CreateDrinkResponse{Drink: grpc.DrinkFromModel(drink)}), nil
}

func (c *CatalogServer) UpdateDrink(ctx context.Context, request *connect.Request[api.UpdateDrinkRequest]) (*connect.Response[api.UpdateDrinkResponse], error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	if request.Msg.Drink == nil || request.Msg.Drink.Id == 0 {
		return nil, toConnectError(c.logger, "update drink", fmt.Errorf("%w: drink with id is required", ErrInvalidInput))
	}

	drink, err := c.drinks.UpdateDrink(ctx, grpc.DrinkToModel(request.Msg.Drink))
	if err != nil {
		return nil, toConnectError(c.logger, "update drink", err)
	}

	return connect.NewResponse(&api.UpdateDrinkResponse{Drink: grpc.DrinkFromModel(drink)}), nil
}

func (c *CatalogServer) DeleteDrink(ctx context.Context, request *connect.Request[api.DeleteDrinkRequest]) (*connect.Response[api.DeleteDrinkResponse], error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	if err := c.drinks.DeleteDrink(ctx, uint(request.Msg.Id)); err != nil {
		return nil, toConnectError(c.logger, "delete drink", err)
	}

	c.logger.Info("drink deleted", zap.Uint64("drink_id", request.Msg.Id))

	return connect.NewResponse(&api.DeleteDrinkResponse{}), nil
}

func (c *CatalogServer) AddFavorite(ctx context.Context, request *connect.Request[api.FavoriteRequest]) (*connect.Response[api.FavoriteResponse], error) {
	userID, err := auth.CurrentUserID(ctx)
	if err != nil {
		return nil, err
	}

	drinkID := uint(request.Msg.DrinkId)

	if _, err = c.drinks.GetDrinkByID(ctx, drinkID); err != nil {
		return nil, toConnectError(c.logger, "add favorite", err)
	}

	if err = c.favorites.AddFavorite(ctx, userID, drinkID); err != nil {
		return nil, toConnectError(c.logger, "add favorite", err)
	}

	return connect.NewResponse(&api.FavoriteResponse{IsFavorite: true}), nil
}

func (c *CatalogServer) RemoveFavorite(ctx context.Context, request *connect.Request[api.FavoriteRequest]) (*connect.Response[api.FavoriteResponse], error) {
	userID, err := auth.CurrentUserID(ctx)
	if err != nil {
		return nil, err
	}

	if err = c.favorites.RemoveFavorite(ctx, userID, uint(request.Msg.DrinkId)); err != nil {
		return nil, toConnectError(c.logger, "remove favorite", err)
	}

	return connect.NewResponse(&api.FavoriteResponse{IsFavorite: false}), nil
}

func (c *CatalogServer) IsFavorite(ctx context.Context, request *connect.Request[api.FavoriteRequest]) (*connect.Response[api.FavoriteResponse], error) {
	userID, err := auth.CurrentUserID(ctx)
	if err != nil {
		return nil, err
	}

	favorite, err := c.favorites.IsFavorite(ctx, userID, uint(request.Msg.DrinkId))
	if err != nil {
		return nil, toConnectError(c.logger, "is favorite", err)
	}

	return connect.NewResponse(&api.FavoriteResponse{IsFavorite: favorite}), nil
}

func (c *CatalogServer) ListFavorites(ctx context.Context, request *connect.Request[api.ListFavoritesRequest]) (*connect.Response[api.ListFavoritesResponse], error) {
	userID, err := auth.CurrentUserID(ctx)
	if err != nil {
		return nil, err
	}

	drinks, err := c.favorites.ListFavorites(ctx, userID, int(request.Msg.Limit))
	if err != nil {
		return nil, toConnectError(c.logger, "list favorites", err)
	}

	return connect.NewResponse(&api.ListFavoritesResponse{Drinks: grpc.DrinksFromModel(drinks)}), nil
}

func (c *CatalogServer) RecordVote(ctx context.Context, request *connect.Request[api.RecordVoteRequest]) (*connect.Response[api.RecordVoteResponse], error) {
	userID, err := auth.CurrentUserID(ctx)
	if err != nil {
		return nil, err
	}

	vote, err := c.featured.RecordVote(ctx, userID, uint(request.Msg.DrinkId))
	if err != nil {
		return nil, toConnectError(c.logger, "record vote", err)
	}

	return connect.NewResponse(&api.RecordVoteResponse{DrinkId: uint64(vote.DrinkID), Day: vote.Day}), nil
}

func (c *CatalogServer) GetFeaturedDrink(ctx context.Context, _ *connect.Request[api.GetFeaturedDrinkRequest]) (*connect.Response[api.GetFeaturedDrinkResponse], error) {
	drink, err := c.featured.GetFeaturedDrink(ctx)
	if err != nil {
		return nil, toConnectError(c.logger, "get featured drink", err)
	}

	return connect.NewResponse(&api.GetFeaturedDrinkResponse{Drink: grpc.DrinkFromModel(drink)}), nil
}

func (c *CatalogServer) TopVotedDrinkId(ctx context.Context, _ *connect.Request[api.DrinkIdRequest]) (*connect.Response[api.DrinkIdResponse], error) { //nolint:revive,stylecheck // matches the procedure name
	drinkID, err := c.featured.TopVotedDrinkID(ctx)
	if err != nil {
		return nil, toConnectError(c.logger, "top voted drink", err)
	}

	return connect.NewResponse(&api.DrinkIdResponse{DrinkId: uint64(drinkID)}), nil
}

func (c *CatalogServer) RandomDrinkId(ctx context.Context, _ *connect.Request[api.DrinkIdRequest]) (*connect.Response[api.DrinkIdResponse], error) { //nolint:revive,stylecheck // matches the procedure name
	drinkID, err := c.featured.RandomDrinkID(ctx)
	if err != nil {
		return nil, toConnectError(c.logger, "random drink", err)
	}

	return connect.NewResponse(&api.DrinkIdResponse{DrinkId: uint64(drinkID)}), nil
}

func (c *CatalogServer) AddReview(ctx context.Context, request *connect.Request[api.AddReviewRequest]) (*connect.Response[api.AddReviewResponse], error) {
	userID, err := auth.CurrentUserID(ctx)
	if err != nil {
		return nil, err
	}

	drinkID := uint(request.Msg.DrinkId)

	if _, err = c.drinks.GetDrinkByID(ctx, drinkID); err != nil {
		return nil, toConnectError(c.logger, "add review", err)
	}

	review, err := c.reviews.AddReview(ctx, model.Review{
		UserID:  userID,
		DrinkID: drinkID,
		Score:   int(request.Msg.Score),
		Comment: strings.TrimSpace(request.Msg.Comment),
	})
	if err != nil {
		return nil, toConnectError(c.logger, "add review", err)
	}

	return connect.NewResponse(&api.AddReviewResponse{Review: grpc.ReviewFromModel(review)}), nil
}

func (c *CatalogServer) GetReviews(ctx context.Context, request *connect.Request[api.GetReviewsRequest]) (*connect.Response[api.GetReviewsResponse], error) {
	drinkID := uint(request.Msg.DrinkId)

	reviews, err := c.reviews.ReviewsFor(ctx, drinkID)
	if err != nil {
		return nil, toConnectError(c.logger, "get reviews", err)
	}

	average, err := c.reviews.AverageScore(ctx, drinkID)
	if err != nil {
		return nil, toConnectError(c.logger, "get reviews", err)
	}

	return connect.NewResponse(&api.GetReviewsResponse{Reviews: grpc.ReviewsFromModel(reviews), AverageScore: average}), nil
}

// SuggestDrink forwards a user's proposal for a new drink to the administrators.
func (c *CatalogServer) SuggestDrink(ctx context.Context, request *connect.Request[api.SuggestDrinkRequest]) (*connect.Response[api.SuggestDrinkResponse], error) {
	user, err := auth.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(request.Msg.Name)
	brandName := strings.TrimSpace(request.Msg.BrandName)

	if name == "" || brandName == "" {
		return nil, toConnectError(c.logger, "suggest drink", fmt.Errorf("%w: name and brand are required", ErrInvalidInput))
	}

	subject := fmt.Sprintf("Drink suggestion: %s by %s", name, brandName)
	if err = c.notifier.NotifyAdmin(ctx, user, subject, request.Msg.Details); err != nil {
		return nil, toConnectError(c.logger, "suggest drink", err)
	}

	return connect.NewResponse(&api.SuggestDrinkResponse{}), nil
}
