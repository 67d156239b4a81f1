package server_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bufbuild/connect-go"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.openly.dev/pointy"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"droscher.com/DrinkCatalog/mocks"
	"droscher.com/DrinkCatalog/pkg/auth"
	"droscher.com/DrinkCatalog/pkg/featured"
	"droscher.com/DrinkCatalog/pkg/model"
	"droscher.com/DrinkCatalog/pkg/repository"
	"droscher.com/DrinkCatalog/pkg/server"
	apiv1 "droscher.com/DrinkCatalog/pkg/server/grpc/api/v1"
	"droscher.com/DrinkCatalog/pkg/server/grpc/api/v1/apiv1connect"
)

type CatalogTestSuite struct {
	suite.Suite
	drinks       *mocks.DrinkRepository
	favorites    *mocks.FavoriteRepository
	reviews      *mocks.ReviewRepository
	featured     *mocks.FeaturedEngine
	notifier     *mocks.Notifier
	service      *server.CatalogServer
	observedLogs *observer.ObservedLogs
	admin        *model.User
	member       *model.User
}

func TestCatalogTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogTestSuite))
}

func (suite *CatalogTestSuite) SetupTest() {
	suite.drinks = mocks.NewDrinkRepository(suite.T())
	suite.favorites = mocks.NewFavoriteRepository(suite.T())
	suite.reviews = mocks.NewReviewRepository(suite.T())
	suite.featured = mocks.NewFeaturedEngine(suite.T())
	suite.notifier = mocks.NewNotifier(suite.T())
	observedZapCore, observedLogs := observer.New(zap.InfoLevel)
	suite.observedLogs = observedLogs
	suite.service = server.NewCatalogServer(suite.drinks, suite.favorites, suite.reviews, suite.featured, suite.notifier, zap.New(observedZapCore))

	suite.admin = &model.User{Email: "admin@example.com", IsAdmin: true}
	suite.admin.ID = 1
	suite.member = &model.User{Email: "member@example.com"}
	suite.member.ID = 2
}

func (suite *CatalogTestSuite) TestSearch_MapsCriteria() {
	ctx := context.Background()
	criteria := repository.DrinkCriteria{
		Search:     "hazy",
		MaxAlcohol: pointy.Float64(7),
		Sort:       []repository.SortField{{Field: "Alcohol", Descending: true}},
	}
	suite.drinks.EXPECT().SearchDrinks(ctx, criteria).Return([]*model.Drink{
		{ID: 1, Name: "Hazy", Brand: model.Brand{ID: 1, Name: "Gargoyle"}, Categories: []model.Category{}},
	}, nil)

	response, err := suite.service.Search(ctx, connect.NewRequest(&apiv1.SearchRequest{
		Search:     "hazy",
		MaxAlcohol: pointy.Float64(7),
		Sort:       []*apiv1.SortField{{Field: "Alcohol", Descending: true}},
	}))

	suite.Require().NoError(err)
	suite.Require().Len(response.Msg.Drinks, 1)
	suite.Equal("Gargoyle", response.Msg.Drinks[0].Brand.Name)
}

func (suite *CatalogTestSuite) TestSearch_FailureIsInternal() {
	suite.drinks.EXPECT().SearchDrinks(mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))

	response, err := suite.service.Search(context.Background(), connect.NewRequest(&apiv1.SearchRequest{}))

	suite.Nil(response)
	suite.Equal(connect.CodeInternal, connect.CodeOf(err))
	suite.Equal(1, suite.observedLogs.FilterMessage("request failed").Len())
}

func (suite *CatalogTestSuite) TestGetDrink_NotFound() {
	suite.drinks.EXPECT().GetDrinkByID(mock.Anything, uint(9)).Return(nil, repository.ErrDrinkNotFound)

	_, err := suite.service.GetDrink(context.Background(), connect.NewRequest(&apiv1.GetDrinkRequest{Id: 9}))

	suite.Equal(connect.CodeNotFound, connect.CodeOf(err))
}

func (suite *CatalogTestSuite) TestGetDrink_IncludesScoreAndFavorite() {
	ctx := auth.WithUser(context.Background(), suite.member)
	suite.drinks.EXPECT().GetDrinkByID(ctx, uint(3)).Return(&model.Drink{ID: 3, Name: "Stout"}, nil)
	suite.reviews.EXPECT().AverageScore(ctx, uint(3)).Return(4.5, nil)
	suite.favorites.EXPECT().IsFavorite(ctx, uint(2), uint(3)).Return(true, nil)

	response, err := suite.service.GetDrink(ctx, connect.NewRequest(&apiv1.GetDrinkRequest{Id: 3}))

	suite.Require().NoError(err)
	suite.InDelta(4.5, response.Msg.AverageScore, 0.001)
	suite.True(response.Msg.IsFavorite)
}

func (suite *CatalogTestSuite) TestCreateDrink_RequiresAdmin() {
	request := connect.NewRequest(&apiv1.CreateDrinkRequest{Name: "Lager", BrandName: "Gargoyle"})

	_, err := suite.service.CreateDrink(context.Background(), request)
	suite.Equal(connect.CodeUnauthenticated, connect.CodeOf(err))

	_, err = suite.service.CreateDrink(auth.WithUser(context.Background(), suite.member), request)
	suite.Equal(connect.CodePermissionDenied, connect.CodeOf(err))
}

func (suite *CatalogTestSuite) TestCreateDrink_ValidationIsInvalidArgument() {
	ctx := auth.WithUser(context.Background(), suite.admin)
	suite.drinks.EXPECT().CreateDrink(ctx, mock.Anything).Return(nil, model.ErrValidation)

	_, err := suite.service.CreateDrink(ctx, connect.NewRequest(&apiv1.CreateDrinkRequest{Name: "", BrandName: "Gargoyle"}))

	suite.Equal(connect.CodeInvalidArgument, connect.CodeOf(err))
}

func (suite *CatalogTestSuite) TestCreateDrink_Created() {
	ctx := auth.WithUser(context.Background(), suite.admin)
	input := repository.NewDrinkInput{Name: "Lager", BrandName: "Gargoyle", CategoryIDs: []uint{2}, AlcoholContent: 4.5}
	suite.drinks.EXPECT().CreateDrink(ctx, input).Return(&model.Drink{
		ID: 5, Name: "Lager", AlcoholContent: 4.5, BrandID: 1,
		Brand:      model.Brand{ID: 1, Name: "Gargoyle"},
		Categories: []model.Category{{ID: 2, Name: "Lager"}},
	}, nil)

	response, err := suite.service.CreateDrink(ctx, connect.NewRequest(&apiv1.CreateDrinkRequest{
		Name: "Lager", BrandName: "Gargoyle", CategoryIds: []uint64{2}, AlcoholContent: 4.5,
	}))

	suite.Require().NoError(err)
	suite.Equal(uint64(5), response.Msg.Drink.Id)
	suite.Equal(1, suite.observedLogs.FilterMessage("drink created").Len())
}

func (suite *CatalogTestSuite) TestUpdateDrink_UnknownBrandIsFailedPrecondition() {
	ctx := auth.WithUser(context.Background(), suite.admin)
	suite.drinks.EXPECT().UpdateDrink(ctx, mock.AnythingOfType("model.Drink")).Return(nil, repository.ErrBrandNotFound)

	_, err := suite.service.UpdateDrink(ctx, connect.NewRequest(&apiv1.UpdateDrinkRequest{
		Drink: &apiv1.Drink{Id: 3, Name: "Stout", Brand: &apiv1.Brand{Name: "Nobody"}},
	}))

	suite.Equal(connect.CodeFailedPrecondition, connect.CodeOf(err))
}

func (suite *CatalogTestSuite) TestUpdateDrink_RequiresDrink() {
	ctx := auth.WithUser(context.Background(), suite.admin)

	_, err := suite.service.UpdateDrink(ctx, connect.NewRequest(&apiv1.UpdateDrinkRequest{}))

	suite.Equal(connect.CodeInvalidArgument, connect.CodeOf(err))
}

func (suite *CatalogTestSuite) TestDeleteDrink() {
	ctx := auth.WithUser(context.Background(), suite.admin)
	suite.drinks.EXPECT().DeleteDrink(ctx, uint(3)).Return(nil)

	_, err := suite.service.DeleteDrink(ctx, connect.NewRequest(&apiv1.DeleteDrinkRequest{Id: 3}))

	suite.Require().NoError(err)
}

func (suite *CatalogTestSuite) TestFavorites_RequireUser() {
	_, err := suite.service.AddFavorite(context.Background(), connect.NewRequest(&apiv1.FavoriteRequest{DrinkId: 3}))

	suite.Equal(connect.CodeUnauthenticated, connect.CodeOf(err))
}

func (suite *CatalogTestSuite) TestAddFavorite() {
	ctx := auth.WithUser(context.Background(), suite.member)
	suite.drinks.EXPECT().GetDrinkByID(ctx, uint(3)).Return(&model.Drink{ID: 3}, nil)
	suite.favorites.EXPECT().AddFavorite(ctx, uint(2), uint(3)).Return(nil)

	response, err := suite.service.AddFavorite(ctx, connect.NewRequest(&apiv1.FavoriteRequest{DrinkId: 3}))

	suite.Require().NoError(err)
	suite.True(response.Msg.IsFavorite)
}

func (suite *CatalogTestSuite) TestRemoveAndCheckFavorite() {
	ctx := auth.WithUser(context.Background(), suite.member)
	suite.favorites.EXPECT().RemoveFavorite(ctx, uint(2), uint(3)).Return(nil)
	suite.favorites.EXPECT().IsFavorite(ctx, uint(2), uint(3)).Return(false, nil)

	_, err := suite.service.RemoveFavorite(ctx, connect.NewRequest(&apiv1.FavoriteRequest{DrinkId: 3}))
	suite.Require().NoError(err)

	response, err := suite.service.IsFavorite(ctx, connect.NewRequest(&apiv1.FavoriteRequest{DrinkId: 3}))
	suite.Require().NoError(err)
	suite.False(response.Msg.IsFavorite)
}

func (suite *CatalogTestSuite) TestListFavorites_PassesLimit() {
	ctx := auth.WithUser(context.Background(), suite.member)
	suite.favorites.EXPECT().ListFavorites(ctx, uint(2), 5).Return([]*model.Drink{{ID: 3, Name: "Stout"}}, nil)

	response, err := suite.service.ListFavorites(ctx, connect.NewRequest(&apiv1.ListFavoritesRequest{Limit: 5}))

	suite.Require().NoError(err)
	suite.Len(response.Msg.Drinks, 1)
}

func (suite *CatalogTestSuite) TestRecordVote() {
	ctx := auth.WithUser(context.Background(), suite.member)
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	suite.featured.EXPECT().RecordVote(ctx, uint(2), uint(3)).Return(&model.Vote{UserID: 2, DrinkID: 3, Day: day}, nil)

	response, err := suite.service.RecordVote(ctx, connect.NewRequest(&apiv1.RecordVoteRequest{DrinkId: 3}))

	suite.Require().NoError(err)
	suite.Equal(uint64(3), response.Msg.DrinkId)
	suite.Equal(day, response.Msg.Day)
}

func (suite *CatalogTestSuite) TestGetFeaturedDrink_EmptyCatalog() {
	suite.featured.EXPECT().GetFeaturedDrink(mock.Anything).Return(nil, featured.ErrEmptyCatalog)

	_, err := suite.service.GetFeaturedDrink(context.Background(), connect.NewRequest(&apiv1.GetFeaturedDrinkRequest{}))

	suite.Equal(connect.CodeFailedPrecondition, connect.CodeOf(err))
}

func (suite *CatalogTestSuite) TestTopVotedAndRandomDrinkID() {
	suite.featured.EXPECT().TopVotedDrinkID(mock.Anything).Return(uint(9), nil)
	suite.featured.EXPECT().RandomDrinkID(mock.Anything).Return(uint(4), nil)

	top, err := suite.service.TopVotedDrinkId(context.Background(), connect.NewRequest(&apiv1.DrinkIdRequest{}))
	suite.Require().NoError(err)
	suite.Equal(uint64(9), top.Msg.DrinkId)

	random, err := suite.service.RandomDrinkId(context.Background(), connect.NewRequest(&apiv1.DrinkIdRequest{}))
	suite.Require().NoError(err)
	suite.Equal(uint64(4), random.Msg.DrinkId)
}

func (suite *CatalogTestSuite) TestAddReview() {
	ctx := auth.WithUser(context.Background(), suite.member)
	suite.drinks.EXPECT().GetDrinkByID(ctx, uint(3)).Return(&model.Drink{ID: 3}, nil)
	suite.reviews.EXPECT().AddReview(ctx, model.Review{UserID: 2, DrinkID: 3, Score: 4, Comment: "roasty"}).
		Return(&model.Review{ID: 1, UserID: 2, DrinkID: 3, Score: 4, Comment: "roasty"}, nil)

	response, err := suite.service.AddReview(ctx, connect.NewRequest(&apiv1.AddReviewRequest{DrinkId: 3, Score: 4, Comment: " roasty "}))

	suite.Require().NoError(err)
	suite.Equal(int32(4), response.Msg.Review.Score)
}

func (suite *CatalogTestSuite) TestGetReviews() {
	suite.reviews.EXPECT().ReviewsFor(mock.Anything, uint(3)).Return([]*model.Review{{ID: 1, DrinkID: 3, Score: 5}}, nil)
	suite.reviews.EXPECT().AverageScore(mock.Anything, uint(3)).Return(5.0, nil)

	response, err := suite.service.GetReviews(context.Background(), connect.NewRequest(&apiv1.GetReviewsRequest{DrinkId: 3}))

	suite.Require().NoError(err)
	suite.Len(response.Msg.Reviews, 1)
	suite.InDelta(5.0, response.Msg.AverageScore, 0.001)
}

func (suite *CatalogTestSuite) TestSuggestDrink_NotifiesAdmin() {
	ctx := auth.WithUser(context.Background(), suite.member)
	suite.notifier.EXPECT().NotifyAdmin(ctx, suite.member, "Drink suggestion: Precious Bet by Gargoyle", "a sour").Return(nil)

	_, err := suite.service.SuggestDrink(ctx, connect.NewRequest(&apiv1.SuggestDrinkRequest{Name: " Precious Bet ", BrandName: "Gargoyle", Details: "a sour"}))

	suite.Require().NoError(err)
}

func (suite *CatalogTestSuite) TestSuggestDrink_RequiresNameAndBrand() {
	ctx := auth.WithUser(context.Background(), suite.member)

	_, err := suite.service.SuggestDrink(ctx, connect.NewRequest(&apiv1.SuggestDrinkRequest{Name: "Precious Bet"}))

	suite.Equal(connect.CodeInvalidArgument, connect.CodeOf(err))
}

func (suite *CatalogTestSuite) TestServedOverHTTP() {
	suite.drinks.EXPECT().ListBrands(mock.Anything).Return([]*model.Brand{{ID: 1, Name: "Gargoyle"}}, nil)

	mux := http.NewServeMux()
	mux.Handle(apiv1connect.NewCatalogServiceHandler(suite.service))
	httpServer := httptest.NewServer(mux)
	defer httpServer.Close()

	client := apiv1connect.NewCatalogServiceClient(httpServer.Client(), httpServer.URL)

	response, err := client.ListBrands(context.Background(), connect.NewRequest(&apiv1.ListBrandsRequest{}))

	suite.Require().NoError(err)
	suite.Equal([]*apiv1.Brand{{Id: 1, Name: "Gargoyle"}}, response.Msg.Brands)

	_, err = client.DeleteDrink(context.Background(), connect.NewRequest(&apiv1.DeleteDrinkRequest{Id: 1}))
	suite.Equal(connect.CodeUnauthenticated, connect.CodeOf(err))
}
