package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.openly.dev/pointy"

	"droscher.com/DrinkCatalog/pkg/model"
	"droscher.com/DrinkCatalog/pkg/repository"
)

type CatalogTestSuite struct {
	SQLiteSuite
	ctx        context.Context
	categories map[string]uint
}

func TestCatalogTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogTestSuite))
}

func (suite *CatalogTestSuite) SetupTest() {
	suite.SQLiteSuite.SetupTest()
	suite.ctx = context.Background()
	suite.categories = map[string]uint{}

	for _, name := range []string{"Ale", "Lager", "Stout", "Sour"} {
		category := model.Category{Name: name}
		suite.Require().NoError(suite.repository.DB.Create(&category).Error)
		suite.categories[name] = category.ID
	}
}

func (suite *CatalogTestSuite) createDrink(name, brand string, abv float64, categories ...string) *model.Drink {
	categoryIDs := make([]uint, 0, len(categories))
	for _, category := range categories {
		categoryIDs = append(categoryIDs, suite.categories[category])
	}

	drink, err := suite.repository.CreateDrink(suite.ctx, repository.NewDrinkInput{
		Name:           name,
		BrandName:      brand,
		CategoryIDs:    categoryIDs,
		AlcoholContent: abv,
	})
	suite.Require().NoError(err)

	return drink
}

func names(drinks []*model.Drink) []string {
	result := make([]string, 0, len(drinks))
	for _, drink := range drinks {
		result = append(result, drink.Name)
	}

	return result
}

func (suite *CatalogTestSuite) TestCreateAndGetRoundTrip() {
	created := suite.createDrink("Tripel", "Trappist", 9.5, "Sour", "Ale")

	drink, err := suite.repository.GetDrinkByID(suite.ctx, created.ID)

	suite.Require().NoError(err)
	suite.Equal("Tripel", drink.Name)
	suite.Equal("Trappist", drink.Brand.Name)
	suite.InDelta(9.5, drink.AlcoholContent, 0.001)
	suite.Equal([]uint{suite.categories["Ale"], suite.categories["Sour"]}, drink.CategoryIDs())
	suite.Equal("Ale", drink.Categories[0].Name)
}

func (suite *CatalogTestSuite) TestSearchEmptyCatalog() {
	drinks, err := suite.repository.SearchDrinks(suite.ctx, repository.DrinkCriteria{Search: "anything"})

	suite.Require().NoError(err)
	suite.NotNil(drinks)
	suite.Empty(drinks)
}

func (suite *CatalogTestSuite) TestBrandIsCreatedOnce() {
	first := suite.createDrink("Lager", "Gargoyle", 4.5)
	second := suite.createDrink("Porter", "Gargoyle", 5.5)

	brands, err := suite.repository.ListBrands(suite.ctx)

	suite.Require().NoError(err)
	suite.Len(brands, 1)
	suite.Equal(first.BrandID, second.BrandID)
}

func (suite *CatalogTestSuite) TestSearchByMinimumAlcohol() {
	suite.createDrink("Light", "Gargoyle", 3.5)
	suite.createDrink("Strong", "Gargoyle", 8)
	suite.createDrink("Edge", "Gargoyle", 5)

	drinks, err := suite.repository.SearchDrinks(suite.ctx, repository.DrinkCriteria{MinAlcohol: pointy.Float64(5)})

	suite.Require().NoError(err)
	suite.Equal([]string{"Strong", "Edge"}, names(drinks))
}

func (suite *CatalogTestSuite) TestSortByDrinkName() {
	suite.createDrink("Bock", "Gargoyle", 6.5)
	suite.createDrink("Ale", "Gargoyle", 4.5)

	drinks, err := suite.repository.SearchDrinks(suite.ctx, repository.DrinkCriteria{
		Sort: []repository.SortField{{Field: "DrinkName"}},
	})

	suite.Require().NoError(err)
	suite.Equal([]string{"Ale", "Bock"}, names(drinks))
}

func (suite *CatalogTestSuite) TestUnknownSortFieldOrdersByAverageReview() {
	low := suite.createDrink("Low", "Gargoyle", 5)
	high := suite.createDrink("High", "Gargoyle", 5)
	suite.createDrink("Unrated", "Gargoyle", 5)

	for _, review := range []model.Review{
		{UserID: 1, DrinkID: low.ID, Score: 2},
		{UserID: 2, DrinkID: high.ID, Score: 5},
		{UserID: 3, DrinkID: high.ID, Score: 4},
	} {
		_, err := suite.repository.AddReview(suite.ctx, review)
		suite.Require().NoError(err)
	}

	drinks, err := suite.repository.SearchDrinks(suite.ctx, repository.DrinkCriteria{
		Sort: []repository.SortField{{Field: "popularity", Descending: true}},
	})

	suite.Require().NoError(err)
	suite.Equal([]string{"High", "Low", "Unrated"}, names(drinks))

	average, err := suite.repository.AverageScore(suite.ctx, high.ID)
	suite.Require().NoError(err)
	suite.InDelta(4.5, average, 0.001)
}

func (suite *CatalogTestSuite) TestCategoryFilterKeepsEveryCategory() {
	suite.createDrink("Sour Ale", "Gargoyle", 5, "Ale", "Sour")
	suite.createDrink("Pils", "Gargoyle", 5, "Lager")

	drinks, err := suite.repository.SearchDrinks(suite.ctx, repository.DrinkCriteria{Categories: []string{" sour "}})

	suite.Require().NoError(err)
	suite.Require().Len(drinks, 1)
	suite.Len(drinks[0].Categories, 2)
}

func (suite *CatalogTestSuite) TestBrandFilterIgnoresCase() {
	suite.createDrink("One", "Gargoyle", 5)
	suite.createDrink("Two", "Other", 5)

	drinks, err := suite.repository.SearchDrinks(suite.ctx, repository.DrinkCriteria{Brands: []string{"GARGOYLE"}})

	suite.Require().NoError(err)
	suite.Equal([]string{"One"}, names(drinks))
}

func (suite *CatalogTestSuite) TestEverySearchTokenMustMatch() {
	suite.createDrink("Hazy Juice", "Gargoyle", 6, "Ale")
	suite.createDrink("Hazy Dark", "Gargoyle", 6, "Stout")
	suite.createDrink("Clear", "Other", 6, "Ale")

	drinks, err := suite.repository.SearchDrinks(suite.ctx, repository.DrinkCriteria{Search: "hazy ale"})

	suite.Require().NoError(err)
	suite.Equal([]string{"Hazy Juice"}, names(drinks))
}

func (suite *CatalogTestSuite) TestUpdateReconcilesCategories() {
	drink := suite.createDrink("Mixed", "Gargoyle", 5, "Ale", "Lager", "Stout")
	drink.Categories = []model.Category{{ID: suite.categories["Lager"]}, {ID: suite.categories["Stout"]}, {ID: suite.categories["Sour"]}}
	drink.Name = "Mixed Up"

	updated, err := suite.repository.UpdateDrink(suite.ctx, *drink)

	suite.Require().NoError(err)
	suite.Equal("Mixed Up", updated.Name)
	suite.Equal([]uint{suite.categories["Lager"], suite.categories["Stout"], suite.categories["Sour"]}, updated.CategoryIDs())
}

func (suite *CatalogTestSuite) TestUpdateWithUnknownBrandChangesNothing() {
	drink := suite.createDrink("Steady", "Gargoyle", 5, "Ale")
	drink.Name = "Changed"
	drink.Brand = model.Brand{Name: "Nobody"}

	_, err := suite.repository.UpdateDrink(suite.ctx, *drink)
	suite.Require().ErrorIs(err, repository.ErrBrandNotFound)

	stored, err := suite.repository.GetDrinkByID(suite.ctx, drink.ID)
	suite.Require().NoError(err)
	suite.Equal("Steady", stored.Name)
}

func (suite *CatalogTestSuite) TestCreateWithUnknownCategoryRollsBack() {
	_, err := suite.repository.CreateDrink(suite.ctx, repository.NewDrinkInput{
		Name:           "Orphan",
		BrandName:      "Gargoyle",
		CategoryIDs:    []uint{9999},
		AlcoholContent: 5,
	})
	suite.Require().Error(err)

	drinks, err := suite.repository.SearchDrinks(suite.ctx, repository.DrinkCriteria{})
	suite.Require().NoError(err)
	suite.Empty(drinks)

	brands, err := suite.repository.ListBrands(suite.ctx)
	suite.Require().NoError(err)
	suite.Empty(brands)
}

func (suite *CatalogTestSuite) TestDeleteRemovesDependents() {
	drink := suite.createDrink("Doomed", "Gargoyle", 5, "Ale")
	now := time.Now()

	suite.Require().NoError(suite.repository.AddFavorite(suite.ctx, 1, drink.ID))
	_, err := suite.repository.RecordVote(suite.ctx, 1, drink.ID, now)
	suite.Require().NoError(err)
	_, err = suite.repository.SaveFeaturedDrink(suite.ctx, drink.ID, now)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.DeleteDrink(suite.ctx, drink.ID))

	_, err = suite.repository.GetDrinkByID(suite.ctx, drink.ID)
	suite.ErrorIs(err, repository.ErrDrinkNotFound)

	_, err = suite.repository.GetFeaturedDrink(suite.ctx)
	suite.ErrorIs(err, repository.ErrNoFeaturedDrink)

	favorite, err := suite.repository.IsFavorite(suite.ctx, 1, drink.ID)
	suite.Require().NoError(err)
	suite.False(favorite)

	suite.ErrorIs(suite.repository.DeleteDrink(suite.ctx, drink.ID), repository.ErrDrinkNotFound)
}

func (suite *CatalogTestSuite) TestVotingTwiceOnOneDayKeepsTheLastVote() {
	first := suite.createDrink("First", "Gargoyle", 5)
	second := suite.createDrink("Second", "Gargoyle", 5)
	now := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

	_, err := suite.repository.RecordVote(suite.ctx, 1, first.ID, now)
	suite.Require().NoError(err)
	_, err = suite.repository.RecordVote(suite.ctx, 1, second.ID, now.Add(time.Hour))
	suite.Require().NoError(err)

	var count int64
	suite.Require().NoError(suite.repository.DB.Model(&model.Vote{}).Count(&count).Error)
	suite.Equal(int64(1), count)

	tally, err := suite.repository.TopVotedDrink(suite.ctx, now)
	suite.Require().NoError(err)
	suite.Equal(second.ID, tally.DrinkID)
	suite.Equal(int64(1), tally.Votes)
}

func (suite *CatalogTestSuite) TestTopVotedDrink() {
	seven := suite.createDrink("Seven", "Gargoyle", 5)
	nine := suite.createDrink("Nine", "Gargoyle", 5)
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	for userID := uint(1); userID <= 3; userID++ {
		_, err := suite.repository.RecordVote(suite.ctx, userID, nine.ID, day.Add(time.Duration(userID)*time.Hour))
		suite.Require().NoError(err)
	}

	for userID := uint(4); userID <= 5; userID++ {
		_, err := suite.repository.RecordVote(suite.ctx, userID, seven.ID, day.Add(time.Duration(userID)*time.Hour))
		suite.Require().NoError(err)
	}

	_, err := suite.repository.RecordVote(suite.ctx, 6, seven.ID, day.AddDate(0, 0, -1))
	suite.Require().NoError(err)

	tally, err := suite.repository.TopVotedDrink(suite.ctx, day.Add(20*time.Hour))

	suite.Require().NoError(err)
	suite.Equal(nine.ID, tally.DrinkID)
	suite.Equal(int64(3), tally.Votes)

	_, err = suite.repository.TopVotedDrink(suite.ctx, day.AddDate(0, 0, 1))
	suite.ErrorIs(err, repository.ErrNoVotes)
}

func (suite *CatalogTestSuite) TestTopVotedDrinkTieGoesToLowestID() {
	first := suite.createDrink("First", "Gargoyle", 5)
	second := suite.createDrink("Second", "Gargoyle", 5)
	now := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

	_, err := suite.repository.RecordVote(suite.ctx, 1, second.ID, now)
	suite.Require().NoError(err)
	_, err = suite.repository.RecordVote(suite.ctx, 2, first.ID, now)
	suite.Require().NoError(err)

	tally, err := suite.repository.TopVotedDrink(suite.ctx, now)

	suite.Require().NoError(err)
	suite.Equal(first.ID, tally.DrinkID)
}

func (suite *CatalogTestSuite) TestFeaturedDrinkIsReplacedInPlace() {
	first := suite.createDrink("First", "Gargoyle", 5)
	second := suite.createDrink("Second", "Gargoyle", 5)
	now := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

	_, err := suite.repository.SaveFeaturedDrink(suite.ctx, first.ID, now)
	suite.Require().NoError(err)
	_, err = suite.repository.SaveFeaturedDrink(suite.ctx, second.ID, now.AddDate(0, 0, 1))
	suite.Require().NoError(err)

	featured, err := suite.repository.GetFeaturedDrink(suite.ctx)

	suite.Require().NoError(err)
	suite.Equal(second.ID, featured.DrinkID)
	suite.True(model.SameUTCDay(now.AddDate(0, 0, 1), featured.AsOf))

	var count int64
	suite.Require().NoError(suite.repository.DB.Model(&model.FeaturedDrink{}).Count(&count).Error)
	suite.Equal(int64(1), count)
}

func (suite *CatalogTestSuite) TestFavorites() {
	ale := suite.createDrink("Ale", "Gargoyle", 5, "Ale")
	stout := suite.createDrink("Stout", "Gargoyle", 7, "Stout")
	suite.createDrink("Lager", "Gargoyle", 4, "Lager")

	suite.Require().NoError(suite.repository.AddFavorite(suite.ctx, 1, ale.ID))
	suite.Require().NoError(suite.repository.AddFavorite(suite.ctx, 1, stout.ID))
	suite.Require().NoError(suite.repository.AddFavorite(suite.ctx, 1, stout.ID))
	suite.Require().NoError(suite.repository.AddFavorite(suite.ctx, 2, ale.ID))

	favorites, err := suite.repository.ListFavorites(suite.ctx, 1, 0)
	suite.Require().NoError(err)
	suite.ElementsMatch([]string{"Ale", "Stout"}, names(favorites))

	limited, err := suite.repository.ListFavorites(suite.ctx, 1, 1)
	suite.Require().NoError(err)
	suite.Len(limited, 1)

	suite.Require().NoError(suite.repository.RemoveFavorite(suite.ctx, 1, ale.ID))

	isFavorite, err := suite.repository.IsFavorite(suite.ctx, 1, ale.ID)
	suite.Require().NoError(err)
	suite.False(isFavorite)

	isFavorite, err = suite.repository.IsFavorite(suite.ctx, 2, ale.ID)
	suite.Require().NoError(err)
	suite.True(isFavorite)

	none, err := suite.repository.ListFavorites(suite.ctx, 3, 10)
	suite.Require().NoError(err)
	suite.NotNil(none)
	suite.Empty(none)
}

func (suite *CatalogTestSuite) TestRandomSelectionHelpers() {
	first := suite.createDrink("First", "Gargoyle", 5)
	second := suite.createDrink("Second", "Gargoyle", 5)

	count, err := suite.repository.CountDrinks(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal(int64(2), count)

	drinkID, err := suite.repository.DrinkIDAtOffset(suite.ctx, 0)
	suite.Require().NoError(err)
	suite.Equal(first.ID, drinkID)

	drinkID, err = suite.repository.DrinkIDAtOffset(suite.ctx, 1)
	suite.Require().NoError(err)
	suite.Equal(second.ID, drinkID)
}

func (suite *CatalogTestSuite) TestCategoriesByName() {
	categories, err := suite.repository.GetCategoriesByNames(suite.ctx, []string{"ALE", " stout "})

	suite.Require().NoError(err)
	suite.Len(categories, 2)
	suite.Equal(suite.categories["Stout"], categories["stout"].ID)
}

func (suite *CatalogTestSuite) TestUsers() {
	user, err := suite.repository.AddUser(suite.ctx, "ripley", "ripley@example.com", true)
	suite.Require().NoError(err)

	byEmail, err := suite.repository.GetUserFromEmail(suite.ctx, "ripley@example.com")
	suite.Require().NoError(err)
	suite.Equal(user.ID, byEmail.ID)
	suite.True(byEmail.IsAdmin)

	byUUID, err := suite.repository.GetUserByUUID(suite.ctx, user.UUID)
	suite.Require().NoError(err)
	suite.Equal("ripley", byUUID.Username)
}

func (suite *CatalogTestSuite) TestUnknownUser() {
	_, err := suite.repository.GetUserFromEmail(suite.ctx, "nobody@example.com")

	suite.ErrorIs(err, repository.ErrUserNotFound)
}
