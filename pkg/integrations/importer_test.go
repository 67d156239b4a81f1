package integrations_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.openly.dev/pointy"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"droscher.com/DrinkCatalog/configs"
	"droscher.com/DrinkCatalog/mocks"
	"droscher.com/DrinkCatalog/pkg/integrations"
	"droscher.com/DrinkCatalog/pkg/model"
	"droscher.com/DrinkCatalog/pkg/repository"
)

type ImporterTestSuite struct {
	suite.Suite
	catalog      *mocks.Catalog
	integration  *mocks.Integration
	importer     *integrations.Importer
	observedLogs *observer.ObservedLogs
}

func TestImporterTestSuite(t *testing.T) {
	suite.Run(t, new(ImporterTestSuite))
}

func (suite *ImporterTestSuite) SetupTest() {
	suite.catalog = mocks.NewCatalog(suite.T())
	suite.integration = mocks.NewIntegration(suite.T())
	observedZapCore, observedLogs := observer.New(zap.InfoLevel)
	suite.observedLogs = observedLogs
	suite.importer = integrations.NewImporter(suite.catalog, zap.New(observedZapCore))
}

func (suite *ImporterTestSuite) TestImport_MapsStyleOntoExistingCategory() {
	ctx := context.Background()
	suite.integration.EXPECT().FindDrinks("saison").Return([]model.ImportedDrink{
		{Name: "Precious Bet", BrandName: "Paronomastic Brewing", Style: "Saison", AlcoholContent: pointy.Float64(8.2)},
		{Name: "Mystery", BrandName: "Paronomastic Brewing", Style: "Unknown"},
	}, nil)
	suite.catalog.EXPECT().GetCategoriesByNames(ctx, []string{"Saison", "Unknown"}).
		Return(map[string]model.Category{"saison": {ID: 4, Name: "Saison"}}, nil)
	suite.catalog.EXPECT().CreateDrink(ctx, repository.NewDrinkInput{
		Name: "Precious Bet", BrandName: "Paronomastic Brewing", CategoryIDs: []uint{4}, AlcoholContent: 8.2,
	}).Return(&model.Drink{ID: 1, Name: "Precious Bet"}, nil)
	suite.catalog.EXPECT().CreateDrink(ctx, repository.NewDrinkInput{
		Name: "Mystery", BrandName: "Paronomastic Brewing",
	}).Return(&model.Drink{ID: 2, Name: "Mystery"}, nil)

	created, err := suite.importer.Import(ctx, suite.integration, "saison")

	suite.Require().NoError(err)
	suite.Len(created, 2)
	suite.Equal(2, suite.observedLogs.FilterMessage("imported drink").Len())
}

func (suite *ImporterTestSuite) TestImport_SkipsFailedDrinks() {
	ctx := context.Background()
	suite.integration.EXPECT().FindDrinks("stout").Return([]model.ImportedDrink{
		{Name: "", BrandName: "Twin Sails"},
		{Name: "Lights Out", BrandName: "Twin Sails", AlcoholContent: pointy.Float64(14.3)},
	}, nil)
	suite.catalog.EXPECT().GetCategoriesByNames(ctx, mock.Anything).Return(map[string]model.Category{}, nil)
	suite.catalog.EXPECT().CreateDrink(ctx, mock.MatchedBy(func(input repository.NewDrinkInput) bool { return input.Name == "" })).
		Return(nil, model.ErrValidation)
	suite.catalog.EXPECT().CreateDrink(ctx, mock.MatchedBy(func(input repository.NewDrinkInput) bool { return input.Name == "Lights Out" })).
		Return(&model.Drink{ID: 3, Name: "Lights Out"}, nil)

	created, err := suite.importer.Import(ctx, suite.integration, "stout")

	suite.Require().ErrorIs(err, model.ErrValidation)
	suite.Len(created, 1)
	suite.Equal(1, suite.observedLogs.FilterMessage("skipping imported drink").Len())
}

func (suite *ImporterTestSuite) TestImport_NothingFound() {
	scrapeErr := errors.New("search page unavailable")
	suite.integration.EXPECT().FindDrinks("porter").Return(nil, scrapeErr)

	created, err := suite.importer.Import(context.Background(), suite.integration, "porter")

	suite.Nil(created)
	suite.ErrorIs(err, scrapeErr)
}

func TestGetIntegration(t *testing.T) {
	integration, err := integrations.GetIntegration("untappd_web", configs.Integrations{UntappdURL: "http://localhost:9999"}, zap.NewNop())
	if err != nil || integration == nil {
		t.Fatalf("expected untappd integration, got %v", err)
	}

	_, err = integrations.GetIntegration("ratebeer", configs.Integrations{}, zap.NewNop())
	if !errors.Is(err, integrations.ErrUnknownIntegration) {
		t.Fatalf("expected ErrUnknownIntegration, got %v", err)
	}
}
