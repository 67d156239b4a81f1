package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/suite"

	"droscher.com/DrinkCatalog/pkg/model"
	"droscher.com/DrinkCatalog/pkg/repository"
)

type VoteTestSuite struct {
	RepositorySuite
}

func TestVoteTestSuite(t *testing.T) {
	suite.Run(t, new(VoteTestSuite))
}

func (suite *VoteTestSuite) TestRecordVote_UpsertsOnUserAndDay() {
	now := time.Date(2024, 3, 9, 22, 15, 0, 0, time.FixedZone("EST", -5*60*60))

	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "votes" ("user_id","drink_id","day","voted_at") VALUES ($1,$2,$3,$4) ON CONFLICT ("user_id","day") DO UPDATE SET "drink_id"="excluded"."drink_id","voted_at"="excluded"."voted_at" RETURNING "id"`)).
		WithArgs(7, 3, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), now.UTC()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	suite.mock.ExpectCommit()

	vote, err := suite.repository.RecordVote(context.Background(), 7, 3, now)

	suite.Require().NoError(err)
	suite.Equal(uint(1), vote.ID)
	suite.Equal(time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), vote.Day)
}

func (suite *VoteTestSuite) TestTopVotedDrink_HighestCountThenLowestID() {
	day := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	suite.mock.ExpectQuery(`^SELECT drink_id, COUNT\(\*\) AS votes FROM "votes" WHERE day = \$1 GROUP BY "?drink_id"? ORDER BY votes DESC, drink_id ASC LIMIT \$2`).
		WithArgs(time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), 1).
		WillReturnRows(sqlmock.NewRows([]string{"drink_id", "votes"}).AddRow(9, 4))

	tally, err := suite.repository.TopVotedDrink(context.Background(), day)

	suite.Require().NoError(err)
	suite.Equal(&model.VoteTally{DrinkID: 9, Votes: 4}, tally)
}

func (suite *VoteTestSuite) TestTopVotedDrink_NoVotes() {
	suite.mock.ExpectQuery(`^SELECT drink_id, COUNT\(\*\) AS votes FROM "votes"`).
		WillReturnRows(sqlmock.NewRows([]string{"drink_id", "votes"}))

	tally, err := suite.repository.TopVotedDrink(context.Background(), time.Now())

	suite.Nil(tally)
	suite.ErrorIs(err, repository.ErrNoVotes)
}

func (suite *VoteTestSuite) TestDrinkIDAtOffset() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT "id" FROM "drinks" ORDER BY id LIMIT $1 OFFSET $2`)).
		WithArgs(1, 4).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(12))

	drinkID, err := suite.repository.DrinkIDAtOffset(context.Background(), 4)

	suite.Require().NoError(err)
	suite.Equal(uint(12), drinkID)
}

func (suite *VoteTestSuite) TestDrinkIDAtOffset_PastTheEnd() {
	suite.mock.ExpectQuery(`^SELECT "id" FROM "drinks"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := suite.repository.DrinkIDAtOffset(context.Background(), 4)

	suite.ErrorIs(err, repository.ErrDrinkNotFound)
}

func (suite *VoteTestSuite) TestGetFeaturedDrink_Unset() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "featured_drinks" WHERE "featured_drinks"."id" = $1 ORDER BY "featured_drinks"."id" LIMIT $2`)).
		WithArgs(model.FeaturedDrinkSlot, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "drink_id", "as_of"}))

	featured, err := suite.repository.GetFeaturedDrink(context.Background())

	suite.Nil(featured)
	suite.ErrorIs(err, repository.ErrNoFeaturedDrink)
}

func (suite *VoteTestSuite) TestSaveFeaturedDrink_UpsertsSingleRow() {
	asOf := time.Date(2024, 3, 10, 8, 30, 0, 0, time.UTC)

	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(`^INSERT INTO "featured_drinks" (.+) ON CONFLICT \("id"\) DO UPDATE SET "drink_id"="excluded"\."drink_id","as_of"="excluded"\."as_of","updated_at"="excluded"\."updated_at"`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	suite.mock.ExpectCommit()

	featured, err := suite.repository.SaveFeaturedDrink(context.Background(), 5, asOf)

	suite.Require().NoError(err)
	suite.Equal(uint(model.FeaturedDrinkSlot), featured.ID)
	suite.Equal(uint(5), featured.DrinkID)
	suite.Equal(time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), featured.AsOf)
}

func (suite *VoteTestSuite) TestSaveFeaturedDrink_LogsFailure() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(`^INSERT INTO "featured_drinks"`).WillReturnError(sqlmock.ErrCancelled)
	suite.mock.ExpectRollback()

	featured, err := suite.repository.SaveFeaturedDrink(context.Background(), 5, time.Now())

	suite.Nil(featured)
	suite.Require().ErrorIs(err, sqlmock.ErrCancelled)
	suite.Equal(1, suite.observedLogs.FilterMessage("error saving featured drink").Len())
}
