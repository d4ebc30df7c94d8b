package repository_test

import (
	"testing"

	"capstone-portal-backend/internal/database/models"
	"capstone-portal-backend/internal/repository"
	"capstone-portal-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TitleRepositoryTestSuite defines the test suite for TitleRepository
type TitleRepositoryTestSuite struct {
	suite.Suite
	db   *gorm.DB
	repo *repository.TitleRepository
}

// SetupTest sets up the test suite
func (suite *TitleRepositoryTestSuite) SetupTest() {
	suite.db = testutils.NewTestDB(suite.T())
	suite.repo = repository.NewTitleRepository(suite.db)
}

func (suite *TitleRepositoryTestSuite) newTitle() *models.Title {
	return &models.Title{
		Title:           "Smart Waste Routing",
		ShortDesc:       "Routing for waste collection",
		LongDescription: "Full proposal text",
		PhotoURL:        "https://cdn.example.com/file/photos/waste.png",
		ProposalURL:     "https://cdn.example.com/file/proposals/waste.pdf",
		Period:          1,
	}
}

// TestCreateForTeamAssignsOwnership tests that creation wires the owning edge
func (suite *TitleRepositoryTestSuite) TestCreateForTeamAssignsOwnership() {
	team, _ := testutils.CreateTeam(suite.T(), suite.db, 1)

	title := suite.newTitle()
	suite.NoError(suite.repo.CreateForTeam(title, team.ID))

	reloaded := testutils.Reload[models.Team](suite.T(), suite.db, team.ID)
	suite.NotNil(reloaded.TitleID)
	suite.Equal(title.ID, *reloaded.TitleID)
}

// TestCreateForTeamSecondTitleRollsBack tests that a team cannot get a second
// title and the orphan insert is rolled back
func (suite *TitleRepositoryTestSuite) TestCreateForTeamSecondTitleRollsBack() {
	team, _ := testutils.CreateTeam(suite.T(), suite.db, 1)
	suite.NoError(suite.repo.CreateForTeam(suite.newTitle(), team.ID))

	second := suite.newTitle()
	err := suite.repo.CreateForTeam(second, team.ID)
	suite.ErrorIs(err, repository.ErrNoRowsUpdated)

	var count int64
	suite.NoError(suite.db.Model(&models.Title{}).Count(&count).Error)
	suite.Equal(int64(1), count)
}

// TestGetByPeriod tests the period filter
func (suite *TitleRepositoryTestSuite) TestGetByPeriod() {
	teamOld, _ := testutils.CreateTeam(suite.T(), suite.db, 1)
	teamNew, _ := testutils.CreateTeam(suite.T(), suite.db, 2)
	testutils.CreateTitle(suite.T(), suite.db, teamOld)
	testutils.CreateTitle(suite.T(), suite.db, teamNew)

	titles, err := suite.repo.GetByPeriod(1)
	suite.NoError(err)
	suite.Len(titles, 1)
	suite.Equal(1, titles[0].Period)
}

// TestDeleteCascade tests that deleting a title removes dependent submissions
// and clears the owner's reference
func (suite *TitleRepositoryTestSuite) TestDeleteCascade() {
	owner, _ := testutils.CreateTeam(suite.T(), suite.db, 1)
	title := testutils.CreateTitle(suite.T(), suite.db, owner)
	submitter, _ := testutils.CreateTeam(suite.T(), suite.db, 2)
	submission := testutils.CreateSubmission(suite.T(), suite.db, submitter, owner)

	suite.NoError(suite.repo.DeleteCascade(title.ID, &owner.ID))

	_, err := suite.repo.GetByID(title.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	var count int64
	suite.NoError(suite.db.Model(&models.Submission{}).
		Where("id = ?", submission.ID).Count(&count).Error)
	suite.Equal(int64(0), count)

	reloaded := testutils.Reload[models.Team](suite.T(), suite.db, owner.ID)
	suite.Nil(reloaded.TitleID)
}

// TestTitleRepositoryTestSuite runs the test suite
func TestTitleRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TitleRepositoryTestSuite))
}
