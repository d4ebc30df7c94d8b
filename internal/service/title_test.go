package service_test

import (
	"context"
	"testing"

	"capstone-portal-backend/internal/database/models"
	apperrors "capstone-portal-backend/internal/errors"
	"capstone-portal-backend/internal/repository"
	"capstone-portal-backend/internal/service"
	"capstone-portal-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TitleServiceTestSuite defines the test suite for TitleService
type TitleServiceTestSuite struct {
	suite.Suite
	db             *gorm.DB
	store          *testutils.FakeStore
	titleService   *service.TitleService
	submissionRepo *repository.SubmissionRepository
}

// SetupTest sets up the test suite
func (suite *TitleServiceTestSuite) SetupTest() {
	suite.db = testutils.NewTestDB(suite.T())
	suite.store = testutils.NewFakeStore()

	titleRepo := repository.NewTitleRepository(suite.db)
	teamRepo := repository.NewTeamRepository(suite.db)
	suite.submissionRepo = repository.NewSubmissionRepository(suite.db)
	periodRepo := repository.NewPeriodConfigRepository(suite.db)

	suite.titleService = service.NewTitleService(
		titleRepo, teamRepo, suite.submissionRepo, periodRepo, suite.store, validator.New())
}

func (suite *TitleServiceTestSuite) createRequest() *service.CreateTitleRequest {
	return &service.CreateTitleRequest{
		Title:           "Air Quality Mesh",
		ShortDesc:       "Neighborhood air quality sensing",
		LongDescription: "A mesh of low-cost sensors reporting air quality in real time",
		PhotoURL:        "https://cdn.example.com/file/photos/air.png",
		ProposalURL:     "https://cdn.example.com/file/proposals/air.pdf",
	}
}

// TestCreate tests the leader authoring a title for the team
func (suite *TitleServiceTestSuite) TestCreate() {
	team, leader := testutils.CreateTeam(suite.T(), suite.db, 2)

	resp, err := suite.titleService.Create(leader, suite.createRequest())

	suite.NoError(err)
	suite.Equal(team.Period, resp.Period)
	suite.False(resp.IsTaken)
	suite.NotEmpty(resp.ProposalURL)

	reloaded := testutils.Reload[models.Team](suite.T(), suite.db, team.ID)
	suite.NotNil(reloaded.TitleID)
	suite.Equal(resp.ID, *reloaded.TitleID)
}

// TestCreateNotLeader tests that a regular member cannot author a title
func (suite *TitleServiceTestSuite) TestCreateNotLeader() {
	team, _ := testutils.CreateTeam(suite.T(), suite.db, 2)
	member := testutils.AddMember(suite.T(), suite.db, team)

	_, err := suite.titleService.Create(member, suite.createRequest())

	suite.ErrorIs(err, apperrors.ErrNotTeamLeaderTitle)
	suite.EqualError(err, "Only team leader can create title")
}

// TestCreateWithoutTeam tests that a teamless user cannot author a title
func (suite *TitleServiceTestSuite) TestCreateWithoutTeam() {
	user := testutils.CreateUser(suite.T(), suite.db)

	_, err := suite.titleService.Create(user, suite.createRequest())

	suite.ErrorIs(err, apperrors.ErrUserHasNoTeam)
}

// TestCreateSecondTitle tests the one-title-per-team rule
func (suite *TitleServiceTestSuite) TestCreateSecondTitle() {
	team, leader := testutils.CreateTeam(suite.T(), suite.db, 2)
	testutils.CreateTitle(suite.T(), suite.db, team)
	leader.TeamID = &team.ID

	_, err := suite.titleService.Create(leader, suite.createRequest())

	suite.ErrorIs(err, apperrors.ErrTeamHasTitle)
	suite.EqualError(err, "Team already has a title")
}

// TestListPublicShowsPreviousPeriodOnly tests the catalog window
func (suite *TitleServiceTestSuite) TestListPublicShowsPreviousPeriodOnly() {
	testutils.SetPeriod(suite.T(), suite.db, 2)

	oldTeam, _ := testutils.CreateTeam(suite.T(), suite.db, 1)
	newTeam, _ := testutils.CreateTeam(suite.T(), suite.db, 2)
	oldTitle := testutils.CreateTitle(suite.T(), suite.db, oldTeam)
	testutils.CreateTitle(suite.T(), suite.db, newTeam)

	titles, err := suite.titleService.ListPublic()

	suite.NoError(err)
	suite.Len(titles, 1)
	suite.Equal(oldTitle.ID, titles[0].ID)
}

// TestGetByIDProposalGate tests the proposal confidentiality gate: owner and
// accepted submitter see it, everyone else does not
func (suite *TitleServiceTestSuite) TestGetByIDProposalGate() {
	owner, ownerLeader := testutils.CreateTeam(suite.T(), suite.db, 1)
	title := testutils.CreateTitle(suite.T(), suite.db, owner)

	submitterTeam, submitterLeader := testutils.CreateTeam(suite.T(), suite.db, 2)
	_, strangerLeader := testutils.CreateTeam(suite.T(), suite.db, 2)

	submission := testutils.CreateSubmission(suite.T(), suite.db, submitterTeam, owner)

	asOwner, err := suite.titleService.GetByID(title.ID, ownerLeader)
	suite.NoError(err)
	suite.Equal(title.ProposalURL, asOwner.ProposalURL)

	// pending submission is not enough
	asSubmitter, err := suite.titleService.GetByID(title.ID, submitterLeader)
	suite.NoError(err)
	suite.Empty(asSubmitter.ProposalURL)

	asStranger, err := suite.titleService.GetByID(title.ID, strangerLeader)
	suite.NoError(err)
	suite.Empty(asStranger.ProposalURL)

	suite.NoError(suite.submissionRepo.Resolve(submission.ID, owner.ID, true, &title.ID))

	accepted, err := suite.titleService.GetByID(title.ID, submitterLeader)
	suite.NoError(err)
	suite.Equal(title.ProposalURL, accepted.ProposalURL)
}

// TestUpdate tests a partial update before any submission arrives
func (suite *TitleServiceTestSuite) TestUpdate() {
	team, leader := testutils.CreateTeam(suite.T(), suite.db, 2)
	title := testutils.CreateTitle(suite.T(), suite.db, team)

	resp, err := suite.titleService.Update(title.ID, leader, &service.UpdateTitleRequest{
		ShortDesc: "Updated short description",
	})

	suite.NoError(err)
	suite.Equal("Updated short description", resp.ShortDesc)
	suite.Equal(title.Title, resp.Title)
}

// TestUpdateLockedAfterSubmission tests that a targeted title is frozen
func (suite *TitleServiceTestSuite) TestUpdateLockedAfterSubmission() {
	team, leader := testutils.CreateTeam(suite.T(), suite.db, 1)
	title := testutils.CreateTitle(suite.T(), suite.db, team)
	submitter, _ := testutils.CreateTeam(suite.T(), suite.db, 2)
	testutils.CreateSubmission(suite.T(), suite.db, submitter, team)

	_, err := suite.titleService.Update(title.ID, leader, &service.UpdateTitleRequest{
		ShortDesc: "Too late",
	})

	suite.ErrorIs(err, apperrors.ErrTitleLocked)
	suite.EqualError(err, "Cannot update title after submission")
}

// TestUpdateNotOwner tests that only the owning team's leader can update
func (suite *TitleServiceTestSuite) TestUpdateNotOwner() {
	team, _ := testutils.CreateTeam(suite.T(), suite.db, 1)
	title := testutils.CreateTitle(suite.T(), suite.db, team)
	_, otherLeader := testutils.CreateTeam(suite.T(), suite.db, 1)

	_, err := suite.titleService.Update(title.ID, otherLeader, &service.UpdateTitleRequest{
		ShortDesc: "Hijack",
	})

	suite.ErrorIs(err, apperrors.ErrNotTitleOwner)
}

// TestAdminDeleteCascades tests that deletion removes dependents and cleans
// up stored artifacts
func (suite *TitleServiceTestSuite) TestAdminDeleteCascades() {
	owner, _ := testutils.CreateTeam(suite.T(), suite.db, 1)
	title := testutils.CreateTitle(suite.T(), suite.db, owner)
	submitter, _ := testutils.CreateTeam(suite.T(), suite.db, 2)
	submission := testutils.CreateSubmission(suite.T(), suite.db, submitter, owner)

	suite.NoError(suite.titleService.AdminDelete(context.Background(), title.ID))

	_, err := suite.titleService.AdminGetByID(title.ID)
	suite.ErrorIs(err, apperrors.ErrTitleNotFound)

	var count int64
	suite.NoError(suite.db.Model(&models.Submission{}).
		Where("id = ?", submission.ID).Count(&count).Error)
	suite.Equal(int64(0), count)

	reloaded := testutils.Reload[models.Team](suite.T(), suite.db, owner.ID)
	suite.Nil(reloaded.TitleID)

	suite.Len(suite.store.Deleted, 3) // photo, proposal, grand design
}

// TestAdminDeleteMissing tests deleting an unknown title
func (suite *TitleServiceTestSuite) TestAdminDeleteMissing() {
	err := suite.titleService.AdminDelete(context.Background(), uuid.New())
	suite.ErrorIs(err, apperrors.ErrTitleNotFound)
}

// TestTitleServiceTestSuite runs the test suite
func TestTitleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TitleServiceTestSuite))
}
