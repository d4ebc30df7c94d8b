package repository_test

import (
	"testing"

	"capstone-portal-backend/internal/database/models"
	"capstone-portal-backend/internal/repository"
	"capstone-portal-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// SubmissionRepositoryTestSuite defines the test suite for SubmissionRepository
type SubmissionRepositoryTestSuite struct {
	suite.Suite
	db   *gorm.DB
	repo *repository.SubmissionRepository
}

// SetupTest sets up the test suite
func (suite *SubmissionRepositoryTestSuite) SetupTest() {
	suite.db = testutils.NewTestDB(suite.T())
	suite.repo = repository.NewSubmissionRepository(suite.db)
}

// TestCreateDuplicatePair tests that the compound unique index rejects a
// second submission for the same ordered pair
func (suite *SubmissionRepositoryTestSuite) TestCreateDuplicatePair() {
	team, _ := testutils.CreateTeam(suite.T(), suite.db, 2)
	target, _ := testutils.CreateTeam(suite.T(), suite.db, 1)
	testutils.CreateSubmission(suite.T(), suite.db, team, target)

	dup := &models.Submission{
		TeamID:         team.ID,
		TeamTargetID:   target.ID,
		GrandDesignURL: "https://cdn.example.com/file/designs/dup.pdf",
	}
	err := suite.repo.Create(dup)

	suite.ErrorIs(err, gorm.ErrDuplicatedKey)
}

// TestReversedPairIsAllowed tests that the pair index is ordered: A→B and
// B→A are distinct submissions
func (suite *SubmissionRepositoryTestSuite) TestReversedPairIsAllowed() {
	a, _ := testutils.CreateTeam(suite.T(), suite.db, 2)
	b, _ := testutils.CreateTeam(suite.T(), suite.db, 1)
	testutils.CreateSubmission(suite.T(), suite.db, a, b)

	reversed := &models.Submission{
		TeamID:         b.ID,
		TeamTargetID:   a.ID,
		GrandDesignURL: "https://cdn.example.com/file/designs/rev.pdf",
	}
	suite.NoError(suite.repo.Create(reversed))
}

// TestResolveAcceptMarksTitleTaken tests that acceptance flips the title flag
// in the same transaction
func (suite *SubmissionRepositoryTestSuite) TestResolveAcceptMarksTitleTaken() {
	target, _ := testutils.CreateTeam(suite.T(), suite.db, 1)
	title := testutils.CreateTitle(suite.T(), suite.db, target)
	team, _ := testutils.CreateTeam(suite.T(), suite.db, 2)
	submission := testutils.CreateSubmission(suite.T(), suite.db, team, target)

	suite.NoError(suite.repo.Resolve(submission.ID, target.ID, true, &title.ID))

	reloaded, err := suite.repo.GetByID(submission.ID)
	suite.NoError(err)
	suite.NotNil(reloaded.Accepted)
	suite.True(*reloaded.Accepted)

	reloadedTitle := testutils.Reload[models.Title](suite.T(), suite.db, title.ID)
	suite.True(reloadedTitle.IsTaken)
}

// TestResolveSecondAcceptLosesTitle tests that accepting two pending
// submissions for the same title cannot both succeed: the second acceptance
// fails to claim the title and rolls back, leaving its submission pending
func (suite *SubmissionRepositoryTestSuite) TestResolveSecondAcceptLosesTitle() {
	target, _ := testutils.CreateTeam(suite.T(), suite.db, 1)
	title := testutils.CreateTitle(suite.T(), suite.db, target)
	first, _ := testutils.CreateTeam(suite.T(), suite.db, 2)
	second, _ := testutils.CreateTeam(suite.T(), suite.db, 2)
	winner := testutils.CreateSubmission(suite.T(), suite.db, first, target)
	loser := testutils.CreateSubmission(suite.T(), suite.db, second, target)

	suite.NoError(suite.repo.Resolve(winner.ID, target.ID, true, &title.ID))

	err := suite.repo.Resolve(loser.ID, target.ID, true, &title.ID)
	suite.ErrorIs(err, repository.ErrTitleUnavailable)

	reloaded, err := suite.repo.GetByID(loser.ID)
	suite.NoError(err)
	suite.Nil(reloaded.Accepted)

	accepted, err := suite.repo.ListTargetingTeam(target.ID)
	suite.NoError(err)
	count := 0
	for _, s := range accepted {
		if s.Accepted != nil && *s.Accepted {
			count++
		}
	}
	suite.Equal(1, count)
}

// TestResolveDecline tests that a decline is recorded without touching the title
func (suite *SubmissionRepositoryTestSuite) TestResolveDecline() {
	target, _ := testutils.CreateTeam(suite.T(), suite.db, 1)
	title := testutils.CreateTitle(suite.T(), suite.db, target)
	team, _ := testutils.CreateTeam(suite.T(), suite.db, 2)
	submission := testutils.CreateSubmission(suite.T(), suite.db, team, target)

	suite.NoError(suite.repo.Resolve(submission.ID, target.ID, false, &title.ID))

	reloaded, err := suite.repo.GetByID(submission.ID)
	suite.NoError(err)
	suite.NotNil(reloaded.Accepted)
	suite.False(*reloaded.Accepted)

	reloadedTitle := testutils.Reload[models.Title](suite.T(), suite.db, title.ID)
	suite.False(reloadedTitle.IsTaken)
}

// TestResolveIsTerminal tests that a resolved submission cannot be resolved again
func (suite *SubmissionRepositoryTestSuite) TestResolveIsTerminal() {
	target, _ := testutils.CreateTeam(suite.T(), suite.db, 1)
	team, _ := testutils.CreateTeam(suite.T(), suite.db, 2)
	submission := testutils.CreateSubmission(suite.T(), suite.db, team, target)

	suite.NoError(suite.repo.Resolve(submission.ID, target.ID, false, nil))

	err := suite.repo.Resolve(submission.ID, target.ID, true, nil)
	suite.ErrorIs(err, repository.ErrNoRowsUpdated)
}

// TestResolveWrongTarget tests that only the addressed team can resolve
func (suite *SubmissionRepositoryTestSuite) TestResolveWrongTarget() {
	target, _ := testutils.CreateTeam(suite.T(), suite.db, 1)
	team, _ := testutils.CreateTeam(suite.T(), suite.db, 2)
	other, _ := testutils.CreateTeam(suite.T(), suite.db, 2)
	submission := testutils.CreateSubmission(suite.T(), suite.db, team, target)

	err := suite.repo.Resolve(submission.ID, other.ID, true, nil)
	suite.ErrorIs(err, repository.ErrNoRowsUpdated)
}

// TestListInvolvingTeam tests mutual visibility listing
func (suite *SubmissionRepositoryTestSuite) TestListInvolvingTeam() {
	a, _ := testutils.CreateTeam(suite.T(), suite.db, 2)
	b, _ := testutils.CreateTeam(suite.T(), suite.db, 1)
	c, _ := testutils.CreateTeam(suite.T(), suite.db, 1)
	testutils.CreateSubmission(suite.T(), suite.db, a, b)
	testutils.CreateSubmission(suite.T(), suite.db, a, c)

	involvingA, err := suite.repo.ListInvolvingTeam(a.ID)
	suite.NoError(err)
	suite.Len(involvingA, 2)

	involvingB, err := suite.repo.ListInvolvingTeam(b.ID)
	suite.NoError(err)
	suite.Len(involvingB, 1)
}

// TestGetAcceptedByPair tests the accepted-pair lookup used by the proposal gate
func (suite *SubmissionRepositoryTestSuite) TestGetAcceptedByPair() {
	team, _ := testutils.CreateTeam(suite.T(), suite.db, 2)
	target, _ := testutils.CreateTeam(suite.T(), suite.db, 1)
	submission := testutils.CreateSubmission(suite.T(), suite.db, team, target)

	_, err := suite.repo.GetAcceptedByPair(team.ID, target.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	suite.NoError(suite.repo.Resolve(submission.ID, target.ID, true, nil))

	found, err := suite.repo.GetAcceptedByPair(team.ID, target.ID)
	suite.NoError(err)
	suite.Equal(submission.ID, found.ID)
}

// TestSubmissionRepositoryTestSuite runs the test suite
func TestSubmissionRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SubmissionRepositoryTestSuite))
}
