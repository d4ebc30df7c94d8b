package repository

import (
	"errors"

	"capstone-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

// ErrNoRowsUpdated is returned by conditional single-statement updates when
// the guard clause matched nothing, e.g. assigning a title to a team that
// already owns one or resolving a submission that is no longer pending. The
// services translate it into the matching workflow error.
var ErrNoRowsUpdated = errors.New("no rows updated")

// ErrTitleUnavailable is returned by Resolve when the acceptance could not
// claim the title because a concurrent acceptance already marked it taken.
// The whole transaction rolls back, so the submission stays pending.
var ErrTitleUnavailable = errors.New("title unavailable")

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByTeamID(teamID uuid.UUID) ([]models.User, error)
	GetAll() ([]models.User, error)
	Update(user *models.User) error
	AssignTeamIfNone(userID, teamID uuid.UUID) error
	ClearTeam(userID uuid.UUID) error
	Delete(id uuid.UUID) error
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(team *models.Team) error
	GetByID(id uuid.UUID) (*models.Team, error)
	GetByJoinCode(code string) (*models.Team, error)
	GetByTitleID(titleID uuid.UUID) (*models.Team, error)
	GetAll() ([]models.Team, error)
	Update(team *models.Team) error
	DeleteCascade(id uuid.UUID) error
}

// TitleRepositoryInterface defines the interface for title repository operations
type TitleRepositoryInterface interface {
	CreateForTeam(title *models.Title, teamID uuid.UUID) error
	GetByID(id uuid.UUID) (*models.Title, error)
	GetByPeriod(period int) ([]models.Title, error)
	GetAll() ([]models.Title, error)
	Update(title *models.Title) error
	DeleteCascade(id uuid.UUID, ownerTeamID *uuid.UUID) error
}

// SubmissionRepositoryInterface defines the interface for submission repository operations
type SubmissionRepositoryInterface interface {
	Create(submission *models.Submission) error
	GetByID(id uuid.UUID) (*models.Submission, error)
	GetByPair(teamID, targetTeamID uuid.UUID) (*models.Submission, error)
	GetAcceptedByPair(teamID, targetTeamID uuid.UUID) (*models.Submission, error)
	ListInvolvingTeam(teamID uuid.UUID) ([]models.Submission, error)
	ListTargetingTeam(targetTeamID uuid.UUID) ([]models.Submission, error)
	ExistsTargetingTeam(targetTeamID uuid.UUID) (bool, error)
	GetAll() ([]models.Submission, error)
	Resolve(id, targetTeamID uuid.UUID, accept bool, titleID *uuid.UUID) error
	Delete(id uuid.UUID) error
}

// PeriodConfigRepositoryInterface defines the interface for the period singleton
type PeriodConfigRepositoryInterface interface {
	Get() (*models.PeriodConfig, error)
	Advance() (int, error)
}
