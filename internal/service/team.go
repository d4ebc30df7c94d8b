package service

import (
	"crypto/rand"
	"errors"
	"fmt"

	"capstone-portal-backend/internal/database/models"
	apperrors "capstone-portal-backend/internal/errors"
	"capstone-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	joinCodeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	joinCodeLength  = 8
	// attempts before giving up on a colliding join code; with 36^8 codes a
	// second collision in a row is effectively a broken RNG
	joinCodeRetries = 5
)

// TeamService handles business logic for teams
type TeamService struct {
	repo       repository.TeamRepositoryInterface
	userRepo   repository.UserRepositoryInterface
	periodRepo repository.PeriodConfigRepositoryInterface
	validator  *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(repo repository.TeamRepositoryInterface, userRepo repository.UserRepositoryInterface, periodRepo repository.PeriodConfigRepositoryInterface, validator *validator.Validate) *TeamService {
	return &TeamService{
		repo:       repo,
		userRepo:   userRepo,
		periodRepo: periodRepo,
		validator:  validator,
	}
}

// CreateTeamEntry is a single team in an admin bulk-creation request
type CreateTeamEntry struct {
	Name        string              `json:"name" validate:"required,min=1,max=100"`
	LeaderEmail string              `json:"leader_email" validate:"required,email,max=255"`
	Category    models.TeamCategory `json:"category" validate:"required"`
}

// CreateTeamsRequest represents the admin bulk team-creation request
type CreateTeamsRequest struct {
	Entries       []CreateTeamEntry `json:"entries" validate:"required"`
	AdvancePeriod bool              `json:"advance_period"`
}

// TeamEntryError reports why one entry of a bulk creation failed
type TeamEntryError struct {
	Entry  CreateTeamEntry `json:"entry"`
	Reason string          `json:"reason"`
}

// CreateTeamsResponse reports per-entry outcomes of a bulk creation
type CreateTeamsResponse struct {
	SuccessCount int              `json:"success_count"`
	ErrorCount   int              `json:"error_count"`
	Created      []TeamResponse   `json:"created,omitempty"`
	Errors       []TeamEntryError `json:"errors,omitempty"`
}

// TeamResponse represents the response for team operations. JoinCode is
// omitted entirely for requesters outside the team, so clients cannot tell
// "hidden" apart from "absent".
type TeamResponse struct {
	ID          uuid.UUID           `json:"id"`
	Name        string              `json:"name"`
	LeaderEmail string              `json:"leader_email"`
	Category    models.TeamCategory `json:"category"`
	Period      int                 `json:"period"`
	TitleID     *uuid.UUID          `json:"title_id,omitempty"`
	JoinCode    string              `json:"join_code,omitempty"`
}

// AdminCreateTeams bulk-creates teams for a period. When AdvancePeriod is
// set the counter is advanced first so every entry in the batch lands in the
// same new period. Entries are attempted independently: a failing entry is
// reported and the rest of the batch proceeds.
func (s *TeamService) AdminCreateTeams(req *CreateTeamsRequest) (*CreateTeamsResponse, error) {
	var period int
	var err error
	if req.AdvancePeriod {
		period, err = s.periodRepo.Advance()
	} else {
		var cfg *models.PeriodConfig
		cfg, err = s.periodRepo.Get()
		if cfg != nil {
			period = cfg.CurrentPeriod
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve period: %w", err)
	}

	resp := &CreateTeamsResponse{}
	for _, entry := range req.Entries {
		team, err := s.createOne(entry, period)
		if err != nil {
			resp.ErrorCount++
			resp.Errors = append(resp.Errors, TeamEntryError{Entry: entry, Reason: err.Error()})
			continue
		}
		resp.SuccessCount++
		resp.Created = append(resp.Created, *s.toResponse(team, true))
	}
	return resp, nil
}

func (s *TeamService) createOne(entry CreateTeamEntry, period int) (*models.Team, error) {
	if err := s.validator.Struct(entry); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !entry.Category.IsValid() {
		return nil, apperrors.NewValidationError("category", fmt.Sprintf("unknown category %q", entry.Category))
	}

	team := &models.Team{
		Name:        entry.Name,
		LeaderEmail: entry.LeaderEmail,
		Category:    entry.Category,
		Period:      period,
	}
	for attempt := 0; attempt < joinCodeRetries; attempt++ {
		team.JoinCode = newJoinCode()
		err := s.repo.Create(team)
		if err == nil {
			return team, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("failed to create team: %w", err)
		}
	}
	return nil, fmt.Errorf("failed to generate a unique join code for team %q", entry.Name)
}

// GetByID retrieves a team. The join code is disclosed only to admins and
// to members of the team itself.
func (s *TeamService) GetByID(id uuid.UUID, requester *models.User) (*TeamResponse, error) {
	team, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	includeCode := requester != nil &&
		(requester.IsAdmin || (requester.HasTeam() && *requester.TeamID == team.ID))
	return s.toResponse(team, includeCode), nil
}

// Join adds the user to the team matching the join code. A user may belong
// to at most one team; the conditional team assignment keeps two concurrent
// joins from both succeeding.
func (s *TeamService) Join(code string, user *models.User) (*TeamResponse, error) {
	if user.HasTeam() {
		return nil, apperrors.ErrUserHasTeam
	}

	team, err := s.repo.GetByJoinCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to look up join code: %w", err)
	}

	if err := s.userRepo.AssignTeamIfNone(user.ID, team.ID); err != nil {
		if errors.Is(err, repository.ErrNoRowsUpdated) {
			return nil, apperrors.ErrUserHasTeam
		}
		return nil, fmt.Errorf("failed to join team: %w", err)
	}
	user.TeamID = &team.ID

	return s.toResponse(team, true), nil
}

// KickMember removes a member from the acting user's team. Only the leader
// may kick, never themselves, and only current members of their own team.
func (s *TeamService) KickMember(targetUserID uuid.UUID, acting *models.User) error {
	if !acting.HasTeam() {
		return apperrors.ErrCannotKickMember
	}

	team, err := s.repo.GetByID(*acting.TeamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamNotFound
		}
		return fmt.Errorf("failed to get team: %w", err)
	}

	if !team.IsLeader(acting) || targetUserID == acting.ID {
		return apperrors.ErrCannotKickMember
	}

	target, err := s.userRepo.GetByID(targetUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrMemberNotFound
		}
		return fmt.Errorf("failed to get member: %w", err)
	}
	if !target.HasTeam() || *target.TeamID != team.ID {
		return apperrors.ErrMemberNotFound
	}

	if err := s.userRepo.ClearTeam(target.ID); err != nil {
		return fmt.Errorf("failed to kick member: %w", err)
	}
	return nil
}

// AdminGetAll retrieves all teams with full projections
func (s *TeamService) AdminGetAll() ([]TeamResponse, error) {
	teams, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	responses := make([]TeamResponse, 0, len(teams))
	for i := range teams {
		responses = append(responses, *s.toResponse(&teams[i], true))
	}
	return responses, nil
}

// AdminGetByID retrieves a team with its join code
func (s *TeamService) AdminGetByID(id uuid.UUID) (*TeamResponse, error) {
	team, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return s.toResponse(team, true), nil
}

// AdminDelete deletes a team, clearing the team reference on its members.
func (s *TeamService) AdminDelete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamNotFound
		}
		return fmt.Errorf("failed to get team: %w", err)
	}

	if err := s.repo.DeleteCascade(id); err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}
	return nil
}

func (s *TeamService) toResponse(team *models.Team, includeCode bool) *TeamResponse {
	resp := &TeamResponse{
		ID:          team.ID,
		Name:        team.Name,
		LeaderEmail: team.LeaderEmail,
		Category:    team.Category,
		Period:      team.Period,
		TitleID:     team.TitleID,
	}
	if includeCode {
		resp.JoinCode = team.JoinCode
	}
	return resp
}

// newJoinCode generates a random join code. crypto/rand keeps codes
// unguessable; uniqueness is enforced by the teams.join_code unique index.
func newJoinCode() string {
	buf := make([]byte, joinCodeLength)
	if _, err := rand.Read(buf); err != nil {
		panic(fmt.Sprintf("crypto/rand unavailable: %v", err))
	}
	code := make([]byte, joinCodeLength)
	for i, b := range buf {
		code[i] = joinCodeCharset[int(b)%len(joinCodeCharset)]
	}
	return string(code)
}
