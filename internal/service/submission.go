package service

import (
	"context"
	"errors"
	"fmt"

	"capstone-portal-backend/internal/database/models"
	apperrors "capstone-portal-backend/internal/errors"
	"capstone-portal-backend/internal/logger"
	"capstone-portal-backend/internal/repository"
	"capstone-portal-backend/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubmissionService handles the adoption workflow between teams. A
// submission moves PENDING -> ACCEPTED or PENDING -> DECLINED exactly once;
// there is no way back from a resolved state, and the unique (team, target)
// pair means a declined team cannot re-apply to the same target.
type SubmissionService struct {
	repo       repository.SubmissionRepositoryInterface
	teamRepo   repository.TeamRepositoryInterface
	titleRepo  repository.TitleRepositoryInterface
	periodRepo repository.PeriodConfigRepositoryInterface
	store      storage.Store
	validator  *validator.Validate
	log        *logger.Logger
}

// NewSubmissionService creates a new submission service
func NewSubmissionService(repo repository.SubmissionRepositoryInterface, teamRepo repository.TeamRepositoryInterface, titleRepo repository.TitleRepositoryInterface, periodRepo repository.PeriodConfigRepositoryInterface, store storage.Store, validator *validator.Validate) *SubmissionService {
	return &SubmissionService{
		repo:       repo,
		teamRepo:   teamRepo,
		titleRepo:  titleRepo,
		periodRepo: periodRepo,
		store:      store,
		validator:  validator,
		log:        logger.New(),
	}
}

// CreateSubmissionRequest represents the request to submit a grand design
// to another team's title
type CreateSubmissionRequest struct {
	TeamTargetID   uuid.UUID `json:"team_target_id" validate:"required"`
	GrandDesignURL string    `json:"grand_design_url" validate:"required,url,max=500"`
}

// RespondSubmissionRequest represents the target leader's response
type RespondSubmissionRequest struct {
	Accept bool `json:"accept"`
}

// SubmissionResponse represents the full submission detail
type SubmissionResponse struct {
	ID             uuid.UUID `json:"id"`
	TeamID         uuid.UUID `json:"team_id"`
	TeamTargetID   uuid.UUID `json:"team_target_id"`
	GrandDesignURL string    `json:"grand_design_url"`
	Accepted       *bool     `json:"accepted,omitempty"`
}

// SubmissionShortResponse is the list projection without the confidential
// grand design URL
type SubmissionShortResponse struct {
	ID           uuid.UUID `json:"id"`
	TeamID       uuid.UUID `json:"team_id"`
	TeamTargetID uuid.UUID `json:"team_target_id"`
	Accepted     *bool     `json:"accepted,omitempty"`
}

// Create submits the caller team's grand design to the target team's title.
// Checks run in order and fail fast; the unique pair index backs the
// duplicate check so two concurrent submissions to the same target cannot
// both land.
func (s *SubmissionService) Create(user *models.User, req *CreateSubmissionRequest) (*SubmissionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if !user.HasTeam() {
		return nil, apperrors.ErrUserHasNoTeam
	}

	team, err := s.teamRepo.GetByID(*user.TeamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	if !team.IsLeader(user) {
		return nil, apperrors.ErrNotTeamLeaderSubmit
	}

	if req.TeamTargetID == team.ID {
		return nil, apperrors.ErrSelfSubmission
	}

	target, err := s.teamRepo.GetByID(req.TeamTargetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTargetTeamNotFound
		}
		return nil, fmt.Errorf("failed to get target team: %w", err)
	}
	if target.TitleID == nil {
		return nil, apperrors.ErrTargetHasNoTitle
	}

	cfg, err := s.periodRepo.Get()
	if err != nil {
		return nil, fmt.Errorf("failed to read period config: %w", err)
	}
	if target.Period != cfg.CurrentPeriod-1 {
		return nil, apperrors.ErrTargetNotEligible
	}

	title, err := s.titleRepo.GetByID(*target.TitleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTitleNotFound
		}
		return nil, fmt.Errorf("failed to get target title: %w", err)
	}
	if title.IsTaken {
		return nil, apperrors.ErrTitleTaken
	}

	if _, err := s.repo.GetByPair(team.ID, target.ID); err == nil {
		return nil, apperrors.ErrSubmissionExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing submission: %w", err)
	}

	submission := &models.Submission{
		TeamID:         team.ID,
		TeamTargetID:   target.ID,
		GrandDesignURL: req.GrandDesignURL,
	}
	if err := s.repo.Create(submission); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrSubmissionExists
		}
		return nil, fmt.Errorf("failed to create submission: %w", err)
	}

	return toSubmissionResponse(submission), nil
}

// Respond records the target team leader's accept/decline. Acceptance marks
// the leader's own title taken, which blocks any further acceptance; a
// resolved submission cannot be responded to again.
func (s *SubmissionService) Respond(id uuid.UUID, user *models.User, accept bool) (*SubmissionResponse, error) {
	if !user.HasTeam() {
		return nil, apperrors.ErrNotTeamLeaderRespond
	}

	team, err := s.teamRepo.GetByID(*user.TeamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	if !team.IsLeader(user) {
		return nil, apperrors.ErrNotTeamLeaderRespond
	}

	submission, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}
	// a submission addressed to another team is invisible to the caller
	if submission.TeamTargetID != team.ID {
		return nil, apperrors.ErrSubmissionNotFound
	}
	if !submission.IsPending() {
		return nil, apperrors.ErrSubmissionResolved
	}

	if accept {
		if team.TitleID == nil {
			return nil, apperrors.ErrTargetHasNoTitle
		}
		title, err := s.titleRepo.GetByID(*team.TitleID)
		if err != nil {
			return nil, fmt.Errorf("failed to get title: %w", err)
		}
		if title.IsTaken {
			return nil, apperrors.ErrTitleTaken
		}
	}

	if err := s.repo.Resolve(id, team.ID, accept, team.TitleID); err != nil {
		if errors.Is(err, repository.ErrNoRowsUpdated) {
			return nil, apperrors.ErrSubmissionResolved
		}
		if errors.Is(err, repository.ErrTitleUnavailable) {
			return nil, apperrors.ErrTitleTaken
		}
		return nil, fmt.Errorf("failed to resolve submission: %w", err)
	}

	submission.Accepted = &accept
	return toSubmissionResponse(submission), nil
}

// List returns submissions visible to the caller: those where the caller's
// team is submitter or target. Third parties see nothing.
func (s *SubmissionService) List(user *models.User) ([]SubmissionShortResponse, error) {
	if !user.HasTeam() {
		return nil, apperrors.ErrUserHasNoTeam
	}

	submissions, err := s.repo.ListInvolvingTeam(*user.TeamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}

	responses := make([]SubmissionShortResponse, 0, len(submissions))
	for i := range submissions {
		responses = append(responses, *toSubmissionShortResponse(&submissions[i]))
	}
	return responses, nil
}

// GetByID retrieves a submission under the same mutual-visibility gate as
// List.
func (s *SubmissionService) GetByID(id uuid.UUID, user *models.User) (*SubmissionResponse, error) {
	if !user.HasTeam() {
		return nil, apperrors.ErrUserHasNoTeam
	}

	submission, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}

	teamID := *user.TeamID
	if submission.TeamID != teamID && submission.TeamTargetID != teamID {
		return nil, apperrors.ErrSubmissionNotFound
	}
	return toSubmissionResponse(submission), nil
}

// AdminGetAll retrieves all submissions regardless of team
func (s *SubmissionService) AdminGetAll() ([]SubmissionShortResponse, error) {
	submissions, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}

	responses := make([]SubmissionShortResponse, 0, len(submissions))
	for i := range submissions {
		responses = append(responses, *toSubmissionShortResponse(&submissions[i]))
	}
	return responses, nil
}

// AdminGetByID retrieves a submission bypassing the visibility gate
func (s *SubmissionService) AdminGetByID(id uuid.UUID) (*SubmissionResponse, error) {
	submission, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}
	return toSubmissionResponse(submission), nil
}

// AdminDelete removes a submission and cleans up its grand design artifact.
func (s *SubmissionService) AdminDelete(ctx context.Context, id uuid.UUID) error {
	submission, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrSubmissionNotFound
		}
		return fmt.Errorf("failed to get submission: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete submission: %w", err)
	}

	if key := storage.KeyFromURL(submission.GrandDesignURL); key != "" {
		if err := s.store.Delete(ctx, key); err != nil {
			s.log.WithField("submission_id", id).Warnf("artifact cleanup failed: %v", err)
		}
	}
	return nil
}

func toSubmissionResponse(submission *models.Submission) *SubmissionResponse {
	return &SubmissionResponse{
		ID:             submission.ID,
		TeamID:         submission.TeamID,
		TeamTargetID:   submission.TeamTargetID,
		GrandDesignURL: submission.GrandDesignURL,
		Accepted:       submission.Accepted,
	}
}

func toSubmissionShortResponse(submission *models.Submission) *SubmissionShortResponse {
	return &SubmissionShortResponse{
		ID:           submission.ID,
		TeamID:       submission.TeamID,
		TeamTargetID: submission.TeamTargetID,
		Accepted:     submission.Accepted,
	}
}
