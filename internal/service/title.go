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

// TitleService handles business logic for titles. A title's proposal
// document is confidential: it is disclosed only to the owning team and to
// teams whose adoption submission the owner accepted.
type TitleService struct {
	repo           repository.TitleRepositoryInterface
	teamRepo       repository.TeamRepositoryInterface
	submissionRepo repository.SubmissionRepositoryInterface
	periodRepo     repository.PeriodConfigRepositoryInterface
	store          storage.Store
	validator      *validator.Validate
	log            *logger.Logger
}

// NewTitleService creates a new title service
func NewTitleService(repo repository.TitleRepositoryInterface, teamRepo repository.TeamRepositoryInterface, submissionRepo repository.SubmissionRepositoryInterface, periodRepo repository.PeriodConfigRepositoryInterface, store storage.Store, validator *validator.Validate) *TitleService {
	return &TitleService{
		repo:           repo,
		teamRepo:       teamRepo,
		submissionRepo: submissionRepo,
		periodRepo:     periodRepo,
		store:          store,
		validator:      validator,
		log:            logger.New(),
	}
}

// CreateTitleRequest represents the request to create a title
type CreateTitleRequest struct {
	Title           string `json:"title" validate:"required,min=1,max=200"`
	ShortDesc       string `json:"short_desc" validate:"required,max=300"`
	LongDescription string `json:"long_description" validate:"required"`
	PhotoURL        string `json:"photo_url" validate:"required,url,max=500"`
	ProposalURL     string `json:"proposal_url" validate:"required,url,max=500"`
}

// UpdateTitleRequest represents a partial title update; empty fields are
// left unchanged. Period and is_taken are never client-writable.
type UpdateTitleRequest struct {
	Title           string `json:"title" validate:"omitempty,max=200"`
	ShortDesc       string `json:"short_desc" validate:"omitempty,max=300"`
	LongDescription string `json:"long_description"`
	PhotoURL        string `json:"photo_url" validate:"omitempty,url,max=500"`
	ProposalURL     string `json:"proposal_url" validate:"omitempty,url,max=500"`
}

// TitleResponse represents the full title detail. ProposalURL is omitted
// unless the requester passed the confidentiality gate.
type TitleResponse struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	ShortDesc       string    `json:"short_desc"`
	LongDescription string    `json:"long_description"`
	PhotoURL        string    `json:"photo_url"`
	ProposalURL     string    `json:"proposal_url,omitempty"`
	Period          int       `json:"period"`
	IsTaken         bool      `json:"is_taken"`
}

// TitleShortResponse is the public catalog projection: no proposal, no
// long description.
type TitleShortResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	ShortDesc string    `json:"short_desc"`
	PhotoURL  string    `json:"photo_url"`
}

// ListPublic returns the catalog open for adoption: titles from the
// previous period only. Current-period titles are still being authored and
// are not yet visible.
func (s *TitleService) ListPublic() ([]TitleShortResponse, error) {
	cfg, err := s.periodRepo.Get()
	if err != nil {
		return nil, fmt.Errorf("failed to read period config: %w", err)
	}

	titles, err := s.repo.GetByPeriod(cfg.CurrentPeriod - 1)
	if err != nil {
		return nil, fmt.Errorf("failed to list titles: %w", err)
	}

	responses := make([]TitleShortResponse, 0, len(titles))
	for i := range titles {
		responses = append(responses, *toShortResponse(&titles[i]))
	}
	return responses, nil
}

// GetByID retrieves a title. The proposal URL is included only when the
// requester's team owns the title or holds an accepted submission targeting
// the owner.
func (s *TitleService) GetByID(id uuid.UUID, requester *models.User) (*TitleResponse, error) {
	title, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTitleNotFound
		}
		return nil, fmt.Errorf("failed to get title: %w", err)
	}

	allowProposal, err := s.mayReadProposal(title.ID, requester)
	if err != nil {
		return nil, err
	}
	return toResponse(title, allowProposal), nil
}

func (s *TitleService) mayReadProposal(titleID uuid.UUID, requester *models.User) (bool, error) {
	if requester == nil || !requester.HasTeam() {
		return false, nil
	}

	owner, err := s.teamRepo.GetByTitleID(titleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to resolve title owner: %w", err)
	}

	if owner.ID == *requester.TeamID {
		return true, nil
	}

	_, err = s.submissionRepo.GetAcceptedByPair(*requester.TeamID, owner.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check accepted submission: %w", err)
	}
	return true, nil
}

// Create authors a title for the leader's team. The title inherits the
// team's period; the one-title-per-team invariant is enforced by the
// conditional ownership assignment in the repository.
func (s *TitleService) Create(user *models.User, req *CreateTitleRequest) (*TitleResponse, error) {
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
		return nil, apperrors.ErrNotTeamLeaderTitle
	}
	if team.TitleID != nil {
		return nil, apperrors.ErrTeamHasTitle
	}

	title := &models.Title{
		Title:           req.Title,
		ShortDesc:       req.ShortDesc,
		LongDescription: req.LongDescription,
		PhotoURL:        req.PhotoURL,
		ProposalURL:     req.ProposalURL,
		Period:          team.Period,
	}
	if err := s.repo.CreateForTeam(title, team.ID); err != nil {
		if errors.Is(err, repository.ErrNoRowsUpdated) {
			return nil, apperrors.ErrTeamHasTitle
		}
		return nil, fmt.Errorf("failed to create title: %w", err)
	}

	return toResponse(title, true), nil
}

// Update modifies a title before any adoption request references it. Once a
// submission targets the owning team the title is locked, so teams reviewing
// it cannot have it swapped out from under them.
func (s *TitleService) Update(id uuid.UUID, user *models.User, req *UpdateTitleRequest) (*TitleResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	title, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTitleNotFound
		}
		return nil, fmt.Errorf("failed to get title: %w", err)
	}

	owner, err := s.teamRepo.GetByTitleID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotTitleOwner
		}
		return nil, fmt.Errorf("failed to resolve title owner: %w", err)
	}
	if !owner.IsLeader(user) {
		return nil, apperrors.ErrNotTitleOwner
	}

	locked, err := s.submissionRepo.ExistsTargetingTeam(owner.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check submissions: %w", err)
	}
	if locked {
		return nil, apperrors.ErrTitleLocked
	}

	if req.Title != "" {
		title.Title = req.Title
	}
	if req.ShortDesc != "" {
		title.ShortDesc = req.ShortDesc
	}
	if req.LongDescription != "" {
		title.LongDescription = req.LongDescription
	}
	if req.PhotoURL != "" {
		title.PhotoURL = req.PhotoURL
	}
	if req.ProposalURL != "" {
		title.ProposalURL = req.ProposalURL
	}

	if err := s.repo.Update(title); err != nil {
		return nil, fmt.Errorf("failed to update title: %w", err)
	}
	return toResponse(title, true), nil
}

// AdminGetAll retrieves all titles across periods
func (s *TitleService) AdminGetAll() ([]TitleShortResponse, error) {
	titles, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list titles: %w", err)
	}

	responses := make([]TitleShortResponse, 0, len(titles))
	for i := range titles {
		responses = append(responses, *toShortResponse(&titles[i]))
	}
	return responses, nil
}

// AdminGetByID retrieves a title with all fields, bypassing the
// confidentiality gate.
func (s *TitleService) AdminGetByID(id uuid.UUID) (*TitleResponse, error) {
	title, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTitleNotFound
		}
		return nil, fmt.Errorf("failed to get title: %w", err)
	}
	return toResponse(title, true), nil
}

// AdminDelete removes a title and cascades: submissions targeting the
// owning team are deleted, the owner's title reference is cleared, and the
// stored artifacts are cleaned up afterwards. Artifact deletion is
// best-effort once the database cascade committed.
func (s *TitleService) AdminDelete(ctx context.Context, id uuid.UUID) error {
	title, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTitleNotFound
		}
		return fmt.Errorf("failed to get title: %w", err)
	}

	keys := []string{
		storage.KeyFromURL(title.PhotoURL),
		storage.KeyFromURL(title.ProposalURL),
	}

	var ownerID *uuid.UUID
	owner, err := s.teamRepo.GetByTitleID(id)
	if err == nil {
		ownerID = &owner.ID
		submissions, err := s.submissionRepo.ListTargetingTeam(owner.ID)
		if err != nil {
			return fmt.Errorf("failed to list dependent submissions: %w", err)
		}
		for i := range submissions {
			keys = append(keys, storage.KeyFromURL(submissions[i].GrandDesignURL))
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to resolve title owner: %w", err)
	}

	if err := s.repo.DeleteCascade(id, ownerID); err != nil {
		return fmt.Errorf("failed to delete title: %w", err)
	}

	if err := s.store.Delete(ctx, keys...); err != nil {
		s.log.WithField("title_id", id).Warnf("artifact cleanup failed: %v", err)
	}
	return nil
}

func toResponse(title *models.Title, includeProposal bool) *TitleResponse {
	resp := &TitleResponse{
		ID:              title.ID,
		Title:           title.Title,
		ShortDesc:       title.ShortDesc,
		LongDescription: title.LongDescription,
		PhotoURL:        title.PhotoURL,
		Period:          title.Period,
		IsTaken:         title.IsTaken,
	}
	if includeProposal {
		resp.ProposalURL = title.ProposalURL
	}
	return resp
}

func toShortResponse(title *models.Title) *TitleShortResponse {
	return &TitleShortResponse{
		ID:        title.ID,
		Title:     title.Title,
		ShortDesc: title.ShortDesc,
		PhotoURL:  title.PhotoURL,
	}
}
