package service

import (
	"errors"
	"fmt"

	"capstone-portal-backend/internal/database/models"
	apperrors "capstone-portal-backend/internal/errors"
	"capstone-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserService handles business logic for user profiles
type UserService struct {
	repo      repository.UserRepositoryInterface
	validator *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface, validator *validator.Validate) *UserService {
	return &UserService{repo: repo, validator: validator}
}

// UpdateUserRequest represents a partial profile update; empty fields are
// left unchanged
type UpdateUserRequest struct {
	Name      string `json:"name" validate:"omitempty,max=100"`
	ResumeURL string `json:"resume_url" validate:"omitempty,url,max=500"`
}

// UserResponse represents the response for user operations
type UserResponse struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	TeamID    *uuid.UUID `json:"team_id,omitempty"`
	ResumeURL string     `json:"resume_url,omitempty"`
	IsAdmin   bool       `json:"is_admin"`
}

// UserShortResponse is the directory projection of a user
type UserShortResponse struct {
	ID     uuid.UUID  `json:"id"`
	Name   string     `json:"name"`
	Email  string     `json:"email"`
	TeamID *uuid.UUID `json:"team_id,omitempty"`
}

// GetByID retrieves a user profile
func (s *UserService) GetByID(id uuid.UUID) (*UserResponse, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return toUserResponse(user), nil
}

// Update modifies the caller's own profile
func (s *UserService) Update(user *models.User, req *UpdateUserRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.ResumeURL != "" {
		user.ResumeURL = req.ResumeURL
	}

	if err := s.repo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return toUserResponse(user), nil
}

// ListShort retrieves the user directory
func (s *UserService) ListShort() ([]UserShortResponse, error) {
	users, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]UserShortResponse, 0, len(users))
	for i := range users {
		responses = append(responses, *toUserShortResponse(&users[i]))
	}
	return responses, nil
}

// TeamMembers retrieves the members of the caller's team
func (s *UserService) TeamMembers(user *models.User) ([]UserShortResponse, error) {
	if !user.HasTeam() {
		return nil, apperrors.ErrUserHasNoTeam
	}

	users, err := s.repo.GetByTeamID(*user.TeamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}

	responses := make([]UserShortResponse, 0, len(users))
	for i := range users {
		responses = append(responses, *toUserShortResponse(&users[i]))
	}
	return responses, nil
}

// AdminDelete removes a user account
func (s *UserService) AdminDelete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

func toUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		TeamID:    user.TeamID,
		ResumeURL: user.ResumeURL,
		IsAdmin:   user.IsAdmin,
	}
}

func toUserShortResponse(user *models.User) *UserShortResponse {
	return &UserShortResponse{
		ID:     user.ID,
		Name:   user.Name,
		Email:  user.Email,
		TeamID: user.TeamID,
	}
}
