package repository

import (
	"capstone-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubmissionRepository handles database operations for submissions
type SubmissionRepository struct {
	db *gorm.DB
}

// NewSubmissionRepository creates a new submission repository
func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

// Create creates a new submission. The compound unique index on
// (team_id, team_target_id) is the authoritative duplicate guard; a
// concurrent duplicate insert returns gorm.ErrDuplicatedKey.
func (r *SubmissionRepository) Create(submission *models.Submission) error {
	return r.db.Create(submission).Error
}

// GetByID retrieves a submission by ID
func (r *SubmissionRepository) GetByID(id uuid.UUID) (*models.Submission, error) {
	var submission models.Submission
	err := r.db.First(&submission, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &submission, nil
}

// GetByPair retrieves the submission for an ordered (team, target) pair
func (r *SubmissionRepository) GetByPair(teamID, targetTeamID uuid.UUID) (*models.Submission, error) {
	var submission models.Submission
	err := r.db.First(&submission, "team_id = ? AND team_target_id = ?", teamID, targetTeamID).Error
	if err != nil {
		return nil, err
	}
	return &submission, nil
}

// GetAcceptedByPair retrieves an accepted submission for the ordered pair,
// used by the proposal visibility gate.
func (r *SubmissionRepository) GetAcceptedByPair(teamID, targetTeamID uuid.UUID) (*models.Submission, error) {
	var submission models.Submission
	err := r.db.First(&submission,
		"team_id = ? AND team_target_id = ? AND accepted = ?", teamID, targetTeamID, true).Error
	if err != nil {
		return nil, err
	}
	return &submission, nil
}

// ListInvolvingTeam retrieves submissions where the team is submitter or target
func (r *SubmissionRepository) ListInvolvingTeam(teamID uuid.UUID) ([]models.Submission, error) {
	var submissions []models.Submission
	err := r.db.Where("team_id = ? OR team_target_id = ?", teamID, teamID).Find(&submissions).Error
	return submissions, err
}

// ListTargetingTeam retrieves submissions targeting the given team
func (r *SubmissionRepository) ListTargetingTeam(targetTeamID uuid.UUID) ([]models.Submission, error) {
	var submissions []models.Submission
	err := r.db.Where("team_target_id = ?", targetTeamID).Find(&submissions).Error
	return submissions, err
}

// ExistsTargetingTeam reports whether any submission targets the given team
func (r *SubmissionRepository) ExistsTargetingTeam(targetTeamID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.Submission{}).
		Where("team_target_id = ?", targetTeamID).
		Count(&count).Error
	return count > 0, err
}

// GetAll retrieves all submissions
func (r *SubmissionRepository) GetAll() ([]models.Submission, error) {
	var submissions []models.Submission
	err := r.db.Find(&submissions).Error
	return submissions, err
}

// Resolve records the target team's response. The update only matches a
// still-pending submission addressed to the given target, making the
// PENDING -> ACCEPTED/DECLINED transition terminal even under concurrent
// responses. On acceptance the title is claimed with a second conditional
// update in the same transaction, so accepting two pending submissions for
// the same title cannot both succeed: the loser rolls back and stays
// pending.
func (r *SubmissionRepository) Resolve(id, targetTeamID uuid.UUID, accept bool, titleID *uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Submission{}).
			Where("id = ? AND team_target_id = ? AND accepted IS NULL", id, targetTeamID).
			Update("accepted", accept)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNoRowsUpdated
		}
		if accept && titleID != nil {
			res = tx.Model(&models.Title{}).
				Where("id = ? AND is_taken = ?", *titleID, false).
				Update("is_taken", true)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return ErrTitleUnavailable
			}
		}
		return nil
	})
}

// Delete deletes a submission
func (r *SubmissionRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Submission{}, "id = ?", id).Error
}
