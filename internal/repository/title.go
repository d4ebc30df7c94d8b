package repository

import (
	"capstone-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TitleRepository handles database operations for titles
type TitleRepository struct {
	db *gorm.DB
}

// NewTitleRepository creates a new title repository
func NewTitleRepository(db *gorm.DB) *TitleRepository {
	return &TitleRepository{db: db}
}

// CreateForTeam inserts a title and assigns it to the team in one
// transaction. The assignment only matches a team whose title_id is still
// NULL, so two concurrent creates for the same team cannot both succeed;
// the loser gets ErrNoRowsUpdated and the insert is rolled back.
func (r *TitleRepository) CreateForTeam(title *models.Title, teamID uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(title).Error; err != nil {
			return err
		}
		res := tx.Model(&models.Team{}).
			Where("id = ? AND title_id IS NULL", teamID).
			Update("title_id", title.ID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNoRowsUpdated
		}
		return nil
	})
}

// GetByID retrieves a title by ID
func (r *TitleRepository) GetByID(id uuid.UUID) (*models.Title, error) {
	var title models.Title
	err := r.db.First(&title, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &title, nil
}

// GetByPeriod retrieves all titles belonging to the given period
func (r *TitleRepository) GetByPeriod(period int) ([]models.Title, error) {
	var titles []models.Title
	err := r.db.Where("period = ?", period).Find(&titles).Error
	return titles, err
}

// GetAll retrieves all titles across all periods
func (r *TitleRepository) GetAll() ([]models.Title, error) {
	var titles []models.Title
	err := r.db.Find(&titles).Error
	return titles, err
}

// Update updates a title
func (r *TitleRepository) Update(title *models.Title) error {
	return r.db.Save(title).Error
}

// DeleteCascade deletes a title together with its dependents: submissions
// targeting the owning team are removed and the owner's title reference is
// cleared. Artifact cleanup in object storage is the caller's concern.
func (r *TitleRepository) DeleteCascade(id uuid.UUID, ownerTeamID *uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if ownerTeamID != nil {
			if err := tx.Delete(&models.Submission{}, "team_target_id = ?", *ownerTeamID).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.Team{}).
				Where("id = ?", *ownerTeamID).
				Update("title_id", nil).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.Title{}, "id = ?", id).Error
	})
}
