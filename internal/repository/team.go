package repository

import (
	"capstone-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create creates a new team
func (r *TeamRepository) Create(team *models.Team) error {
	return r.db.Create(team).Error
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByJoinCode retrieves a team by its join code
func (r *TeamRepository) GetByJoinCode(code string) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "join_code = ?", code).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByTitleID retrieves the team owning the given title. Ownership is the
// Team→Title edge, so the owner is found by query instead of a back-pointer
// on the title.
func (r *TeamRepository) GetByTitleID(titleID uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "title_id = ?", titleID).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetAll retrieves all teams across all periods
func (r *TeamRepository) GetAll() ([]models.Team, error) {
	var teams []models.Team
	err := r.db.Find(&teams).Error
	return teams, err
}

// Update updates a team
func (r *TeamRepository) Update(team *models.Team) error {
	return r.db.Save(team).Error
}

// DeleteCascade deletes a team and clears the team reference on all of its
// members in one transaction.
func (r *TeamRepository) DeleteCascade(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.User{}).
			Where("team_id = ?", id).
			Update("team_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Team{}, "id = ?", id).Error
	})
}
