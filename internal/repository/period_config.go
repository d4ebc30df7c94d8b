package repository

import (
	"errors"

	"capstone-portal-backend/internal/database/models"

	"gorm.io/gorm"
)

const singletonConfigID = 1

// PeriodConfigRepository handles the global period counter singleton
type PeriodConfigRepository struct {
	db *gorm.DB
}

// NewPeriodConfigRepository creates a new period config repository
func NewPeriodConfigRepository(db *gorm.DB) *PeriodConfigRepository {
	return &PeriodConfigRepository{db: db}
}

// Get returns the singleton row, creating it with period 0 on first access.
// Concurrent first access is safe: the unique index on config_id turns the
// losing insert into a duplicate-key error, which is retried as a read.
func (r *PeriodConfigRepository) Get() (*models.PeriodConfig, error) {
	var cfg models.PeriodConfig
	err := r.db.
		Where(models.PeriodConfig{ConfigID: singletonConfigID}).
		Attrs(models.PeriodConfig{CurrentPeriod: 0}).
		FirstOrCreate(&cfg).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		err = r.db.First(&cfg, "config_id = ?", singletonConfigID).Error
	}
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Advance atomically increments the current period and returns the new value.
func (r *PeriodConfigRepository) Advance() (int, error) {
	if _, err := r.Get(); err != nil {
		return 0, err
	}

	var cfg models.PeriodConfig
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.PeriodConfig{}).
			Where("config_id = ?", singletonConfigID).
			Update("current_period", gorm.Expr("current_period + 1")).Error; err != nil {
			return err
		}
		return tx.First(&cfg, "config_id = ?", singletonConfigID).Error
	})
	if err != nil {
		return 0, err
	}
	return cfg.CurrentPeriod, nil
}
