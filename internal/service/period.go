package service

import (
	"fmt"

	"capstone-portal-backend/internal/repository"
)

// PeriodService exposes the global period counter. Reads are idempotent;
// the counter only moves forward inside the admin bulk team-creation flow.
type PeriodService struct {
	repo repository.PeriodConfigRepositoryInterface
}

// NewPeriodService creates a new period service
func NewPeriodService(repo repository.PeriodConfigRepositoryInterface) *PeriodService {
	return &PeriodService{repo: repo}
}

// PeriodResponse represents the current period
type PeriodResponse struct {
	CurrentPeriod int `json:"current_period"`
}

// Current returns the current period, creating the singleton on first access.
func (s *PeriodService) Current() (int, error) {
	cfg, err := s.repo.Get()
	if err != nil {
		return 0, fmt.Errorf("failed to read period config: %w", err)
	}
	return cfg.CurrentPeriod, nil
}
