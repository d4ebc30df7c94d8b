package models

import (
	"github.com/google/uuid"
)

// Submission is a cross-team adoption request: TeamID asks to adopt
// TeamTargetID's title. Accepted is tri-state: nil while pending, then true
// or false once the target's leader responds; a resolved submission is
// terminal. The compound unique index on (team_id, team_target_id) enforces
// at most one submission per ordered pair at the storage layer, so
// concurrent duplicate inserts surface as a translated duplicate-key error
// instead of racing past an application-level existence check.
type Submission struct {
	BaseModel
	TeamID         uuid.UUID `json:"team_id" gorm:"type:uuid;not null;uniqueIndex:idx_submissions_pair;index"`
	TeamTargetID   uuid.UUID `json:"team_target_id" gorm:"type:uuid;not null;uniqueIndex:idx_submissions_pair;index"`
	GrandDesignURL string    `json:"grand_design_url" gorm:"not null;size:500" validate:"required,url,max=500"`
	Accepted       *bool     `json:"accepted,omitempty"`
}

// TableName returns the table name for Submission
func (Submission) TableName() string {
	return "submissions"
}

// IsPending reports whether the submission has not been responded to yet.
func (s *Submission) IsPending() bool {
	return s.Accepted == nil
}
