package models

import (
	"github.com/google/uuid"
)

// User represents a portal account. Exactly one credential method is
// required: a password hash for local accounts or a Google subject ID for
// federated ones.
type User struct {
	BaseModel
	Name         string     `json:"name" gorm:"not null;size:100" validate:"required,max=100"`
	Email        string     `json:"email" gorm:"uniqueIndex:idx_users_email;not null;size:255" validate:"required,email,max=255"`
	PasswordHash *string    `json:"-" gorm:"size:255"`
	GoogleID     *string    `json:"google_id,omitempty" gorm:"size:255"`
	TeamID       *uuid.UUID `json:"team_id,omitempty" gorm:"type:uuid;index"`
	ResumeURL    string     `json:"resume_url,omitempty" gorm:"size:500"`
	IsAdmin      bool       `json:"is_admin" gorm:"not null;default:false"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// HasTeam reports whether the user currently belongs to a team.
func (u *User) HasTeam() bool {
	return u.TeamID != nil && *u.TeamID != uuid.Nil
}
