package models

import (
	"github.com/google/uuid"
)

// TeamCategory is the closed set of capstone categories a team is created in.
type TeamCategory string

const (
	CategoryKesehatan         TeamCategory = "Kesehatan"
	CategoryPengelolaanSampah TeamCategory = "Pengelolaan Sampah"
	CategorySmartCity         TeamCategory = "Smart City"
	CategoryTransportasi      TeamCategory = "Transportasi Ramah Lingkungan"
)

// IsValid checks if the TeamCategory is valid
func (c TeamCategory) IsValid() bool {
	switch c {
	case CategoryKesehatan, CategoryPengelolaanSampah, CategorySmartCity, CategoryTransportasi:
		return true
	}
	return false
}

// Team represents a capstone team scoped to a single period. The leader is
// whoever holds LeaderEmail; it is matched against the caller's email on
// every leader-gated action rather than stored as a role. TitleID is the
// authoritative owning edge to the team's title; its unique index guarantees
// a title is owned by at most one team.
type Team struct {
	BaseModel
	Name        string       `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	LeaderEmail string       `json:"leader_email" gorm:"not null;size:255" validate:"required,email,max=255"`
	Category    TeamCategory `json:"category" gorm:"type:varchar(50);not null" validate:"required"`
	Period      int          `json:"period" gorm:"not null;index"`
	JoinCode    string       `json:"join_code,omitempty" gorm:"uniqueIndex:idx_teams_join_code;not null;size:12"`
	TitleID     *uuid.UUID   `json:"title_id,omitempty" gorm:"type:uuid;uniqueIndex:idx_teams_title_id"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}

// IsLeader reports whether the given user leads this team.
func (t *Team) IsLeader(u *User) bool {
	return u != nil && u.Email == t.LeaderEmail
}
