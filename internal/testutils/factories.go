package testutils

import (
	"fmt"
	"sync/atomic"
	"testing"

	"capstone-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var seq int64

func next() int64 {
	return atomic.AddInt64(&seq, 1)
}

// CreateUser inserts a user with a unique email
func CreateUser(t *testing.T, db *gorm.DB, mutate ...func(*models.User)) *models.User {
	t.Helper()

	n := next()
	user := &models.User{
		Name:  fmt.Sprintf("User %d", n),
		Email: fmt.Sprintf("user%d@example.com", n),
	}
	for _, m := range mutate {
		m(user)
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return user
}

// CreateAdmin inserts an admin user
func CreateAdmin(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	return CreateUser(t, db, func(u *models.User) {
		u.IsAdmin = true
	})
}

// CreateTeam inserts a team and a leader user who is a member of it. It
// returns both; the leader's email matches the team's leader email.
func CreateTeam(t *testing.T, db *gorm.DB, period int, mutate ...func(*models.Team)) (*models.Team, *models.User) {
	t.Helper()

	n := next()
	team := &models.Team{
		Name:        fmt.Sprintf("Team %d", n),
		LeaderEmail: fmt.Sprintf("leader%d@example.com", n),
		Category:    models.CategorySmartCity,
		Period:      period,
		JoinCode:    fmt.Sprintf("CODE%04d", n%10000),
	}
	for _, m := range mutate {
		m(team)
	}
	if err := db.Create(team).Error; err != nil {
		t.Fatalf("failed to create team: %v", err)
	}

	leader := CreateUser(t, db, func(u *models.User) {
		u.Email = team.LeaderEmail
		u.TeamID = &team.ID
	})
	return team, leader
}

// AddMember inserts a user belonging to the given team
func AddMember(t *testing.T, db *gorm.DB, team *models.Team) *models.User {
	t.Helper()
	return CreateUser(t, db, func(u *models.User) {
		u.TeamID = &team.ID
	})
}

// CreateTitle inserts a title and assigns it to the owning team
func CreateTitle(t *testing.T, db *gorm.DB, owner *models.Team, mutate ...func(*models.Title)) *models.Title {
	t.Helper()

	n := next()
	title := &models.Title{
		Title:           fmt.Sprintf("Title %d", n),
		ShortDesc:       "A short description",
		LongDescription: "A long description of the project",
		PhotoURL:        fmt.Sprintf("https://cdn.example.com/file/photos/%d.png", n),
		ProposalURL:     fmt.Sprintf("https://cdn.example.com/file/proposals/%d.pdf", n),
		Period:          owner.Period,
	}
	for _, m := range mutate {
		m(title)
	}
	if err := db.Create(title).Error; err != nil {
		t.Fatalf("failed to create title: %v", err)
	}

	owner.TitleID = &title.ID
	if err := db.Model(owner).Update("title_id", title.ID).Error; err != nil {
		t.Fatalf("failed to assign title to team: %v", err)
	}
	return title
}

// CreateSubmission inserts a submission from team to target
func CreateSubmission(t *testing.T, db *gorm.DB, team, target *models.Team, mutate ...func(*models.Submission)) *models.Submission {
	t.Helper()

	n := next()
	submission := &models.Submission{
		TeamID:         team.ID,
		TeamTargetID:   target.ID,
		GrandDesignURL: fmt.Sprintf("https://cdn.example.com/file/designs/%d.pdf", n),
	}
	for _, m := range mutate {
		m(submission)
	}
	if err := db.Create(submission).Error; err != nil {
		t.Fatalf("failed to create submission: %v", err)
	}
	return submission
}

// SetPeriod forces the period singleton to the given value
func SetPeriod(t *testing.T, db *gorm.DB, period int) {
	t.Helper()

	cfg := &models.PeriodConfig{ConfigID: 1, CurrentPeriod: period}
	err := db.Where(&models.PeriodConfig{ConfigID: 1}).
		Assign(map[string]interface{}{"current_period": period}).
		FirstOrCreate(cfg).Error
	if err != nil {
		t.Fatalf("failed to set period: %v", err)
	}
}

// Reload fetches the given record again by primary key
func Reload[T any](t *testing.T, db *gorm.DB, id uuid.UUID) *T {
	t.Helper()

	var out T
	if err := db.First(&out, "id = ?", id).Error; err != nil {
		t.Fatalf("failed to reload record: %v", err)
	}
	return &out
}
