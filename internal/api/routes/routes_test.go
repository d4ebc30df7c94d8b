package routes_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"capstone-portal-backend/internal/api/routes"
	"capstone-portal-backend/internal/config"
	"capstone-portal-backend/internal/database/models"
	"capstone-portal-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// RoutesTestSuite drives the full matching workflow over HTTP: admin creates
// teams, leaders join and author titles, a later cohort submits and the
// owner responds.
type RoutesTestSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine
}

// SetupTest sets up the test suite
func (suite *RoutesTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.db = testutils.NewTestDB(suite.T())
	cfg := &config.Config{
		JWTSecret:      "test-secret",
		JWTExpiryHour:  1,
		AllowedOrigins: []string{"http://localhost:3000"},
	}
	suite.router = routes.SetupRoutes(suite.db, cfg, testutils.NewFakeStore())
}

func (suite *RoutesTestSuite) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	suite.router.ServeHTTP(rec, req)
	return rec
}

func (suite *RoutesTestSuite) decode(rec *httptest.ResponseRecorder, out interface{}) {
	suite.NoError(json.Unmarshal(rec.Body.Bytes(), out))
}

// signup registers a user over the API and returns their bearer token
func (suite *RoutesTestSuite) signup(name, email string) string {
	rec := suite.do(http.MethodPost, "/api/auth/signup", "", map[string]string{
		"name":     name,
		"email":    email,
		"password": "correct horse battery",
	})
	suite.Equal(http.StatusCreated, rec.Code)

	var resp struct {
		Token string `json:"token"`
	}
	suite.decode(rec, &resp)
	return resp.Token
}

// promote flips the admin flag directly in the database
func (suite *RoutesTestSuite) promote(email string) {
	err := suite.db.Model(&models.User{}).
		Where("email = ?", email).
		Update("is_admin", true).Error
	suite.NoError(err)
}

// TestHealth tests the health endpoint
func (suite *RoutesTestSuite) TestHealth() {
	rec := suite.do(http.MethodGet, "/health", "", nil)
	suite.Equal(http.StatusOK, rec.Code)
	suite.Contains(rec.Body.String(), "healthy")
}

// TestUnauthenticatedAccess tests that the API group is gated
func (suite *RoutesTestSuite) TestUnauthenticatedAccess() {
	rec := suite.do(http.MethodGet, "/api/v1/titles", "", nil)
	suite.Equal(http.StatusUnauthorized, rec.Code)
}

// TestAdminGate tests that admin routes reject regular users
func (suite *RoutesTestSuite) TestAdminGate() {
	token := suite.signup("Regular", "regular@example.com")

	rec := suite.do(http.MethodGet, "/api/v1/admin/teams", token, nil)
	suite.Equal(http.StatusUnauthorized, rec.Code)
}

// TestNoStandalonePeriodAdvance tests that the period counter cannot be
// moved outside the bulk team-creation flow
func (suite *RoutesTestSuite) TestNoStandalonePeriodAdvance() {
	adminToken := suite.signup("Admin", "advance-admin@example.com")
	suite.promote("advance-admin@example.com")

	rec := suite.do(http.MethodPost, "/api/v1/admin/period/advance", adminToken, nil)
	suite.Equal(http.StatusNotFound, rec.Code)
}

// TestUpload tests the artifact upload endpoint against the fake store
func (suite *RoutesTestSuite) TestUpload() {
	token := suite.signup("Uploader", "uploader@example.com")

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	suite.NoError(w.WriteField("kind", "proposal"))
	part, err := w.CreateFormFile("file", "proposal.pdf")
	suite.NoError(err)
	_, err = part.Write([]byte("%PDF-1.4"))
	suite.NoError(err)
	suite.NoError(w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/uploads", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	suite.router.ServeHTTP(rec, req)

	suite.Equal(http.StatusCreated, rec.Code)
	suite.Contains(rec.Body.String(), "https://cdn.example.com/file/proposals/")

	rec = suite.do(http.MethodPost, "/api/v1/uploads", token, nil)
	suite.Equal(http.StatusBadRequest, rec.Code)
}

// TestFullMatchingWorkflow walks the whole lifecycle end to end
func (suite *RoutesTestSuite) TestFullMatchingWorkflow() {
	adminToken := suite.signup("Admin", "admin@example.com")
	suite.promote("admin@example.com")

	ownerToken := suite.signup("Owner", "owner@example.com")
	submitterToken := suite.signup("Submitter", "submitter@example.com")

	// period 1: the owning cohort
	rec := suite.do(http.MethodPost, "/api/v1/admin/teams", adminToken, map[string]interface{}{
		"advance_period": true,
		"entries": []map[string]string{
			{"name": "Owners", "leader_email": "owner@example.com", "category": "Smart City"},
		},
	})
	suite.Equal(http.StatusCreated, rec.Code)

	var batch struct {
		SuccessCount int `json:"success_count"`
		Created      []struct {
			ID       string `json:"id"`
			JoinCode string `json:"join_code"`
		} `json:"created"`
	}
	suite.decode(rec, &batch)
	suite.Equal(1, batch.SuccessCount)
	ownerTeamID := batch.Created[0].ID

	rec = suite.do(http.MethodPost, "/api/v1/teams/join/"+batch.Created[0].JoinCode, ownerToken, nil)
	suite.Equal(http.StatusOK, rec.Code)

	// owner's leader authors the title
	rec = suite.do(http.MethodPost, "/api/v1/titles", ownerToken, map[string]string{
		"title":            "Smart Waste Routing",
		"short_desc":       "Routing for waste collection",
		"long_description": "Optimized pickup routes from fill-level sensors",
		"photo_url":        "https://cdn.example.com/file/photos/waste.png",
		"proposal_url":     "https://cdn.example.com/file/proposals/waste.pdf",
	})
	suite.Equal(http.StatusCreated, rec.Code)

	var title struct {
		ID string `json:"id"`
	}
	suite.decode(rec, &title)

	// period 2: the adopting cohort
	rec = suite.do(http.MethodPost, "/api/v1/admin/teams", adminToken, map[string]interface{}{
		"advance_period": true,
		"entries": []map[string]string{
			{"name": "Adopters", "leader_email": "submitter@example.com", "category": "Kesehatan"},
		},
	})
	suite.Equal(http.StatusCreated, rec.Code)
	suite.decode(rec, &batch)
	rec = suite.do(http.MethodPost, "/api/v1/teams/join/"+batch.Created[0].JoinCode, submitterToken, nil)
	suite.Equal(http.StatusOK, rec.Code)

	// the catalog now shows the period-1 title, without the proposal
	rec = suite.do(http.MethodGet, "/api/v1/titles", submitterToken, nil)
	suite.Equal(http.StatusOK, rec.Code)
	suite.Contains(rec.Body.String(), "Smart Waste Routing")
	suite.NotContains(rec.Body.String(), "proposal_url")

	// submit a grand design to the owner team
	rec = suite.do(http.MethodPost, "/api/v1/submissions", submitterToken, map[string]string{
		"team_target_id":   ownerTeamID,
		"grand_design_url": "https://cdn.example.com/file/designs/plan.pdf",
	})
	suite.Equal(http.StatusCreated, rec.Code)

	var submission struct {
		ID string `json:"id"`
	}
	suite.decode(rec, &submission)

	// a duplicate submission to the same target is rejected
	rec = suite.do(http.MethodPost, "/api/v1/submissions", submitterToken, map[string]string{
		"team_target_id":   ownerTeamID,
		"grand_design_url": "https://cdn.example.com/file/designs/plan2.pdf",
	})
	suite.Equal(http.StatusBadRequest, rec.Code)

	// the owner's leader accepts
	rec = suite.do(http.MethodPost, "/api/v1/submissions/"+submission.ID+"/respond", ownerToken, map[string]bool{
		"accept": true,
	})
	suite.Equal(http.StatusOK, rec.Code)

	// acceptance unlocks the proposal for the submitter
	rec = suite.do(http.MethodGet, "/api/v1/titles/"+title.ID, submitterToken, nil)
	suite.Equal(http.StatusOK, rec.Code)
	suite.Contains(rec.Body.String(), "proposals/waste.pdf")

	// responding again fails: the submission is terminal
	rec = suite.do(http.MethodPost, "/api/v1/submissions/"+submission.ID+"/respond", ownerToken, map[string]bool{
		"accept": false,
	})
	suite.Equal(http.StatusBadRequest, rec.Code)
	suite.Contains(rec.Body.String(), "already been responded to")
}

// TestRoutesTestSuite runs the test suite
func TestRoutesTestSuite(t *testing.T) {
	suite.Run(t, new(RoutesTestSuite))
}
