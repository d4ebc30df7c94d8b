package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"capstone-portal-backend/internal/auth"
	"capstone-portal-backend/internal/config"
	"capstone-portal-backend/internal/repository"
	"capstone-portal-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// AuthMiddlewareTestSuite defines the test suite for the auth middleware
type AuthMiddlewareTestSuite struct {
	suite.Suite
	db          *gorm.DB
	authService *auth.Service
	router      *gin.Engine
}

// SetupTest sets up a router with a protected and an admin route
func (suite *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.db = testutils.NewTestDB(suite.T())
	userRepo := repository.NewUserRepository(suite.db)
	suite.authService = auth.NewService(userRepo, validator.New(), &config.Config{
		JWTSecret:     "test-secret",
		JWTExpiryHour: 1,
	})

	suite.router = gin.New()
	protected := suite.router.Group("/", auth.RequireAuth(suite.authService, userRepo))
	protected.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": auth.CurrentUser(c).Email})
	})
	protected.GET("/admin", auth.RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
}

func (suite *AuthMiddlewareTestSuite) get(path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	suite.router.ServeHTTP(rec, req)
	return rec
}

// TestMissingHeader tests that unauthenticated requests are rejected
func (suite *AuthMiddlewareTestSuite) TestMissingHeader() {
	rec := suite.get("/me", "")
	suite.Equal(http.StatusUnauthorized, rec.Code)
}

// TestGarbageToken tests that malformed tokens are rejected
func (suite *AuthMiddlewareTestSuite) TestGarbageToken() {
	rec := suite.get("/me", "not.a.token")
	suite.Equal(http.StatusUnauthorized, rec.Code)
}

// TestValidToken tests that a valid token loads the user
func (suite *AuthMiddlewareTestSuite) TestValidToken() {
	user := testutils.CreateUser(suite.T(), suite.db)
	token, err := suite.authService.GenerateToken(user)
	suite.NoError(err)

	rec := suite.get("/me", token)

	suite.Equal(http.StatusOK, rec.Code)
	suite.Contains(rec.Body.String(), user.Email)
}

// TestDeletedUserRejected tests that a token for a removed account no longer
// works
func (suite *AuthMiddlewareTestSuite) TestDeletedUserRejected() {
	user := testutils.CreateUser(suite.T(), suite.db)
	token, err := suite.authService.GenerateToken(user)
	suite.NoError(err)

	suite.NoError(suite.db.Delete(user).Error)

	rec := suite.get("/me", token)
	suite.Equal(http.StatusUnauthorized, rec.Code)
}

// TestAdminGate tests that RequireAdmin rejects regular users and admits admins
func (suite *AuthMiddlewareTestSuite) TestAdminGate() {
	user := testutils.CreateUser(suite.T(), suite.db)
	userToken, err := suite.authService.GenerateToken(user)
	suite.NoError(err)

	admin := testutils.CreateAdmin(suite.T(), suite.db)
	adminToken, err := suite.authService.GenerateToken(admin)
	suite.NoError(err)

	suite.Equal(http.StatusUnauthorized, suite.get("/admin", userToken).Code)
	suite.Equal(http.StatusOK, suite.get("/admin", adminToken).Code)
}

// TestAuthMiddlewareTestSuite runs the test suite
func TestAuthMiddlewareTestSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}
