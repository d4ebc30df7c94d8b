package auth_test

import (
	"testing"

	"capstone-portal-backend/internal/auth"
	"capstone-portal-backend/internal/config"
	"capstone-portal-backend/internal/database/models"
	apperrors "capstone-portal-backend/internal/errors"
	"capstone-portal-backend/internal/repository"
	"capstone-portal-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// AuthServiceTestSuite defines the test suite for the auth Service
type AuthServiceTestSuite struct {
	suite.Suite
	db          *gorm.DB
	userRepo    *repository.UserRepository
	authService *auth.Service
}

// SetupTest sets up the test suite
func (suite *AuthServiceTestSuite) SetupTest() {
	suite.db = testutils.NewTestDB(suite.T())
	suite.userRepo = repository.NewUserRepository(suite.db)
	suite.authService = auth.NewService(suite.userRepo, validator.New(), &config.Config{
		JWTSecret:     "test-secret",
		JWTExpiryHour: 1,
	})
}

// TestSignupAndSignin tests the password round trip
func (suite *AuthServiceTestSuite) TestSignupAndSignin() {
	resp, err := suite.authService.SignupPassword(&auth.SignupRequest{
		Name:     "Dina",
		Email:    "Dina@Example.com",
		Password: "correct horse battery",
	})
	suite.NoError(err)
	suite.NotEmpty(resp.Token)
	suite.Equal("dina@example.com", resp.User.Email)

	signin, err := suite.authService.SigninPassword(&auth.SigninRequest{
		Email:    "dina@example.com",
		Password: "correct horse battery",
	})
	suite.NoError(err)
	suite.NotEmpty(signin.Token)
}

// TestSignupDuplicateEmail tests that a registered email cannot sign up again
func (suite *AuthServiceTestSuite) TestSignupDuplicateEmail() {
	req := &auth.SignupRequest{
		Name:     "Dina",
		Email:    "dina@example.com",
		Password: "correct horse battery",
	}
	_, err := suite.authService.SignupPassword(req)
	suite.NoError(err)

	_, err = suite.authService.SignupPassword(req)
	suite.ErrorIs(err, apperrors.ErrUserExists)
}

// TestSigninWrongPassword tests that a wrong password is rejected
func (suite *AuthServiceTestSuite) TestSigninWrongPassword() {
	_, err := suite.authService.SignupPassword(&auth.SignupRequest{
		Name:     "Dina",
		Email:    "dina@example.com",
		Password: "correct horse battery",
	})
	suite.NoError(err)

	_, err = suite.authService.SigninPassword(&auth.SigninRequest{
		Email:    "dina@example.com",
		Password: "wrong password",
	})
	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
}

// TestSigninUnknownEmail tests that unknown emails fail the same way as
// wrong passwords
func (suite *AuthServiceTestSuite) TestSigninUnknownEmail() {
	_, err := suite.authService.SigninPassword(&auth.SigninRequest{
		Email:    "nobody@example.com",
		Password: "whatever pass",
	})
	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
}

// TestTokenRoundTrip tests generation and validation of a bearer token
func (suite *AuthServiceTestSuite) TestTokenRoundTrip() {
	user := testutils.CreateUser(suite.T(), suite.db)

	token, err := suite.authService.GenerateToken(user)
	suite.NoError(err)

	claims, err := suite.authService.ValidateToken(token)
	suite.NoError(err)
	suite.Equal(user.ID.String(), claims.Subject)
	suite.Equal(user.Email, claims.Email)
}

// TestValidateGarbageToken tests rejection of malformed tokens
func (suite *AuthServiceTestSuite) TestValidateGarbageToken() {
	_, err := suite.authService.ValidateToken("not.a.token")
	suite.ErrorIs(err, apperrors.ErrInvalidToken)
}

// TestFindOrCreateGoogleCreates tests first federated login
func (suite *AuthServiceTestSuite) TestFindOrCreateGoogleCreates() {
	resp, err := suite.authService.FindOrCreateGoogle("google-sub-1", "Gina@Example.com", "Gina")
	suite.NoError(err)
	suite.Equal("gina@example.com", resp.User.Email)

	user, err := suite.userRepo.GetByEmail("gina@example.com")
	suite.NoError(err)
	suite.NotNil(user.GoogleID)
	suite.Equal("google-sub-1", *user.GoogleID)
}

// TestFindOrCreateGoogleLinksExisting tests that a password account with the
// same email is linked instead of duplicated
func (suite *AuthServiceTestSuite) TestFindOrCreateGoogleLinksExisting() {
	_, err := suite.authService.SignupPassword(&auth.SignupRequest{
		Name:     "Gina",
		Email:    "gina@example.com",
		Password: "correct horse battery",
	})
	suite.NoError(err)

	_, err = suite.authService.FindOrCreateGoogle("google-sub-2", "gina@example.com", "Gina")
	suite.NoError(err)

	var count int64
	suite.NoError(suite.db.Model(&models.User{}).Count(&count).Error)
	suite.Equal(int64(1), count)

	user, err := suite.userRepo.GetByEmail("gina@example.com")
	suite.NoError(err)
	suite.NotNil(user.GoogleID)
	suite.NotNil(user.PasswordHash)
}

// TestAuthServiceTestSuite runs the test suite
func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
