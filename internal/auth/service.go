package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"capstone-portal-backend/internal/config"
	"capstone-portal-backend/internal/database/models"
	apperrors "capstone-portal-backend/internal/errors"
	"capstone-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Claims is the JWT payload issued on login. Subject carries the user ID;
// the email is informational and re-verified against the database on every
// request.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Service handles signup, signin and token issuance
type Service struct {
	userRepo  repository.UserRepositoryInterface
	validator *validator.Validate
	secret    []byte
	expiry    time.Duration
}

// NewService creates a new auth service
func NewService(userRepo repository.UserRepositoryInterface, validator *validator.Validate, cfg *config.Config) *Service {
	return &Service{
		userRepo:  userRepo,
		validator: validator,
		secret:    []byte(cfg.JWTSecret),
		expiry:    time.Duration(cfg.JWTExpiryHour) * time.Hour,
	}
}

// SignupRequest represents the password signup request
type SignupRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// SigninRequest represents the password signin request
type SigninRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse carries the issued bearer token
type TokenResponse struct {
	Token string     `json:"token"`
	User  *UserBrief `json:"user"`
}

// UserBrief is the profile slice returned alongside a token
type UserBrief struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	IsAdmin bool      `json:"is_admin"`
}

// SignupPassword registers a new user with a password credential. Emails are
// stored lowercase so the unique index also catches case-variant duplicates.
func (s *Service) SignupPassword(req *SignupRequest) (*TokenResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	hashStr := string(hash)

	user := &models.User{
		Name:         req.Name,
		Email:        email,
		PasswordHash: &hashStr,
	}
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrUserExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.issueToken(user)
}

// SigninPassword authenticates a user with email and password. Lookup
// failures and wrong passwords collapse into the same error so the endpoint
// does not leak which emails are registered.
func (s *Service) SigninPassword(req *SigninRequest) (*TokenResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user.PasswordHash == nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueToken(user)
}

// FindOrCreateGoogle resolves a Google identity to a local account, creating
// one on first login. An existing password account with the same email is
// linked rather than duplicated.
func (s *Service) FindOrCreateGoogle(googleID, email, name string) (*TokenResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.GetByEmail(email)
	if err == nil {
		if user.GoogleID == nil {
			user.GoogleID = &googleID
			if err := s.userRepo.Update(user); err != nil {
				return nil, fmt.Errorf("failed to link google account: %w", err)
			}
		}
		return s.issueToken(user)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	user = &models.User{
		Name:     name,
		Email:    email,
		GoogleID: &googleID,
	}
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// lost a race against a concurrent first login
			user, err = s.userRepo.GetByEmail(email)
			if err != nil {
				return nil, fmt.Errorf("failed to get user: %w", err)
			}
			return s.issueToken(user)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.issueToken(user)
}

// GenerateToken issues a signed JWT for the user
func (s *Service) GenerateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses and verifies a bearer token, returning its claims
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}

func (s *Service) issueToken(user *models.User) (*TokenResponse, error) {
	token, err := s.GenerateToken(user)
	if err != nil {
		return nil, err
	}
	return &TokenResponse{
		Token: token,
		User: &UserBrief{
			ID:      user.ID,
			Name:    user.Name,
			Email:   user.Email,
			IsAdmin: user.IsAdmin,
		},
	}, nil
}
