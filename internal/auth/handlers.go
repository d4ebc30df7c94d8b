package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"net/http"

	apperrors "capstone-portal-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

const stateCookieName = "oauth_state"

// Handler handles HTTP requests for authentication
type Handler struct {
	service *Service
	google  *GoogleProvider
}

// NewHandler creates a new auth handler
func NewHandler(service *Service, google *GoogleProvider) *Handler {
	return &Handler{
		service: service,
		google:  google,
	}
}

// Signup handles POST /api/auth/signup
// @Summary Register with email and password
// @Description Create a new account and return a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body SignupRequest true "Signup data"
// @Success 201 {object} TokenResponse "Account created"
// @Failure 400 {object} map[string]interface{} "Invalid request or email already registered"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/auth/signup [post]
func (h *Handler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.service.SignupPassword(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserExists) || apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Signin handles POST /api/auth/signin
// @Summary Sign in with email and password
// @Description Authenticate and return a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body SigninRequest true "Signin data"
// @Success 200 {object} TokenResponse "Authenticated"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 401 {object} map[string]interface{} "Invalid credentials"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/auth/signin [post]
func (h *Handler) Signin(c *gin.Context) {
	var req SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.service.SigninPassword(&req)
	if err != nil {
		if apperrors.IsAuthentication(err) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GoogleStart handles GET /api/auth/google
// @Summary Start Google sign-in
// @Description Redirect to the Google consent page
// @Tags auth
// @Success 307 "Redirect to Google"
// @Router /api/auth/google [get]
func (h *Handler) GoogleStart(c *gin.Context) {
	state, err := newState()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate state"})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(stateCookieName, state, 300, "/", "", false, true)
	c.Redirect(http.StatusTemporaryRedirect, h.google.AuthURL(state))
}

// GoogleCallback handles GET /api/auth/google/callback
// @Summary Complete Google sign-in
// @Description Exchange the authorization code and return a bearer token
// @Tags auth
// @Produce json
// @Param state query string true "Anti-CSRF state"
// @Param code query string true "Authorization code"
// @Success 200 {object} TokenResponse "Authenticated"
// @Failure 400 {object} map[string]interface{} "State mismatch or missing code"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/auth/google/callback [get]
func (h *Handler) GoogleCallback(c *gin.Context) {
	expected, err := c.Cookie(stateCookieName)
	if err != nil || expected == "" || c.Query("state") != expected {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid oauth state"})
		return
	}
	c.SetCookie(stateCookieName, "", -1, "/", "", false, true)

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing authorization code"})
		return
	}

	profile, err := h.google.Exchange(c.Request.Context(), code)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.service.FindOrCreateGoogle(profile.ID, profile.Email, profile.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

func newState() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
