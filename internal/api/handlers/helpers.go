package handlers

import (
	"errors"
	"net/http"

	apperrors "capstone-portal-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// handleServiceError maps service-layer errors onto HTTP statuses. The
// mapping is by error kind, so new sentinels in the errors package get the
// right status without touching every handler.
func handleServiceError(c *gin.Context, err error) {
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsAlreadyExists(err), apperrors.IsInvalidState(err), apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsAuthentication(err), apperrors.IsAuthorization(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case isValidatorError(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func isValidatorError(err error) bool {
	var verr validator.ValidationErrors
	return errors.As(err, &verr)
}
