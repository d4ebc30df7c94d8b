package auth

import (
	"capstone-portal-backend/internal/database/models"

	"github.com/gin-gonic/gin"
)

// CurrentUser returns the authenticated user loaded by RequireAuth, or nil
// when the request is unauthenticated.
func CurrentUser(c *gin.Context) *models.User {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil
	}
	user, ok := value.(*models.User)
	if !ok {
		return nil
	}
	return user
}
