package handlers

import (
	"net/http"

	"capstone-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PeriodHandler handles HTTP requests for the period counter
type PeriodHandler struct {
	periodService *service.PeriodService
}

// NewPeriodHandler creates a new period handler
func NewPeriodHandler(periodService *service.PeriodService) *PeriodHandler {
	return &PeriodHandler{
		periodService: periodService,
	}
}

// GetPeriod handles GET /api/v1/period
// @Summary Get the current period
// @Tags period
// @Produce json
// @Success 200 {object} service.PeriodResponse "Current period"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /api/v1/period [get]
func (h *PeriodHandler) GetPeriod(c *gin.Context) {
	period, err := h.periodService.Current()
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, service.PeriodResponse{CurrentPeriod: period})
}
