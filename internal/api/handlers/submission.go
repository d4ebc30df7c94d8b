package handlers

import (
	"net/http"

	"capstone-portal-backend/internal/auth"
	"capstone-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SubmissionHandler handles HTTP requests for submission operations
type SubmissionHandler struct {
	submissionService *service.SubmissionService
}

// NewSubmissionHandler creates a new submission handler
func NewSubmissionHandler(submissionService *service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{
		submissionService: submissionService,
	}
}

// ListSubmissions handles GET /api/v1/submissions
// @Summary List submissions involving the caller's team
// @Description Get submissions where the caller's team is submitter or target
// @Tags submissions
// @Produce json
// @Success 200 {array} service.SubmissionShortResponse "Successfully retrieved submissions"
// @Failure 400 {object} map[string]interface{} "User does not belong to a team"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /api/v1/submissions [get]
func (h *SubmissionHandler) ListSubmissions(c *gin.Context) {
	submissions, err := h.submissionService.List(auth.CurrentUser(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, submissions)
}

// GetSubmission handles GET /api/v1/submissions/:id
// @Summary Get submission by ID
// @Description Get a submission. Visible only to the submitting and target teams.
// @Tags submissions
// @Produce json
// @Param id path string true "Submission ID (UUID)"
// @Success 200 {object} service.SubmissionResponse "Successfully retrieved submission"
// @Failure 400 {object} map[string]interface{} "Invalid submission ID"
// @Failure 404 {object} map[string]interface{} "Submission not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /api/v1/submissions/{id} [get]
func (h *SubmissionHandler) GetSubmission(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid submission ID"})
		return
	}

	submission, err := h.submissionService.GetByID(id, auth.CurrentUser(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, submission)
}

// CreateSubmission handles POST /api/v1/submissions
// @Summary Submit a grand design to another team's title
// @Description Create an adoption request targeting another team. Only the team leader may submit, once per target.
// @Tags submissions
// @Accept json
// @Produce json
// @Param submission body service.CreateSubmissionRequest true "Submission data"
// @Success 201 {object} service.SubmissionResponse "Successfully created submission"
// @Failure 400 {object} map[string]interface{} "Invalid request or workflow rule violated"
// @Failure 401 {object} map[string]interface{} "Only the team leader can create submissions"
// @Failure 404 {object} map[string]interface{} "Target team not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /api/v1/submissions [post]
func (h *SubmissionHandler) CreateSubmission(c *gin.Context) {
	var req service.CreateSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	submission, err := h.submissionService.Create(auth.CurrentUser(c), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, submission)
}

// RespondSubmission handles POST /api/v1/submissions/:id/respond
// @Summary Accept or decline a submission
// @Description Resolve a pending submission targeting the caller's team. Resolution is final.
// @Tags submissions
// @Accept json
// @Produce json
// @Param id path string true "Submission ID (UUID)"
// @Param response body service.RespondSubmissionRequest true "Accept or decline"
// @Success 200 {object} service.SubmissionResponse "Submission resolved"
// @Failure 400 {object} map[string]interface{} "Submission already resolved or title already taken"
// @Failure 401 {object} map[string]interface{} "Only the team leader can respond to submissions"
// @Failure 404 {object} map[string]interface{} "Submission not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /api/v1/submissions/{id}/respond [post]
func (h *SubmissionHandler) RespondSubmission(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid submission ID"})
		return
	}

	var req service.RespondSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	submission, err := h.submissionService.Respond(id, auth.CurrentUser(c), req.Accept)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, submission)
}

// AdminGetAllSubmissions handles GET /api/v1/admin/submissions
// @Summary List all submissions (admin)
// @Tags admin
// @Produce json
// @Success 200 {array} service.SubmissionShortResponse "Successfully retrieved submissions"
// @Failure 401 {object} map[string]interface{} "Admin privileges required"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /api/v1/admin/submissions [get]
func (h *SubmissionHandler) AdminGetAllSubmissions(c *gin.Context) {
	submissions, err := h.submissionService.AdminGetAll()
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, submissions)
}

// AdminGetSubmission handles GET /api/v1/admin/submissions/:id
// @Summary Get a submission bypassing the visibility gate (admin)
// @Tags admin
// @Produce json
// @Param id path string true "Submission ID (UUID)"
// @Success 200 {object} service.SubmissionResponse "Successfully retrieved submission"
// @Failure 400 {object} map[string]interface{} "Invalid submission ID"
// @Failure 404 {object} map[string]interface{} "Submission not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /api/v1/admin/submissions/{id} [get]
func (h *SubmissionHandler) AdminGetSubmission(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid submission ID"})
		return
	}

	submission, err := h.submissionService.AdminGetByID(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, submission)
}

// AdminDeleteSubmission handles DELETE /api/v1/admin/submissions/:id
// @Summary Delete a submission (admin)
// @Description Delete a submission and clean up its stored grand design
// @Tags admin
// @Produce json
// @Param id path string true "Submission ID (UUID)"
// @Success 204 "Submission deleted"
// @Failure 400 {object} map[string]interface{} "Invalid submission ID"
// @Failure 404 {object} map[string]interface{} "Submission not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /api/v1/admin/submissions/{id} [delete]
func (h *SubmissionHandler) AdminDeleteSubmission(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid submission ID"})
		return
	}

	if err := h.submissionService.AdminDelete(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
