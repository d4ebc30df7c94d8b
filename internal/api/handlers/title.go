package handlers

import (
	"net/http"

	"capstone-portal-backend/internal/auth"
	"capstone-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TitleHandler handles HTTP requests for title operations
type TitleHandler struct {
	titleService *service.TitleService
}

// NewTitleHandler creates a new title handler
func NewTitleHandler(titleService *service.TitleService) *TitleHandler {
	return &TitleHandler{
		titleService: titleService,
	}
}

// ListTitles handles GET /api/v1/titles
// @Summary List titles open for adoption
// @Description Get the public catalog: titles from the previous period, short projection only
// @Tags titles
// @Produce json
// @Success 200 {array} service.TitleShortResponse "Successfully retrieved titles"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /api/v1/titles [get]
func (h *TitleHandler) ListTitles(c *gin.Context) {
	titles, err := h.titleService.ListPublic()
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, titles)
}

// GetTitle handles GET /api/v1/titles/:id
// @Summary Get title by ID
// @Description Get a title. The proposal URL is included only for the owning team and teams with an accepted submission.
// @Tags titles
// @Produce json
// @Param id path string true "Title ID (UUID)"
// @Success 200 {object} service.TitleResponse "Successfully retrieved title"
// @Failure 400 {object} map[string]interface{} "Invalid title ID"
// @Failure 404 {object} map[string]interface{} "Title not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /api/v1/titles/{id} [get]
func (h *TitleHandler) GetTitle(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid title ID"})
		return
	}

	title, err := h.titleService.GetByID(id, auth.CurrentUser(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, title)
}

// CreateTitle handles POST /api/v1/titles
// @Summary Create a title for the caller's team
// @Description Author the team's title. Only the team leader may create, and a team holds at most one title.
// @Tags titles
// @Accept json
// @Produce json
// @Param title body service.CreateTitleRequest true "Title data"
// @Success 201 {object} service.TitleResponse "Successfully created title"
// @Failure 400 {object} map[string]interface{} "Invalid request or team already has a title"
// @Failure 401 {object} map[string]interface{} "Only the team leader can create a title"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /api/v1/titles [post]
func (h *TitleHandler) CreateTitle(c *gin.Context) {
	var req service.CreateTitleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	title, err := h.titleService.Create(auth.CurrentUser(c), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, title)
}

// UpdateTitle handles PATCH /api/v1/titles/:id
// @Summary Update a title
// @Description Update the team's title. Locked once any submission targets the owning team.
// @Tags titles
// @Accept json
// @Produce json
// @Param id path string true "Title ID (UUID)"
// @Param title body service.UpdateTitleRequest true "Fields to update"
// @Success 200 {object} service.TitleResponse "Successfully updated title"
// @Failure 400 {object} map[string]interface{} "Invalid request or title is locked"
// @Failure 401 {object} map[string]interface{} "Only the title owner can update the title"
// @Failure 404 {object} map[string]interface{} "Title not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /api/v1/titles/{id} [patch]
func (h *TitleHandler) UpdateTitle(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid title ID"})
		return
	}

	var req service.UpdateTitleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	title, err := h.titleService.Update(id, auth.CurrentUser(c), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, title)
}

// AdminGetAllTitles handles GET /api/v1/admin/titles
// @Summary List all titles across periods (admin)
// @Tags admin
// @Produce json
// @Success 200 {array} service.TitleShortResponse "Successfully retrieved titles"
// @Failure 401 {object} map[string]interface{} "Admin privileges required"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /api/v1/admin/titles [get]
func (h *TitleHandler) AdminGetAllTitles(c *gin.Context) {
	titles, err := h.titleService.AdminGetAll()
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, titles)
}

// AdminGetTitle handles GET /api/v1/admin/titles/:id
// @Summary Get a title with all fields (admin)
// @Tags admin
// @Produce json
// @Param id path string true "Title ID (UUID)"
// @Success 200 {object} service.TitleResponse "Successfully retrieved title"
// @Failure 400 {object} map[string]interface{} "Invalid title ID"
// @Failure 404 {object} map[string]interface{} "Title not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /api/v1/admin/titles/{id} [get]
func (h *TitleHandler) AdminGetTitle(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid title ID"})
		return
	}

	title, err := h.titleService.AdminGetByID(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, title)
}

// AdminDeleteTitle handles DELETE /api/v1/admin/titles/:id
// @Summary Delete a title (admin)
// @Description Delete a title, its dependent submissions and stored artifacts
// @Tags admin
// @Produce json
// @Param id path string true "Title ID (UUID)"
// @Success 204 "Title deleted"
// @Failure 400 {object} map[string]interface{} "Invalid title ID"
// @Failure 404 {object} map[string]interface{} "Title not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /api/v1/admin/titles/{id} [delete]
func (h *TitleHandler) AdminDeleteTitle(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid title ID"})
		return
	}

	if err := h.titleService.AdminDelete(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
