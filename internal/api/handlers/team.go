package handlers

import (
	"net/http"

	"capstone-portal-backend/internal/auth"
	"capstone-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TeamHandler handles HTTP requests for team operations
type TeamHandler struct {
	teamService *service.TeamService
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService *service.TeamService) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// GetTeam handles GET /api/v1/teams/:id
// @Summary Get team by ID
// @Description Get a team. The join code is included only for admins and members of the team.
// @Tags teams
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Success 200 {object} service.TeamResponse "Successfully retrieved team"
// @Failure 400 {object} map[string]interface{} "Invalid team ID"
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /api/v1/teams/{id} [get]
func (h *TeamHandler) GetTeam(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team ID"})
		return
	}

	team, err := h.teamService.GetByID(id, auth.CurrentUser(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// JoinTeam handles POST /api/v1/teams/join/:code
// @Summary Join a team by join code
// @Description Add the authenticated user to the team matching the join code
// @Tags teams
// @Produce json
// @Param code path string true "Join code"
// @Success 200 {object} service.TeamResponse "Joined team"
// @Failure 400 {object} map[string]interface{} "User already has a team"
// @Failure 404 {object} map[string]interface{} "Unknown join code"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /api/v1/teams/join/{code} [post]
func (h *TeamHandler) JoinTeam(c *gin.Context) {
	team, err := h.teamService.Join(c.Param("code"), auth.CurrentUser(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// KickMember handles DELETE /api/v1/teams/members/:userId
// @Summary Kick a member from the caller's team
// @Description Remove a member from the team. Only the team leader may kick, and never themselves.
// @Tags teams
// @Produce json
// @Param userId path string true "Member user ID (UUID)"
// @Success 204 "Member removed"
// @Failure 400 {object} map[string]interface{} "Invalid user ID"
// @Failure 401 {object} map[string]interface{} "Caller may not kick this member"
// @Failure 404 {object} map[string]interface{} "Member not found in the caller's team"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /api/v1/teams/members/{userId} [delete]
func (h *TeamHandler) KickMember(c *gin.Context) {
	id, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
		return
	}

	if err := h.teamService.KickMember(id, auth.CurrentUser(c)); err != nil {
		handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// AdminCreateTeams handles POST /api/v1/admin/teams
// @Summary Bulk-create teams (admin)
// @Description Create a batch of teams, optionally advancing the period first. Failing entries are reported per entry.
// @Tags admin
// @Accept json
// @Produce json
// @Param teams body service.CreateTeamsRequest true "Batch of teams"
// @Success 201 {object} service.CreateTeamsResponse "Per-entry outcomes"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 401 {object} map[string]interface{} "Admin privileges required"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /api/v1/admin/teams [post]
func (h *TeamHandler) AdminCreateTeams(c *gin.Context) {
	var req service.CreateTeamsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.teamService.AdminCreateTeams(&req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// AdminGetAllTeams handles GET /api/v1/admin/teams
// @Summary List all teams (admin)
// @Description Get all teams with their join codes
// @Tags admin
// @Produce json
// @Success 200 {array} service.TeamResponse "Successfully retrieved teams"
// @Failure 401 {object} map[string]interface{} "Admin privileges required"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /api/v1/admin/teams [get]
func (h *TeamHandler) AdminGetAllTeams(c *gin.Context) {
	teams, err := h.teamService.AdminGetAll()
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, teams)
}

// AdminGetTeam handles GET /api/v1/admin/teams/:id
// @Summary Get a team with its join code (admin)
// @Tags admin
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Success 200 {object} service.TeamResponse "Successfully retrieved team"
// @Failure 400 {object} map[string]interface{} "Invalid team ID"
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /api/v1/admin/teams/{id} [get]
func (h *TeamHandler) AdminGetTeam(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team ID"})
		return
	}

	team, err := h.teamService.AdminGetByID(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// AdminDeleteTeam handles DELETE /api/v1/admin/teams/:id
// @Summary Delete a team (admin)
// @Description Delete a team and clear the team reference on its members
// @Tags admin
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Success 204 "Team deleted"
// @Failure 400 {object} map[string]interface{} "Invalid team ID"
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /api/v1/admin/teams/{id} [delete]
func (h *TeamHandler) AdminDeleteTeam(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team ID"})
		return
	}

	if err := h.teamService.AdminDelete(id); err != nil {
		handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
