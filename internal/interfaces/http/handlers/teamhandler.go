package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"deskd/internal/application/team/usecases"
	"deskd/internal/shared/logger"
	"deskd/internal/shared/utils"
)

type CreateTeamRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description,omitempty" binding:"omitempty,max=500"`
}

type UpdateTeamRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description,omitempty" binding:"omitempty,max=500"`
}

type AddTeamMemberRequest struct {
	UserID uint   `json:"user_id" binding:"required"`
	Role   string `json:"role,omitempty"`
}

type TeamMemberResponse struct {
	UserID   uint      `json:"user_id"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joined_at"`
}

type TeamResponse struct {
	ID          uint                 `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Members     []TeamMemberResponse `json:"members"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

func newTeamResponse(r *usecases.TeamResult) *TeamResponse {
	members := make([]TeamMemberResponse, 0, len(r.Members))
	for _, m := range r.Members {
		members = append(members, TeamMemberResponse{
			UserID:   m.UserID,
			Role:     m.Role,
			JoinedAt: m.JoinedAt,
		})
	}

	return &TeamResponse{
		ID:          r.TeamID,
		Name:        r.Name,
		Description: r.Description,
		Members:     members,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

type TeamHandler struct {
	createTeamUC   usecases.CreateTeamExecutor
	getTeamUC      usecases.GetTeamExecutor
	listTeamsUC    usecases.ListTeamsExecutor
	updateTeamUC   usecases.UpdateTeamExecutor
	deleteTeamUC   usecases.DeleteTeamExecutor
	addMemberUC    usecases.AddTeamMemberExecutor
	removeMemberUC usecases.RemoveTeamMemberExecutor
	logger         logger.Interface
}

func NewTeamHandler(
	createTeamUC usecases.CreateTeamExecutor,
	getTeamUC usecases.GetTeamExecutor,
	listTeamsUC usecases.ListTeamsExecutor,
	updateTeamUC usecases.UpdateTeamExecutor,
	deleteTeamUC usecases.DeleteTeamExecutor,
	addMemberUC usecases.AddTeamMemberExecutor,
	removeMemberUC usecases.RemoveTeamMemberExecutor,
) *TeamHandler {
	return &TeamHandler{
		createTeamUC:   createTeamUC,
		getTeamUC:      getTeamUC,
		listTeamsUC:    listTeamsUC,
		updateTeamUC:   updateTeamUC,
		deleteTeamUC:   deleteTeamUC,
		addMemberUC:    addMemberUC,
		removeMemberUC: removeMemberUC,
		logger:         logger.NewLogger(),
	}
}

// CreateTeam handles POST /teams
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	var req CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.CreateTeamCommand{
		Name:        req.Name,
		Description: req.Description,
	}

	result, err := h.createTeamUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, newTeamResponse(result), "Team created successfully")
}

// GetTeam handles GET /teams/:id
func (h *TeamHandler) GetTeam(c *gin.Context) {
	teamID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getTeamUC.Execute(c.Request.Context(), usecases.GetTeamCommand{TeamID: teamID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", newTeamResponse(result))
}

// ListTeams handles GET /teams
func (h *TeamHandler) ListTeams(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	cmd := usecases.ListTeamsCommand{
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}

	result, err := h.listTeamsUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	teams := make([]*TeamResponse, 0, len(result.Teams))
	for _, t := range result.Teams {
		teams = append(teams, newTeamResponse(t))
	}

	utils.ListSuccessResponse(c, teams, result.Total, pagination.Page, pagination.PageSize)
}

// UpdateTeam handles PUT /teams/:id
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	teamID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.UpdateTeamCommand{
		TeamID:      teamID,
		Name:        req.Name,
		Description: req.Description,
	}

	result, err := h.updateTeamUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Team updated successfully", newTeamResponse(result))
}

// DeleteTeam handles DELETE /teams/:id
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	teamID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteTeamUC.Execute(c.Request.Context(), usecases.DeleteTeamCommand{TeamID: teamID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// AddMember handles POST /teams/:id/members
func (h *TeamHandler) AddMember(c *gin.Context) {
	teamID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.AddTeamMemberCommand{
		TeamID: teamID,
		UserID: req.UserID,
		Role:   req.Role,
	}

	result, err := h.addMemberUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Team member added", newTeamResponse(result))
}

// RemoveMember handles DELETE /teams/:id/members/:userId
func (h *TeamHandler) RemoveMember(c *gin.Context) {
	teamID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, err := parseIDParam(c, "userId")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.RemoveTeamMemberCommand{
		TeamID: teamID,
		UserID: userID,
	}

	result, err := h.removeMemberUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Team member removed", newTeamResponse(result))
}
