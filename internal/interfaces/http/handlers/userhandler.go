package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"deskd/internal/application/user/usecases"
	"deskd/internal/shared/logger"
	"deskd/internal/shared/utils"
)

type SkillInputRequest struct {
	Category    string `json:"category" binding:"required,max=50"`
	Name        string `json:"name" binding:"required,max=50"`
	Proficiency int    `json:"proficiency" binding:"min=1,max=5"`
}

type UpdateSkillsRequest struct {
	Skills []SkillInputRequest `json:"skills" binding:"required,dive"`
}

type UserHandler struct {
	getUserUC      usecases.GetUserExecutor
	listAgentsUC   usecases.ListAgentsExecutor
	updateSkillsUC usecases.UpdateUserSkillsExecutor
	logger         logger.Interface
}

func NewUserHandler(
	getUserUC usecases.GetUserExecutor,
	listAgentsUC usecases.ListAgentsExecutor,
	updateSkillsUC usecases.UpdateUserSkillsExecutor,
) *UserHandler {
	return &UserHandler{
		getUserUC:      getUserUC,
		listAgentsUC:   listAgentsUC,
		updateSkillsUC: updateSkillsUC,
		logger:         logger.NewLogger(),
	}
}

// GetUser handles GET /users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUserUC.Execute(c.Request.Context(), usecases.GetUserCommand{UserID: userID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", newUserResponse(result))
}

// ListAgents handles GET /users/agents
func (h *UserHandler) ListAgents(c *gin.Context) {
	result, err := h.listAgentsUC.Execute(c.Request.Context(), usecases.ListAgentsCommand{})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	agents := make([]*UserResponse, 0, len(result.Agents))
	for _, a := range result.Agents {
		agents = append(agents, newUserResponse(a))
	}

	utils.SuccessResponse(c, http.StatusOK, "", agents)
}

// UpdateSkills handles PUT /users/:id/skills
func (h *UserHandler) UpdateSkills(c *gin.Context) {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateSkillsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	skills := make([]usecases.SkillInput, 0, len(req.Skills))
	for _, s := range req.Skills {
		skills = append(skills, usecases.SkillInput{
			Category:    s.Category,
			Name:        s.Name,
			Proficiency: s.Proficiency,
		})
	}

	cmd := usecases.UpdateUserSkillsCommand{
		UserID: userID,
		Skills: skills,
	}

	result, err := h.updateSkillsUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Skills updated successfully", newUserResponse(result))
}
