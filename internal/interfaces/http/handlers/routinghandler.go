package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"deskd/internal/application/routing/usecases"
	"deskd/internal/shared/logger"
	"deskd/internal/shared/utils"
)

type RoutingHandler struct {
	createRuleUC    usecases.CreateRuleExecutor
	getRuleUC       usecases.GetRuleExecutor
	listRulesUC     usecases.ListRulesExecutor
	updateRuleUC    usecases.UpdateRuleExecutor
	deleteRuleUC    usecases.DeleteRuleExecutor
	matchingRulesUC usecases.GetMatchingRulesExecutor
	availAgentsUC   usecases.GetAvailableAgentsExecutor
	bestAgentUC     usecases.FindBestAgentExecutor
	autoAssignUC    usecases.AutoAssignTicketExecutor
	logger          logger.Interface
}

func NewRoutingHandler(
	createRuleUC usecases.CreateRuleExecutor,
	getRuleUC usecases.GetRuleExecutor,
	listRulesUC usecases.ListRulesExecutor,
	updateRuleUC usecases.UpdateRuleExecutor,
	deleteRuleUC usecases.DeleteRuleExecutor,
	matchingRulesUC usecases.GetMatchingRulesExecutor,
	availAgentsUC usecases.GetAvailableAgentsExecutor,
	bestAgentUC usecases.FindBestAgentExecutor,
	autoAssignUC usecases.AutoAssignTicketExecutor,
) *RoutingHandler {
	return &RoutingHandler{
		createRuleUC:    createRuleUC,
		getRuleUC:       getRuleUC,
		listRulesUC:     listRulesUC,
		updateRuleUC:    updateRuleUC,
		deleteRuleUC:    deleteRuleUC,
		matchingRulesUC: matchingRulesUC,
		availAgentsUC:   availAgentsUC,
		bestAgentUC:     bestAgentUC,
		autoAssignUC:    autoAssignUC,
		logger:          logger.NewLogger(),
	}
}

// CreateRule handles POST /routing/rules
func (h *RoutingHandler) CreateRule(c *gin.Context) {
	var req CreateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create rule", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.CreateRuleCommand{
		Name:           req.Name,
		Description:    req.Description,
		Conditions:     req.Conditions.toInput(),
		RequiredSkills: req.RequiredSkills,
		Weight:         req.Weight,
		CreatedBy:      currentUserID(c),
	}

	result, err := h.createRuleUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, newRuleResponse(result), "Routing rule created successfully")
}

// GetRule handles GET /routing/rules/:id
func (h *RoutingHandler) GetRule(c *gin.Context) {
	ruleID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getRuleUC.Execute(c.Request.Context(), usecases.GetRuleCommand{RuleID: ruleID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", newRuleResponse(result))
}

// ListRules handles GET /routing/rules
func (h *RoutingHandler) ListRules(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	cmd := usecases.ListRulesCommand{
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}

	result, err := h.listRulesUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	rules := make([]*RuleResponse, 0, len(result.Rules))
	for _, r := range result.Rules {
		rules = append(rules, newRuleResponse(r))
	}

	utils.ListSuccessResponse(c, rules, result.Total, pagination.Page, pagination.PageSize)
}

// UpdateRule handles PUT /routing/rules/:id
func (h *RoutingHandler) UpdateRule(c *gin.Context) {
	ruleID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.UpdateRuleCommand{
		RuleID:         ruleID,
		Name:           req.Name,
		Description:    req.Description,
		Conditions:     req.Conditions.toInput(),
		RequiredSkills: req.RequiredSkills,
		Weight:         req.Weight,
		IsActive:       req.IsActive,
	}

	result, err := h.updateRuleUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Routing rule updated successfully", newRuleResponse(result))
}

// DeleteRule handles DELETE /routing/rules/:id
func (h *RoutingHandler) DeleteRule(c *gin.Context) {
	ruleID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteRuleUC.Execute(c.Request.Context(), usecases.DeleteRuleCommand{RuleID: ruleID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// PreviewMatch handles POST /routing/rules/preview
func (h *RoutingHandler) PreviewMatch(c *gin.Context) {
	var req PreviewMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.GetMatchingRulesCommand{
		Priority:     req.Priority,
		Tags:         req.Tags,
		CustomFields: req.CustomFields,
	}

	result, err := h.matchingRulesUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	rules := make([]*RuleResponse, 0, len(result.Rules))
	for _, r := range result.Rules {
		rules = append(rules, newRuleResponse(r))
	}

	utils.SuccessResponse(c, http.StatusOK, "", rules)
}

// GetAvailableAgents handles GET /routing/agents
func (h *RoutingHandler) GetAvailableAgents(c *gin.Context) {
	cmd := usecases.GetAvailableAgentsCommand{
		RequiredSkills: parseSkillsQuery(c),
	}

	result, err := h.availAgentsUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	agents := make([]*AgentResponse, 0, len(result.Agents))
	for _, a := range result.Agents {
		agents = append(agents, newAgentResponse(a))
	}

	utils.SuccessResponse(c, http.StatusOK, "", agents)
}

// FindBestAgent handles GET /routing/agents/best
func (h *RoutingHandler) FindBestAgent(c *gin.Context) {
	cmd := usecases.FindBestAgentCommand{
		RequiredSkills: parseSkillsQuery(c),
	}

	result, err := h.bestAgentUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if !result.Found {
		utils.SuccessResponse(c, http.StatusOK, "No eligible agent found", nil)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", newAgentResponse(result.Agent))
}

// AutoAssign handles POST /tickets/:id/auto-assign
func (h *RoutingHandler) AutoAssign(c *gin.Context) {
	ticketID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AutoAssignRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
	}

	cmd := usecases.AutoAssignTicketCommand{
		TicketID: ticketID,
		DryRun:   req.DryRun,
	}

	result, err := h.autoAssignUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	resp := &AutoAssignResponse{
		Assigned:   result.Assigned,
		SkipReason: result.SkipReason,
		AssigneeID: result.AssigneeID,
		RuleID:     result.RuleID,
		RuleName:   result.RuleName,
	}

	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

// parseSkillsQuery reads a comma separated skills query parameter.
func parseSkillsQuery(c *gin.Context) []string {
	raw := c.Query("skills")
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}
