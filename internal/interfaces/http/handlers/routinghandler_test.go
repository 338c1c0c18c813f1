package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deskd/internal/application/routing/usecases"
	"deskd/internal/shared/errors"
)

type mockCreateRuleUC struct {
	result *usecases.RuleResult
	err    error
	gotCmd usecases.CreateRuleCommand
}

func (m *mockCreateRuleUC) Execute(_ context.Context, cmd usecases.CreateRuleCommand) (*usecases.RuleResult, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type mockGetRuleUC struct {
	result *usecases.RuleResult
	err    error
}

func (m *mockGetRuleUC) Execute(_ context.Context, _ usecases.GetRuleCommand) (*usecases.RuleResult, error) {
	return m.result, m.err
}

type mockMatchingRulesUC struct {
	result *usecases.GetMatchingRulesResult
	err    error
	gotCmd usecases.GetMatchingRulesCommand
}

func (m *mockMatchingRulesUC) Execute(_ context.Context, cmd usecases.GetMatchingRulesCommand) (*usecases.GetMatchingRulesResult, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type mockFindBestAgentUC struct {
	result *usecases.FindBestAgentResult
	err    error
	gotCmd usecases.FindBestAgentCommand
}

func (m *mockFindBestAgentUC) Execute(_ context.Context, cmd usecases.FindBestAgentCommand) (*usecases.FindBestAgentResult, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type mockAutoAssignUC struct {
	result *usecases.AutoAssignTicketResult
	err    error
	gotCmd usecases.AutoAssignTicketCommand
}

func (m *mockAutoAssignUC) Execute(_ context.Context, cmd usecases.AutoAssignTicketCommand) (*usecases.AutoAssignTicketResult, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type routingHandlerDeps struct {
	createRuleUC    *mockCreateRuleUC
	getRuleUC       *mockGetRuleUC
	matchingRulesUC *mockMatchingRulesUC
	bestAgentUC     *mockFindBestAgentUC
	autoAssignUC    *mockAutoAssignUC
}

func newTestRoutingHandler(deps routingHandlerDeps) *RoutingHandler {
	if deps.createRuleUC == nil {
		deps.createRuleUC = &mockCreateRuleUC{}
	}
	if deps.getRuleUC == nil {
		deps.getRuleUC = &mockGetRuleUC{}
	}
	if deps.matchingRulesUC == nil {
		deps.matchingRulesUC = &mockMatchingRulesUC{}
	}
	if deps.bestAgentUC == nil {
		deps.bestAgentUC = &mockFindBestAgentUC{}
	}
	if deps.autoAssignUC == nil {
		deps.autoAssignUC = &mockAutoAssignUC{}
	}

	return NewRoutingHandler(
		deps.createRuleUC, deps.getRuleUC, nil, nil, nil,
		deps.matchingRulesUC, nil, deps.bestAgentUC, deps.autoAssignUC,
	)
}

func TestRoutingHandler_CreateRule_Success(t *testing.T) {
	urgent := "urgent"
	createUC := &mockCreateRuleUC{
		result: &usecases.RuleResult{
			RuleID:         3,
			Name:           "urgent-billing",
			Priority:       &urgent,
			Tags:           []string{"billing"},
			RequiredSkills: []string{"billing"},
			Weight:         10,
			IsActive:       true,
		},
	}
	handler := newTestRoutingHandler(routingHandlerDeps{createRuleUC: createUC})

	body := `{"name":"urgent-billing","conditions":{"priority":"urgent","tags":["billing"]},"required_skills":["billing"],"weight":10}`
	w := performRequest(handler.CreateRule, http.MethodPost, "/routing/rules", body, 1, "admin")

	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			ID       uint   `json:"id"`
			Name     string `json:"name"`
			IsActive bool   `json:"is_active"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, uint(3), resp.Data.ID)
	assert.Equal(t, "urgent-billing", resp.Data.Name)
	assert.True(t, resp.Data.IsActive)

	assert.Equal(t, uint(1), createUC.gotCmd.CreatedBy)
	assert.Equal(t, 10, createUC.gotCmd.Weight)
	require.NotNil(t, createUC.gotCmd.Conditions.Priority)
	assert.Equal(t, "urgent", *createUC.gotCmd.Conditions.Priority)
}

func TestRoutingHandler_CreateRule_MissingName(t *testing.T) {
	handler := newTestRoutingHandler(routingHandlerDeps{})

	w := performRequest(handler.CreateRule, http.MethodPost, "/routing/rules", `{"weight":5}`, 1, "admin")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRoutingHandler_GetRule_NotFound(t *testing.T) {
	getUC := &mockGetRuleUC{err: errors.NewNotFoundError("routing rule not found")}
	handler := newTestRoutingHandler(routingHandlerDeps{getRuleUC: getUC})

	w := performRequest(handler.GetRule, http.MethodGet, "/routing/rules/9", "", 1, "admin",
		gin.Param{Key: "id", Value: "9"})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRoutingHandler_PreviewMatch_ReturnsOrderedRules(t *testing.T) {
	matchingUC := &mockMatchingRulesUC{
		result: &usecases.GetMatchingRulesResult{
			Rules: []*usecases.RuleResult{
				{RuleID: 2, Name: "high-weight", Weight: 20, IsActive: true},
				{RuleID: 1, Name: "low-weight", Weight: 5, IsActive: true},
			},
		},
	}
	handler := newTestRoutingHandler(routingHandlerDeps{matchingRulesUC: matchingUC})

	body := `{"priority":"urgent","tags":["billing"],"custom_fields":{"region":"eu"}}`
	w := performRequest(handler.PreviewMatch, http.MethodPost, "/routing/rules/preview", body, 1, "agent")

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    []struct {
			ID   uint   `json:"id"`
			Name string `json:"name"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "high-weight", resp.Data[0].Name)

	assert.Equal(t, "urgent", matchingUC.gotCmd.Priority)
	assert.Equal(t, []string{"billing"}, matchingUC.gotCmd.Tags)
	assert.Equal(t, "eu", matchingUC.gotCmd.CustomFields["region"])
}

func TestRoutingHandler_FindBestAgent_Found(t *testing.T) {
	bestUC := &mockFindBestAgentUC{
		result: &usecases.FindBestAgentResult{
			Found: true,
			Agent: &usecases.AgentResult{
				AgentID:       7,
				Name:          "Agent Seven",
				Email:         "seven@example.com",
				ActiveTickets: 2,
			},
		},
	}
	handler := newTestRoutingHandler(routingHandlerDeps{bestAgentUC: bestUC})

	w := performRequest(handler.FindBestAgent, http.MethodGet, "/routing/agents/best?skills=billing,refunds", "", 1, "agent")

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			ID            uint `json:"id"`
			ActiveTickets int  `json:"active_tickets"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, uint(7), resp.Data.ID)
	assert.Equal(t, 2, resp.Data.ActiveTickets)

	assert.Equal(t, []string{"billing", "refunds"}, bestUC.gotCmd.RequiredSkills)
}

func TestRoutingHandler_FindBestAgent_NoneEligible(t *testing.T) {
	bestUC := &mockFindBestAgentUC{result: &usecases.FindBestAgentResult{Found: false}}
	handler := newTestRoutingHandler(routingHandlerDeps{bestAgentUC: bestUC})

	w := performRequest(handler.FindBestAgent, http.MethodGet, "/routing/agents/best", "", 1, "agent")

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "No eligible agent found", resp.Message)
}

func TestRoutingHandler_AutoAssign_Assigned(t *testing.T) {
	autoUC := &mockAutoAssignUC{
		result: &usecases.AutoAssignTicketResult{
			Assigned:   true,
			AssigneeID: 7,
			RuleID:     3,
			RuleName:   "urgent-billing",
		},
	}
	handler := newTestRoutingHandler(routingHandlerDeps{autoAssignUC: autoUC})

	w := performRequest(handler.AutoAssign, http.MethodPost, "/tickets/5/auto-assign", "", 1, "agent",
		gin.Param{Key: "id", Value: "5"})

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Assigned   bool   `json:"assigned"`
			AssigneeID uint   `json:"assignee_id"`
			RuleName   string `json:"rule_name"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Data.Assigned)
	assert.Equal(t, uint(7), resp.Data.AssigneeID)
	assert.Equal(t, "urgent-billing", resp.Data.RuleName)

	assert.Equal(t, uint(5), autoUC.gotCmd.TicketID)
	assert.False(t, autoUC.gotCmd.DryRun)
}

func TestRoutingHandler_AutoAssign_DryRun(t *testing.T) {
	autoUC := &mockAutoAssignUC{
		result: &usecases.AutoAssignTicketResult{
			Assigned:   true,
			AssigneeID: 7,
			RuleID:     3,
			RuleName:   "urgent-billing",
		},
	}
	handler := newTestRoutingHandler(routingHandlerDeps{autoAssignUC: autoUC})

	w := performRequest(handler.AutoAssign, http.MethodPost, "/tickets/5/auto-assign",
		`{"dry_run":true}`, 1, "agent",
		gin.Param{Key: "id", Value: "5"})

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, autoUC.gotCmd.DryRun)
}

func TestRoutingHandler_AutoAssign_Skipped(t *testing.T) {
	autoUC := &mockAutoAssignUC{
		result: &usecases.AutoAssignTicketResult{SkipReason: usecases.SkipReasonNoMatchingRule},
	}
	handler := newTestRoutingHandler(routingHandlerDeps{autoAssignUC: autoUC})

	w := performRequest(handler.AutoAssign, http.MethodPost, "/tickets/5/auto-assign", "", 1, "agent",
		gin.Param{Key: "id", Value: "5"})

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Assigned   bool   `json:"assigned"`
			SkipReason string `json:"skip_reason"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Data.Assigned)
	assert.Equal(t, "no_matching_rule", resp.Data.SkipReason)
}
