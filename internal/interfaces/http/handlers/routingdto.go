package handlers

import (
	"time"

	"deskd/internal/application/routing/usecases"
)

type RuleConditionsRequest struct {
	Priority     *string           `json:"priority,omitempty"`
	Tags         []string          `json:"tags,omitempty"`
	CustomFields map[string]string `json:"custom_fields,omitempty"`
}

func (r RuleConditionsRequest) toInput() usecases.RuleConditionsInput {
	return usecases.RuleConditionsInput{
		Priority:     r.Priority,
		Tags:         r.Tags,
		CustomFields: r.CustomFields,
	}
}

type CreateRuleRequest struct {
	Name           string                `json:"name" binding:"required,max=100"`
	Description    string                `json:"description,omitempty" binding:"omitempty,max=500"`
	Conditions     RuleConditionsRequest `json:"conditions"`
	RequiredSkills []string              `json:"required_skills,omitempty"`
	Weight         int                   `json:"weight"`
}

type UpdateRuleRequest struct {
	Name           string                `json:"name" binding:"required,max=100"`
	Description    string                `json:"description,omitempty" binding:"omitempty,max=500"`
	Conditions     RuleConditionsRequest `json:"conditions"`
	RequiredSkills []string              `json:"required_skills,omitempty"`
	Weight         int                   `json:"weight"`
	IsActive       *bool                 `json:"is_active,omitempty"`
}

type RuleResponse struct {
	ID             uint              `json:"id"`
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	Priority       *string           `json:"priority,omitempty"`
	Tags           []string          `json:"tags"`
	CustomFields   map[string]string `json:"custom_fields"`
	RequiredSkills []string          `json:"required_skills"`
	Weight         int               `json:"weight"`
	IsActive       bool              `json:"is_active"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

func newRuleResponse(r *usecases.RuleResult) *RuleResponse {
	return &RuleResponse{
		ID:             r.RuleID,
		Name:           r.Name,
		Description:    r.Description,
		Priority:       r.Priority,
		Tags:           r.Tags,
		CustomFields:   r.CustomFields,
		RequiredSkills: r.RequiredSkills,
		Weight:         r.Weight,
		IsActive:       r.IsActive,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

type PreviewMatchRequest struct {
	Priority     string            `json:"priority" binding:"required"`
	Tags         []string          `json:"tags,omitempty"`
	CustomFields map[string]string `json:"custom_fields,omitempty"`
}

type AutoAssignRequest struct {
	DryRun bool `json:"dry_run"`
}

type AutoAssignResponse struct {
	Assigned   bool   `json:"assigned"`
	SkipReason string `json:"skip_reason,omitempty"`
	AssigneeID uint   `json:"assignee_id,omitempty"`
	RuleID     uint   `json:"rule_id,omitempty"`
	RuleName   string `json:"rule_name,omitempty"`
}

type AgentSkillResponse struct {
	Category    string `json:"category"`
	Name        string `json:"name"`
	Proficiency int    `json:"proficiency"`
}

type AgentResponse struct {
	ID            uint                 `json:"id"`
	Name          string               `json:"name"`
	Email         string               `json:"email"`
	Skills        []AgentSkillResponse `json:"skills"`
	ActiveTickets int                  `json:"active_tickets"`
}

func newAgentResponse(r *usecases.AgentResult) *AgentResponse {
	skills := make([]AgentSkillResponse, 0, len(r.Skills))
	for _, s := range r.Skills {
		skills = append(skills, AgentSkillResponse{
			Category:    s.Category,
			Name:        s.Name,
			Proficiency: s.Proficiency,
		})
	}

	return &AgentResponse{
		ID:            r.AgentID,
		Name:          r.Name,
		Email:         r.Email,
		Skills:        skills,
		ActiveTickets: r.ActiveTickets,
	}
}
