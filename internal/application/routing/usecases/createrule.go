package usecases

import (
	"context"
	"time"

	"deskd/internal/domain/routing"
	ticketvo "deskd/internal/domain/ticket/valueobjects"
	"deskd/internal/shared/errors"
	"deskd/internal/shared/logger"
)

// RuleConditionsInput is the transport-agnostic shape of rule conditions.
type RuleConditionsInput struct {
	Priority     *string
	Tags         []string
	CustomFields map[string]string
}

type CreateRuleCommand struct {
	Name           string
	Description    string
	Conditions     RuleConditionsInput
	RequiredSkills []string
	Weight         int
	CreatedBy      uint
}

// RuleResult is the shared read model for a single rule.
type RuleResult struct {
	RuleID         uint
	Name           string
	Description    string
	Priority       *string
	Tags           []string
	CustomFields   map[string]string
	RequiredSkills []string
	Weight         int
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func newRuleResult(rule *routing.Rule) *RuleResult {
	conditions := rule.Conditions()

	var priority *string
	if conditions.Priority != nil {
		p := conditions.Priority.String()
		priority = &p
	}

	return &RuleResult{
		RuleID:         rule.ID(),
		Name:           rule.Name(),
		Description:    rule.Description(),
		Priority:       priority,
		Tags:           conditions.Tags,
		CustomFields:   conditions.CustomFields,
		RequiredSkills: rule.RequiredSkills(),
		Weight:         rule.Weight(),
		IsActive:       rule.IsActive(),
		CreatedAt:      rule.CreatedAt(),
		UpdatedAt:      rule.UpdatedAt(),
	}
}

// buildConditions converts transport input into domain conditions.
func buildConditions(input RuleConditionsInput) (routing.Conditions, error) {
	conditions := routing.Conditions{
		Tags:         input.Tags,
		CustomFields: input.CustomFields,
	}

	if input.Priority != nil && *input.Priority != "" {
		priority, err := ticketvo.NewPriority(*input.Priority)
		if err != nil {
			return routing.Conditions{}, errors.NewValidationError(err.Error())
		}
		conditions.Priority = &priority
	}

	return conditions, nil
}

type CreateRuleUseCase struct {
	ruleRepo routing.RuleRepository
	logger   logger.Interface
}

func NewCreateRuleUseCase(
	ruleRepo routing.RuleRepository,
	logger logger.Interface,
) *CreateRuleUseCase {
	return &CreateRuleUseCase{
		ruleRepo: ruleRepo,
		logger:   logger,
	}
}

func (uc *CreateRuleUseCase) Execute(ctx context.Context, cmd CreateRuleCommand) (*RuleResult, error) {
	uc.logger.Infow("executing create rule use case", "name", cmd.Name, "created_by", cmd.CreatedBy)

	conditions, err := buildConditions(cmd.Conditions)
	if err != nil {
		uc.logger.Errorw("invalid rule conditions", "error", err)
		return nil, err
	}

	rule, err := routing.NewRule(
		cmd.Name,
		cmd.Description,
		conditions,
		cmd.RequiredSkills,
		cmd.Weight,
		cmd.CreatedBy,
	)
	if err != nil {
		uc.logger.Errorw("failed to create rule entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ruleRepo.Create(ctx, rule); err != nil {
		uc.logger.Errorw("failed to save rule", "error", err)
		return nil, err
	}

	uc.logger.Infow("rule created successfully", "rule_id", rule.ID(), "weight", rule.Weight())

	return newRuleResult(rule), nil
}
