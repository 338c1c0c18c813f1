package usecases

import (
	"context"

	"deskd/internal/domain/routing"
	"deskd/internal/shared/errors"
	"deskd/internal/shared/logger"
)

type UpdateRuleCommand struct {
	RuleID         uint
	Name           string
	Description    string
	Conditions     RuleConditionsInput
	RequiredSkills []string
	Weight         int
	IsActive       *bool
}

type UpdateRuleUseCase struct {
	ruleRepo routing.RuleRepository
	logger   logger.Interface
}

func NewUpdateRuleUseCase(
	ruleRepo routing.RuleRepository,
	logger logger.Interface,
) *UpdateRuleUseCase {
	return &UpdateRuleUseCase{
		ruleRepo: ruleRepo,
		logger:   logger,
	}
}

func (uc *UpdateRuleUseCase) Execute(ctx context.Context, cmd UpdateRuleCommand) (*RuleResult, error) {
	uc.logger.Infow("executing update rule use case", "rule_id", cmd.RuleID)

	if cmd.RuleID == 0 {
		return nil, errors.NewValidationError("rule ID is required")
	}

	rule, err := uc.ruleRepo.FindByID(ctx, cmd.RuleID)
	if err != nil {
		uc.logger.Errorw("failed to find rule", "rule_id", cmd.RuleID, "error", err)
		return nil, err
	}
	if rule == nil {
		return nil, errors.NewNotFoundError("rule not found")
	}

	conditions, err := buildConditions(cmd.Conditions)
	if err != nil {
		return nil, err
	}

	if err := rule.Update(cmd.Name, cmd.Description, conditions, cmd.RequiredSkills, cmd.Weight); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if cmd.IsActive != nil {
		if *cmd.IsActive {
			rule.Activate()
		} else {
			rule.Deactivate()
		}
	}

	if err := uc.ruleRepo.Update(ctx, rule); err != nil {
		uc.logger.Errorw("failed to update rule", "rule_id", cmd.RuleID, "error", err)
		return nil, err
	}

	uc.logger.Infow("rule updated successfully", "rule_id", rule.ID())

	return newRuleResult(rule), nil
}
