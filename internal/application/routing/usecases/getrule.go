package usecases

import (
	"context"

	"deskd/internal/domain/routing"
	"deskd/internal/shared/errors"
	"deskd/internal/shared/logger"
)

type GetRuleCommand struct {
	RuleID uint
}

type GetRuleUseCase struct {
	ruleRepo routing.RuleRepository
	logger   logger.Interface
}

func NewGetRuleUseCase(
	ruleRepo routing.RuleRepository,
	logger logger.Interface,
) *GetRuleUseCase {
	return &GetRuleUseCase{
		ruleRepo: ruleRepo,
		logger:   logger,
	}
}

func (uc *GetRuleUseCase) Execute(ctx context.Context, cmd GetRuleCommand) (*RuleResult, error) {
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

	return newRuleResult(rule), nil
}
