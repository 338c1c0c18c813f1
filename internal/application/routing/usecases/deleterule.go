package usecases

import (
	"context"

	"deskd/internal/domain/routing"
	"deskd/internal/shared/errors"
	"deskd/internal/shared/logger"
)

type DeleteRuleCommand struct {
	RuleID uint
}

type DeleteRuleUseCase struct {
	ruleRepo routing.RuleRepository
	logger   logger.Interface
}

func NewDeleteRuleUseCase(
	ruleRepo routing.RuleRepository,
	logger logger.Interface,
) *DeleteRuleUseCase {
	return &DeleteRuleUseCase{
		ruleRepo: ruleRepo,
		logger:   logger,
	}
}

func (uc *DeleteRuleUseCase) Execute(ctx context.Context, cmd DeleteRuleCommand) error {
	uc.logger.Infow("executing delete rule use case", "rule_id", cmd.RuleID)

	if cmd.RuleID == 0 {
		return errors.NewValidationError("rule ID is required")
	}

	rule, err := uc.ruleRepo.FindByID(ctx, cmd.RuleID)
	if err != nil {
		uc.logger.Errorw("failed to find rule", "rule_id", cmd.RuleID, "error", err)
		return err
	}
	if rule == nil {
		return errors.NewNotFoundError("rule not found")
	}

	if err := uc.ruleRepo.Delete(ctx, cmd.RuleID); err != nil {
		uc.logger.Errorw("failed to delete rule", "rule_id", cmd.RuleID, "error", err)
		return err
	}

	uc.logger.Infow("rule deleted successfully", "rule_id", cmd.RuleID)
	return nil
}
