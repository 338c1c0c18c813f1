package usecases

import (
	"context"

	"deskd/internal/domain/routing"
	"deskd/internal/shared/logger"
	"deskd/internal/shared/mapper"
)

type ListRulesCommand struct {
	Page     int
	PageSize int
}

type ListRulesResult struct {
	Rules []*RuleResult
	Total int64
}

type ListRulesUseCase struct {
	ruleRepo routing.RuleRepository
	logger   logger.Interface
}

func NewListRulesUseCase(
	ruleRepo routing.RuleRepository,
	logger logger.Interface,
) *ListRulesUseCase {
	return &ListRulesUseCase{
		ruleRepo: ruleRepo,
		logger:   logger,
	}
}

func (uc *ListRulesUseCase) Execute(ctx context.Context, cmd ListRulesCommand) (*ListRulesResult, error) {
	offset := (cmd.Page - 1) * cmd.PageSize

	rules, total, err := uc.ruleRepo.List(ctx, offset, cmd.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list rules", "error", err)
		return nil, err
	}

	return &ListRulesResult{
		Rules: mapper.MapSlice(rules, newRuleResult),
		Total: total,
	}, nil
}
