package usecases

import (
	"context"

	"deskd/internal/domain/routing"
	ticketvo "deskd/internal/domain/ticket/valueobjects"
	"deskd/internal/shared/errors"
	"deskd/internal/shared/logger"
	"deskd/internal/shared/mapper"
)

type GetMatchingRulesCommand struct {
	Priority     string
	Tags         []string
	CustomFields map[string]string
}

type GetMatchingRulesResult struct {
	Rules []*RuleResult
}

// GetMatchingRulesUseCase evaluates the active rule set against ticket
// attributes without touching any ticket.
type GetMatchingRulesUseCase struct {
	ruleRepo routing.RuleRepository
	logger   logger.Interface
}

func NewGetMatchingRulesUseCase(
	ruleRepo routing.RuleRepository,
	logger logger.Interface,
) *GetMatchingRulesUseCase {
	return &GetMatchingRulesUseCase{
		ruleRepo: ruleRepo,
		logger:   logger,
	}
}

func (uc *GetMatchingRulesUseCase) Execute(ctx context.Context, cmd GetMatchingRulesCommand) (*GetMatchingRulesResult, error) {
	priority, err := ticketvo.NewPriority(cmd.Priority)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	rules, err := uc.ruleRepo.ListActive(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list active rules", "error", err)
		return nil, err
	}

	matched := routing.MatchRules(rules, routing.TicketAttributes{
		Priority:     priority,
		Tags:         cmd.Tags,
		CustomFields: cmd.CustomFields,
	})

	return &GetMatchingRulesResult{
		Rules: mapper.MapSlice(matched, newRuleResult),
	}, nil
}
