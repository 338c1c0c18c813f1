package usecases

import "context"

type GetMatchingRulesExecutor interface {
	Execute(ctx context.Context, cmd GetMatchingRulesCommand) (*GetMatchingRulesResult, error)
}

type GetAvailableAgentsExecutor interface {
	Execute(ctx context.Context, cmd GetAvailableAgentsCommand) (*GetAvailableAgentsResult, error)
}

type FindBestAgentExecutor interface {
	Execute(ctx context.Context, cmd FindBestAgentCommand) (*FindBestAgentResult, error)
}

type AutoAssignTicketExecutor interface {
	Execute(ctx context.Context, cmd AutoAssignTicketCommand) (*AutoAssignTicketResult, error)
}

type CreateRuleExecutor interface {
	Execute(ctx context.Context, cmd CreateRuleCommand) (*RuleResult, error)
}

type GetRuleExecutor interface {
	Execute(ctx context.Context, cmd GetRuleCommand) (*RuleResult, error)
}

type ListRulesExecutor interface {
	Execute(ctx context.Context, cmd ListRulesCommand) (*ListRulesResult, error)
}

type UpdateRuleExecutor interface {
	Execute(ctx context.Context, cmd UpdateRuleCommand) (*RuleResult, error)
}

type DeleteRuleExecutor interface {
	Execute(ctx context.Context, cmd DeleteRuleCommand) error
}
