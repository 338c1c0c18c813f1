package usecases

import (
	"context"

	"deskd/internal/domain/routing"
	"deskd/internal/domain/ticket"
	"deskd/internal/domain/user"
	"deskd/internal/shared/logger"
)

type FindBestAgentCommand struct {
	RequiredSkills []string
}

type FindBestAgentResult struct {
	Found bool
	Agent *AgentResult
}

// FindBestAgentUseCase runs the selection step alone: the least-loaded
// active agent satisfying a skill requirement. A result with Found false
// means no agent qualified; it is not an error.
type FindBestAgentUseCase struct {
	userRepo   user.UserRepository
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewFindBestAgentUseCase(
	userRepo user.UserRepository,
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *FindBestAgentUseCase {
	return &FindBestAgentUseCase{
		userRepo:   userRepo,
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *FindBestAgentUseCase) Execute(ctx context.Context, cmd FindBestAgentCommand) (*FindBestAgentResult, error) {
	candidates, err := loadCandidates(ctx, uc.userRepo, uc.ticketRepo, cmd.RequiredSkills)
	if err != nil {
		uc.logger.Errorw("failed to load agent candidates", "error", err)
		return nil, err
	}

	best := routing.SelectAgent(candidates, cmd.RequiredSkills)
	if best == nil {
		return &FindBestAgentResult{Found: false}, nil
	}

	return &FindBestAgentResult{
		Found: true,
		Agent: newAgentResult(*best),
	}, nil
}
