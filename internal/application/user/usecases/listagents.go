package usecases

import (
	"context"

	"deskd/internal/domain/user"
	"deskd/internal/shared/logger"
	"deskd/internal/shared/mapper"
)

type ListAgentsCommand struct{}

type ListAgentsResult struct {
	Agents []*UserResult
}

type ListAgentsUseCase struct {
	userRepo user.UserRepository
	logger   logger.Interface
}

func NewListAgentsUseCase(
	userRepo user.UserRepository,
	logger logger.Interface,
) *ListAgentsUseCase {
	return &ListAgentsUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ListAgentsUseCase) Execute(ctx context.Context, cmd ListAgentsCommand) (*ListAgentsResult, error) {
	agents, err := uc.userRepo.ListActiveAgents(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list agents", "error", err)
		return nil, err
	}

	return &ListAgentsResult{
		Agents: mapper.MapSlice(agents, newUserResult),
	}, nil
}
