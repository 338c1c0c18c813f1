package usecases

import (
	"context"

	"deskd/internal/domain/team"
	"deskd/internal/shared/errors"
	"deskd/internal/shared/logger"
)

type GetTeamCommand struct {
	TeamID uint
}

type GetTeamUseCase struct {
	teamRepo team.TeamRepository
	logger   logger.Interface
}

func NewGetTeamUseCase(
	teamRepo team.TeamRepository,
	logger logger.Interface,
) *GetTeamUseCase {
	return &GetTeamUseCase{
		teamRepo: teamRepo,
		logger:   logger,
	}
}

func (uc *GetTeamUseCase) Execute(ctx context.Context, cmd GetTeamCommand) (*TeamResult, error) {
	if cmd.TeamID == 0 {
		return nil, errors.NewValidationError("team ID is required")
	}

	t, err := uc.teamRepo.FindByID(ctx, cmd.TeamID)
	if err != nil {
		uc.logger.Errorw("failed to find team", "team_id", cmd.TeamID, "error", err)
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError("team not found")
	}

	return newTeamResult(t), nil
}
