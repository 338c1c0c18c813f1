package usecases

import (
	"context"

	"deskd/internal/domain/team"
	"deskd/internal/shared/errors"
	"deskd/internal/shared/logger"
)

type UpdateTeamCommand struct {
	TeamID      uint
	Name        string
	Description string
}

type UpdateTeamUseCase struct {
	teamRepo team.TeamRepository
	logger   logger.Interface
}

func NewUpdateTeamUseCase(
	teamRepo team.TeamRepository,
	logger logger.Interface,
) *UpdateTeamUseCase {
	return &UpdateTeamUseCase{
		teamRepo: teamRepo,
		logger:   logger,
	}
}

func (uc *UpdateTeamUseCase) Execute(ctx context.Context, cmd UpdateTeamCommand) (*TeamResult, error) {
	uc.logger.Infow("executing update team use case", "team_id", cmd.TeamID)

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

	if err := t.Update(cmd.Name, cmd.Description); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.teamRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update team", "team_id", cmd.TeamID, "error", err)
		return nil, err
	}

	return newTeamResult(t), nil
}
