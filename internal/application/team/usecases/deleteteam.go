package usecases

import (
	"context"

	"deskd/internal/domain/team"
	"deskd/internal/shared/errors"
	"deskd/internal/shared/logger"
)

type DeleteTeamCommand struct {
	TeamID uint
}

type DeleteTeamUseCase struct {
	teamRepo team.TeamRepository
	logger   logger.Interface
}

func NewDeleteTeamUseCase(
	teamRepo team.TeamRepository,
	logger logger.Interface,
) *DeleteTeamUseCase {
	return &DeleteTeamUseCase{
		teamRepo: teamRepo,
		logger:   logger,
	}
}

func (uc *DeleteTeamUseCase) Execute(ctx context.Context, cmd DeleteTeamCommand) error {
	uc.logger.Infow("executing delete team use case", "team_id", cmd.TeamID)

	if cmd.TeamID == 0 {
		return errors.NewValidationError("team ID is required")
	}

	t, err := uc.teamRepo.FindByID(ctx, cmd.TeamID)
	if err != nil {
		uc.logger.Errorw("failed to find team", "team_id", cmd.TeamID, "error", err)
		return err
	}
	if t == nil {
		return errors.NewNotFoundError("team not found")
	}

	if err := uc.teamRepo.Delete(ctx, cmd.TeamID); err != nil {
		uc.logger.Errorw("failed to delete team", "team_id", cmd.TeamID, "error", err)
		return err
	}

	uc.logger.Infow("team deleted", "team_id", cmd.TeamID)
	return nil
}
