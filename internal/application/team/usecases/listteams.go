package usecases

import (
	"context"

	"deskd/internal/domain/team"
	"deskd/internal/shared/logger"
	"deskd/internal/shared/mapper"
)

type ListTeamsCommand struct {
	Page     int
	PageSize int
}

type ListTeamsResult struct {
	Teams []*TeamResult
	Total int64
}

type ListTeamsUseCase struct {
	teamRepo team.TeamRepository
	logger   logger.Interface
}

func NewListTeamsUseCase(
	teamRepo team.TeamRepository,
	logger logger.Interface,
) *ListTeamsUseCase {
	return &ListTeamsUseCase{
		teamRepo: teamRepo,
		logger:   logger,
	}
}

func (uc *ListTeamsUseCase) Execute(ctx context.Context, cmd ListTeamsCommand) (*ListTeamsResult, error) {
	offset := (cmd.Page - 1) * cmd.PageSize

	teams, total, err := uc.teamRepo.List(ctx, offset, cmd.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list teams", "error", err)
		return nil, err
	}

	return &ListTeamsResult{
		Teams: mapper.MapSlice(teams, newTeamResult),
		Total: total,
	}, nil
}
