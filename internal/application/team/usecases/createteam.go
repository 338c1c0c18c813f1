package usecases

import (
	"context"
	"time"

	"deskd/internal/domain/team"
	"deskd/internal/shared/errors"
	"deskd/internal/shared/logger"
)

type CreateTeamCommand struct {
	Name        string
	Description string
}

type TeamMemberResult struct {
	UserID   uint
	Role     string
	JoinedAt time.Time
}

type TeamResult struct {
	TeamID      uint
	Name        string
	Description string
	Members     []TeamMemberResult
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func newTeamResult(t *team.Team) *TeamResult {
	members := t.Members()
	memberResults := make([]TeamMemberResult, 0, len(members))
	for _, m := range members {
		memberResults = append(memberResults, TeamMemberResult{
			UserID:   m.UserID,
			Role:     m.Role.String(),
			JoinedAt: m.JoinedAt,
		})
	}

	return &TeamResult{
		TeamID:      t.ID(),
		Name:        t.Name(),
		Description: t.Description(),
		Members:     memberResults,
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
	}
}

type CreateTeamUseCase struct {
	teamRepo team.TeamRepository
	logger   logger.Interface
}

func NewCreateTeamUseCase(
	teamRepo team.TeamRepository,
	logger logger.Interface,
) *CreateTeamUseCase {
	return &CreateTeamUseCase{
		teamRepo: teamRepo,
		logger:   logger,
	}
}

func (uc *CreateTeamUseCase) Execute(ctx context.Context, cmd CreateTeamCommand) (*TeamResult, error) {
	uc.logger.Infow("executing create team use case", "name", cmd.Name)

	existing, err := uc.teamRepo.FindByName(ctx, cmd.Name)
	if err != nil {
		uc.logger.Errorw("failed to check team name", "error", err)
		return nil, err
	}
	if existing != nil {
		return nil, errors.NewConflictError("a team with this name already exists")
	}

	newTeam, err := team.NewTeam(cmd.Name, cmd.Description)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.teamRepo.Create(ctx, newTeam); err != nil {
		uc.logger.Errorw("failed to save team", "error", err)
		return nil, err
	}

	uc.logger.Infow("team created", "team_id", newTeam.ID())

	return newTeamResult(newTeam), nil
}
