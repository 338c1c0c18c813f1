package usecases

import (
	"context"

	"deskd/internal/domain/team"
	"deskd/internal/domain/user"
	"deskd/internal/shared/errors"
	"deskd/internal/shared/logger"
)

type AddTeamMemberCommand struct {
	TeamID uint
	UserID uint
	Role   string
}

type RemoveTeamMemberCommand struct {
	TeamID uint
	UserID uint
}

// AddTeamMemberUseCase adds a staff user to a team and records the team on
// the user aggregate.
type AddTeamMemberUseCase struct {
	teamRepo team.TeamRepository
	userRepo user.UserRepository
	logger   logger.Interface
}

func NewAddTeamMemberUseCase(
	teamRepo team.TeamRepository,
	userRepo user.UserRepository,
	logger logger.Interface,
) *AddTeamMemberUseCase {
	return &AddTeamMemberUseCase{
		teamRepo: teamRepo,
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *AddTeamMemberUseCase) Execute(ctx context.Context, cmd AddTeamMemberCommand) (*TeamResult, error) {
	uc.logger.Infow("executing add team member use case", "team_id", cmd.TeamID, "user_id", cmd.UserID)

	t, err := uc.teamRepo.FindByID(ctx, cmd.TeamID)
	if err != nil {
		uc.logger.Errorw("failed to find team", "team_id", cmd.TeamID, "error", err)
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError("team not found")
	}

	u, err := uc.userRepo.FindByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to find user", "user_id", cmd.UserID, "error", err)
		return nil, err
	}
	if u == nil {
		return nil, errors.NewNotFoundError("user not found")
	}
	if !u.IsStaff() {
		return nil, errors.NewValidationError("only staff users can join teams")
	}

	role := team.MemberRole(cmd.Role)
	if cmd.Role == "" {
		role = team.MemberRoleMember
	}

	if err := t.AddMember(cmd.UserID, role); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.teamRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update team", "team_id", cmd.TeamID, "error", err)
		return nil, err
	}

	if err := u.JoinTeam(cmd.TeamID); err == nil {
		if err := uc.userRepo.Update(ctx, u); err != nil {
			uc.logger.Warnw("failed to record team on user", "user_id", cmd.UserID, "error", err)
		}
	}

	uc.logger.Infow("team member added", "team_id", cmd.TeamID, "user_id", cmd.UserID, "role", role.String())

	return newTeamResult(t), nil
}

type RemoveTeamMemberUseCase struct {
	teamRepo team.TeamRepository
	userRepo user.UserRepository
	logger   logger.Interface
}

func NewRemoveTeamMemberUseCase(
	teamRepo team.TeamRepository,
	userRepo user.UserRepository,
	logger logger.Interface,
) *RemoveTeamMemberUseCase {
	return &RemoveTeamMemberUseCase{
		teamRepo: teamRepo,
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *RemoveTeamMemberUseCase) Execute(ctx context.Context, cmd RemoveTeamMemberCommand) (*TeamResult, error) {
	uc.logger.Infow("executing remove team member use case", "team_id", cmd.TeamID, "user_id", cmd.UserID)

	t, err := uc.teamRepo.FindByID(ctx, cmd.TeamID)
	if err != nil {
		uc.logger.Errorw("failed to find team", "team_id", cmd.TeamID, "error", err)
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError("team not found")
	}

	if err := t.RemoveMember(cmd.UserID); err != nil {
		return nil, errors.NewNotFoundError(err.Error())
	}

	if err := uc.teamRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update team", "team_id", cmd.TeamID, "error", err)
		return nil, err
	}

	u, err := uc.userRepo.FindByID(ctx, cmd.UserID)
	if err == nil && u != nil {
		u.LeaveTeam()
		if err := uc.userRepo.Update(ctx, u); err != nil {
			uc.logger.Warnw("failed to clear team on user", "user_id", cmd.UserID, "error", err)
		}
	}

	uc.logger.Infow("team member removed", "team_id", cmd.TeamID, "user_id", cmd.UserID)

	return newTeamResult(t), nil
}
