package usecases

import "context"

type CreateTeamExecutor interface {
	Execute(ctx context.Context, cmd CreateTeamCommand) (*TeamResult, error)
}

type GetTeamExecutor interface {
	Execute(ctx context.Context, cmd GetTeamCommand) (*TeamResult, error)
}

type ListTeamsExecutor interface {
	Execute(ctx context.Context, cmd ListTeamsCommand) (*ListTeamsResult, error)
}

type UpdateTeamExecutor interface {
	Execute(ctx context.Context, cmd UpdateTeamCommand) (*TeamResult, error)
}

type DeleteTeamExecutor interface {
	Execute(ctx context.Context, cmd DeleteTeamCommand) error
}

type AddTeamMemberExecutor interface {
	Execute(ctx context.Context, cmd AddTeamMemberCommand) (*TeamResult, error)
}

type RemoveTeamMemberExecutor interface {
	Execute(ctx context.Context, cmd RemoveTeamMemberCommand) (*TeamResult, error)
}
