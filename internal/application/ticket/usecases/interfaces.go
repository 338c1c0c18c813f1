package usecases

import "context"

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, cmd GetTicketCommand) (*TicketResult, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, cmd ListTicketsCommand) (*ListTicketsResult, error)
}

type UpdateTicketExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketCommand) (*TicketResult, error)
}

type DeleteTicketExecutor interface {
	Execute(ctx context.Context, cmd DeleteTicketCommand) error
}

type ChangeTicketStatusExecutor interface {
	Execute(ctx context.Context, cmd ChangeTicketStatusCommand) (*TicketResult, error)
}

type ChangeTicketPriorityExecutor interface {
	Execute(ctx context.Context, cmd ChangeTicketPriorityCommand) (*TicketResult, error)
}

type AssignTicketExecutor interface {
	Execute(ctx context.Context, cmd AssignTicketCommand) (*TicketResult, error)
}

type AddCommentExecutor interface {
	Execute(ctx context.Context, cmd AddCommentCommand) (*CommentResult, error)
}

type ListCommentsExecutor interface {
	Execute(ctx context.Context, cmd ListCommentsCommand) (*ListCommentsResult, error)
}

type GetTicketStatsExecutor interface {
	Execute(ctx context.Context, cmd GetTicketStatsCommand) (*TicketStatsResult, error)
}
