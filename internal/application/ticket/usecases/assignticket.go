package usecases

import (
	"context"

	"deskd/internal/domain/shared/events"
	"deskd/internal/domain/ticket"
	"deskd/internal/domain/user"
	"deskd/internal/shared/errors"
	"deskd/internal/shared/logger"
)

type AssignTicketCommand struct {
	TicketID   uint
	AssigneeID uint
	AssignedBy uint
}

// AssignTicketUseCase performs a manual assignment. The assignee must be an
// active staff user.
type AssignTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	userRepo   user.UserRepository
	dispatcher events.Dispatcher
	logger     logger.Interface
}

func (uc *AssignTicketUseCase) WithDispatcher(d events.Dispatcher) *AssignTicketUseCase {
	uc.dispatcher = d
	return uc
}

func NewAssignTicketUseCase(
	ticketRepo ticket.TicketRepository,
	userRepo user.UserRepository,
	logger logger.Interface,
) *AssignTicketUseCase {
	return &AssignTicketUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

func (uc *AssignTicketUseCase) Execute(ctx context.Context, cmd AssignTicketCommand) (*TicketResult, error) {
	uc.logger.Infow("executing assign ticket use case",
		"ticket_id", cmd.TicketID, "assignee_id", cmd.AssigneeID, "assigned_by", cmd.AssignedBy)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if cmd.AssigneeID == 0 {
		return nil, errors.NewValidationError("assignee ID is required")
	}

	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to find ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	assignee, err := uc.userRepo.FindByID(ctx, cmd.AssigneeID)
	if err != nil {
		uc.logger.Errorw("failed to find assignee", "assignee_id", cmd.AssigneeID, "error", err)
		return nil, err
	}
	if assignee == nil {
		return nil, errors.NewNotFoundError("assignee not found")
	}

	if !assignee.IsStaff() {
		return nil, errors.NewValidationError("assignee must be an agent or admin")
	}
	if !assignee.IsActive() {
		return nil, errors.NewValidationError("assignee is not active")
	}

	if err := t.AssignTo(cmd.AssigneeID); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to persist assignment", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket assigned",
		"ticket_id", t.ID(), "assignee_id", cmd.AssigneeID, "assigned_by", cmd.AssignedBy)

	if uc.dispatcher != nil {
		event := ticket.NewTicketAssignedEvent(t.ID(), cmd.AssigneeID, cmd.AssignedBy)
		if err := uc.dispatcher.Dispatch(ctx, event); err != nil {
			uc.logger.Warnw("failed to dispatch ticket assigned event", "ticket_id", t.ID(), "error", err)
		}
	}

	return newTicketResult(t), nil
}
