package usecases

import (
	"context"

	"deskd/internal/domain/shared/events"
	"deskd/internal/domain/ticket"
	vo "deskd/internal/domain/ticket/valueobjects"
	"deskd/internal/shared/errors"
	"deskd/internal/shared/logger"
)

type ChangeTicketStatusCommand struct {
	TicketID    uint
	NewStatus   string
	RequesterID uint
}

type ChangeTicketStatusUseCase struct {
	ticketRepo ticket.TicketRepository
	dispatcher events.Dispatcher
	logger     logger.Interface
}

func (uc *ChangeTicketStatusUseCase) WithDispatcher(d events.Dispatcher) *ChangeTicketStatusUseCase {
	uc.dispatcher = d
	return uc
}

func NewChangeTicketStatusUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *ChangeTicketStatusUseCase {
	return &ChangeTicketStatusUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ChangeTicketStatusUseCase) Execute(ctx context.Context, cmd ChangeTicketStatusCommand) (*TicketResult, error) {
	uc.logger.Infow("executing change ticket status use case",
		"ticket_id", cmd.TicketID, "new_status", cmd.NewStatus)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	newStatus, err := vo.NewTicketStatus(cmd.NewStatus)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to find ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	oldStatus := t.Status()

	if err := t.ChangeStatus(newStatus); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket status", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket status changed",
		"ticket_id", t.ID(), "from", oldStatus.String(), "to", newStatus.String(), "changed_by", cmd.RequesterID)

	if uc.dispatcher != nil {
		event := ticket.NewTicketStatusChangedEvent(t.ID(), oldStatus.String(), newStatus.String(), cmd.RequesterID)
		if err := uc.dispatcher.Dispatch(ctx, event); err != nil {
			uc.logger.Warnw("failed to dispatch status changed event", "ticket_id", t.ID(), "error", err)
		}
	}

	return newTicketResult(t), nil
}
