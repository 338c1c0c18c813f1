package usecases

import (
	"context"

	"deskd/internal/domain/ticket"
	"deskd/internal/shared/errors"
	"deskd/internal/shared/logger"
)

type GetTicketCommand struct {
	TicketID      uint
	RequesterID   uint
	RequesterRole string
}

type GetTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, cmd GetTicketCommand) (*TicketResult, error) {
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to find ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	if !t.CanBeViewedBy(cmd.RequesterID, cmd.RequesterRole) {
		return nil, errors.NewForbiddenError("you do not have access to this ticket")
	}

	return newTicketResult(t), nil
}
