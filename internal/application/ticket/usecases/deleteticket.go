package usecases

import (
	"context"

	"deskd/internal/domain/ticket"
	"deskd/internal/shared/errors"
	"deskd/internal/shared/logger"
)

type DeleteTicketCommand struct {
	TicketID uint
}

type DeleteTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewDeleteTicketUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) error {
	uc.logger.Infow("executing delete ticket use case", "ticket_id", cmd.TicketID)

	if cmd.TicketID == 0 {
		return errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to find ticket", "ticket_id", cmd.TicketID, "error", err)
		return err
	}
	if t == nil {
		return errors.NewNotFoundError("ticket not found")
	}

	if err := uc.ticketRepo.Delete(ctx, cmd.TicketID); err != nil {
		uc.logger.Errorw("failed to delete ticket", "ticket_id", cmd.TicketID, "error", err)
		return err
	}

	uc.logger.Infow("ticket deleted successfully", "ticket_id", cmd.TicketID)
	return nil
}
