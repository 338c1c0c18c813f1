package usecases

import (
	"context"

	"deskd/internal/domain/ticket"
	"deskd/internal/shared/authorization"
	"deskd/internal/shared/errors"
	"deskd/internal/shared/logger"
)

type UpdateTicketCommand struct {
	TicketID      uint
	RequesterID   uint
	RequesterRole string
	Subject       string
	Description   string
	Tags          []string
	CustomFields  map[string]string
}

type UpdateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*TicketResult, error) {
	uc.logger.Infow("executing update ticket use case", "ticket_id", cmd.TicketID)

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

	role := authorization.ParseUserRole(cmd.RequesterRole)
	if role.IsCustomer() && t.CreatorID() != cmd.RequesterID {
		return nil, errors.NewForbiddenError("you can only update your own tickets")
	}

	if err := t.UpdateDetails(cmd.Subject, cmd.Description, cmd.Tags, cmd.CustomFields); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket updated successfully", "ticket_id", t.ID())

	return newTicketResult(t), nil
}
