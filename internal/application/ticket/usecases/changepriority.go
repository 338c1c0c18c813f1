package usecases

import (
	"context"

	"deskd/internal/domain/ticket"
	vo "deskd/internal/domain/ticket/valueobjects"
	"deskd/internal/shared/errors"
	"deskd/internal/shared/logger"
)

type ChangeTicketPriorityCommand struct {
	TicketID    uint
	NewPriority string
	RequesterID uint
}

type ChangeTicketPriorityUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewChangeTicketPriorityUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *ChangeTicketPriorityUseCase {
	return &ChangeTicketPriorityUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ChangeTicketPriorityUseCase) Execute(ctx context.Context, cmd ChangeTicketPriorityCommand) (*TicketResult, error) {
	uc.logger.Infow("executing change ticket priority use case",
		"ticket_id", cmd.TicketID, "new_priority", cmd.NewPriority)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	newPriority, err := vo.NewPriority(cmd.NewPriority)
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

	if err := t.ChangePriority(newPriority); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket priority", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket priority changed",
		"ticket_id", t.ID(), "priority", newPriority.String(), "changed_by", cmd.RequesterID)

	return newTicketResult(t), nil
}
