package usecases

import (
	"context"

	"deskd/internal/domain/ticket"
	vo "deskd/internal/domain/ticket/valueobjects"
	"deskd/internal/shared/authorization"
	"deskd/internal/shared/errors"
	"deskd/internal/shared/logger"
	"deskd/internal/shared/mapper"
)

type ListTicketsCommand struct {
	RequesterID   uint
	RequesterRole string
	Status        string
	Priority      string
	AssigneeID    *uint
	Unassigned    bool
	Tag           string
	Search        string
	Page          int
	PageSize      int
}

type ListTicketsResult struct {
	Tickets []*TicketResult
	Total   int64
}

// ListTicketsUseCase lists tickets scoped by role: customers only ever see
// tickets they created.
type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, cmd ListTicketsCommand) (*ListTicketsResult, error) {
	filter, err := uc.buildFilter(cmd)
	if err != nil {
		return nil, err
	}

	offset := (cmd.Page - 1) * cmd.PageSize

	tickets, total, err := uc.ticketRepo.List(ctx, filter, offset, cmd.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, err
	}

	return &ListTicketsResult{
		Tickets: mapper.MapSlice(tickets, newTicketResult),
		Total:   total,
	}, nil
}

func (uc *ListTicketsUseCase) buildFilter(cmd ListTicketsCommand) (ticket.ListFilter, error) {
	filter := ticket.ListFilter{
		Unassigned: cmd.Unassigned,
		AssigneeID: cmd.AssigneeID,
	}

	role := authorization.ParseUserRole(cmd.RequesterRole)
	if role.IsCustomer() {
		creatorID := cmd.RequesterID
		filter.CreatorID = &creatorID
	}

	if cmd.Status != "" {
		status, err := vo.NewTicketStatus(cmd.Status)
		if err != nil {
			return ticket.ListFilter{}, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}

	if cmd.Priority != "" {
		priority, err := vo.NewPriority(cmd.Priority)
		if err != nil {
			return ticket.ListFilter{}, errors.NewValidationError(err.Error())
		}
		filter.Priority = &priority
	}

	if cmd.Tag != "" {
		tag := cmd.Tag
		filter.Tag = &tag
	}

	if cmd.Search != "" {
		search := cmd.Search
		filter.Search = &search
	}

	return filter, nil
}
