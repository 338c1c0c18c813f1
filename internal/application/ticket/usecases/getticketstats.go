package usecases

import (
	"context"

	"deskd/internal/domain/ticket"
	"deskd/internal/shared/logger"
)

type GetTicketStatsCommand struct{}

type TicketStatsResult struct {
	Total        int64
	ByStatus     map[string]int64
	ByPriority   map[string]int64
	Unassigned   int64
	AutoAssigned int64
	Overdue      int64
}

type GetTicketStatsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewGetTicketStatsUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *GetTicketStatsUseCase {
	return &GetTicketStatsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *GetTicketStatsUseCase) Execute(ctx context.Context, cmd GetTicketStatsCommand) (*TicketStatsResult, error) {
	stats, err := uc.ticketRepo.GetStats(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load ticket stats", "error", err)
		return nil, err
	}

	return &TicketStatsResult{
		Total:        stats.Total,
		ByStatus:     stats.ByStatus,
		ByPriority:   stats.ByPriority,
		Unassigned:   stats.Unassigned,
		AutoAssigned: stats.AutoAssigned,
		Overdue:      stats.Overdue,
	}, nil
}
