package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"deskd/internal/application/ticket/usecases"
	"deskd/internal/shared/logger"
	"deskd/internal/shared/utils"
)

type TicketStatsResponse struct {
	Total        int64            `json:"total"`
	ByStatus     map[string]int64 `json:"by_status"`
	ByPriority   map[string]int64 `json:"by_priority"`
	Unassigned   int64            `json:"unassigned"`
	AutoAssigned int64            `json:"auto_assigned"`
	Overdue      int64            `json:"overdue"`
}

type StatsHandler struct {
	ticketStatsUC usecases.GetTicketStatsExecutor
	logger        logger.Interface
}

func NewStatsHandler(ticketStatsUC usecases.GetTicketStatsExecutor) *StatsHandler {
	return &StatsHandler{
		ticketStatsUC: ticketStatsUC,
		logger:        logger.NewLogger(),
	}
}

// GetTicketStats handles GET /stats/tickets
func (h *StatsHandler) GetTicketStats(c *gin.Context) {
	result, err := h.ticketStatsUC.Execute(c.Request.Context(), usecases.GetTicketStatsCommand{})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	resp := &TicketStatsResponse{
		Total:        result.Total,
		ByStatus:     result.ByStatus,
		ByPriority:   result.ByPriority,
		Unassigned:   result.Unassigned,
		AutoAssigned: result.AutoAssigned,
		Overdue:      result.Overdue,
	}

	utils.SuccessResponse(c, http.StatusOK, "", resp)
}
