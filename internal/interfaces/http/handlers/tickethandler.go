package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"deskd/internal/application/ticket/usecases"
	"deskd/internal/shared/logger"
	"deskd/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUC   usecases.CreateTicketExecutor
	getTicketUC      usecases.GetTicketExecutor
	listTicketsUC    usecases.ListTicketsExecutor
	updateTicketUC   usecases.UpdateTicketExecutor
	deleteTicketUC   usecases.DeleteTicketExecutor
	changeStatusUC   usecases.ChangeTicketStatusExecutor
	changePriorityUC usecases.ChangeTicketPriorityExecutor
	assignTicketUC   usecases.AssignTicketExecutor
	addCommentUC     usecases.AddCommentExecutor
	listCommentsUC   usecases.ListCommentsExecutor
	logger           logger.Interface
}

func NewTicketHandler(
	createTicketUC usecases.CreateTicketExecutor,
	getTicketUC usecases.GetTicketExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	updateTicketUC usecases.UpdateTicketExecutor,
	deleteTicketUC usecases.DeleteTicketExecutor,
	changeStatusUC usecases.ChangeTicketStatusExecutor,
	changePriorityUC usecases.ChangeTicketPriorityExecutor,
	assignTicketUC usecases.AssignTicketExecutor,
	addCommentUC usecases.AddCommentExecutor,
	listCommentsUC usecases.ListCommentsExecutor,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC:   createTicketUC,
		getTicketUC:      getTicketUC,
		listTicketsUC:    listTicketsUC,
		updateTicketUC:   updateTicketUC,
		deleteTicketUC:   deleteTicketUC,
		changeStatusUC:   changeStatusUC,
		changePriorityUC: changePriorityUC,
		assignTicketUC:   assignTicketUC,
		addCommentUC:     addCommentUC,
		listCommentsUC:   listCommentsUC,
		logger:           logger.NewLogger(),
	}
}

// CreateTicket handles POST /tickets
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := req.ToCommand(currentUserID(c))

	result, err := h.createTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	resp := &CreateTicketResponse{
		ID:         result.TicketID,
		Number:     result.Number,
		Status:     result.Status,
		AssigneeID: result.AssigneeID,
		CreatedAt:  result.CreatedAt,
	}

	utils.CreatedResponse(c, resp, "Ticket created successfully")
}

// GetTicket handles GET /tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticketID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.GetTicketCommand{
		TicketID:      ticketID,
		RequesterID:   currentUserID(c),
		RequesterRole: currentUserRole(c),
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", newTicketResponse(result))
}

// ListTickets handles GET /tickets
func (h *TicketHandler) ListTickets(c *gin.Context) {
	req, err := parseListTicketsRequest(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := req.ToCommand(currentUserID(c), currentUserRole(c))

	result, err := h.listTicketsUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	tickets := make([]*TicketResponse, 0, len(result.Tickets))
	for _, t := range result.Tickets {
		tickets = append(tickets, newTicketResponse(t))
	}

	utils.ListSuccessResponse(c, tickets, result.Total, req.Page, req.PageSize)
}

// UpdateTicket handles PUT /tickets/:id
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	ticketID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.UpdateTicketCommand{
		TicketID:      ticketID,
		RequesterID:   currentUserID(c),
		RequesterRole: currentUserRole(c),
		Subject:       req.Subject,
		Description:   req.Description,
		Tags:          req.Tags,
		CustomFields:  req.CustomFields,
	}

	result, err := h.updateTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket updated successfully", newTicketResponse(result))
}

// DeleteTicket handles DELETE /tickets/:id
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	ticketID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.DeleteTicketCommand{TicketID: ticketID}

	if err := h.deleteTicketUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// ChangeStatus handles PATCH /tickets/:id/status
func (h *TicketHandler) ChangeStatus(c *gin.Context) {
	ticketID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.ChangeTicketStatusCommand{
		TicketID:    ticketID,
		NewStatus:   req.Status,
		RequesterID: currentUserID(c),
	}

	result, err := h.changeStatusUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket status updated", newTicketResponse(result))
}

// ChangePriority handles PATCH /tickets/:id/priority
func (h *TicketHandler) ChangePriority(c *gin.Context) {
	ticketID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ChangePriorityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.ChangeTicketPriorityCommand{
		TicketID:    ticketID,
		NewPriority: req.Priority,
		RequesterID: currentUserID(c),
	}

	result, err := h.changePriorityUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket priority updated", newTicketResponse(result))
}

// AssignTicket handles POST /tickets/:id/assign
func (h *TicketHandler) AssignTicket(c *gin.Context) {
	ticketID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AssignTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.AssignTicketCommand{
		TicketID:   ticketID,
		AssigneeID: req.AssigneeID,
		AssignedBy: currentUserID(c),
	}

	result, err := h.assignTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket assigned successfully", newTicketResponse(result))
}

// AddComment handles POST /tickets/:id/comments
func (h *TicketHandler) AddComment(c *gin.Context) {
	ticketID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.AddCommentCommand{
		TicketID:   ticketID,
		AuthorID:   currentUserID(c),
		AuthorRole: currentUserRole(c),
		Body:       req.Body,
		IsInternal: req.IsInternal,
	}

	result, err := h.addCommentUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, newCommentResponse(result), "Comment added successfully")
}

// ListComments handles GET /tickets/:id/comments
func (h *TicketHandler) ListComments(c *gin.Context) {
	ticketID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.ListCommentsCommand{
		TicketID:      ticketID,
		RequesterID:   currentUserID(c),
		RequesterRole: currentUserRole(c),
	}

	result, err := h.listCommentsUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	comments := make([]*CommentResponse, 0, len(result.Comments))
	for _, cm := range result.Comments {
		comments = append(comments, newCommentResponse(cm))
	}

	utils.SuccessResponse(c, http.StatusOK, "", comments)
}
