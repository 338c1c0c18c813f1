package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"deskd/internal/application/ticket/usecases"
	"deskd/internal/shared/errors"
	"deskd/internal/shared/utils"
)

type CreateTicketRequest struct {
	Subject      string            `json:"subject" binding:"required,max=200"`
	Description  string            `json:"description" binding:"required,max=5000"`
	Priority     string            `json:"priority,omitempty"`
	Tags         []string          `json:"tags,omitempty"`
	CustomFields map[string]string `json:"custom_fields,omitempty"`
}

func (r *CreateTicketRequest) ToCommand(creatorID uint) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		Subject:      r.Subject,
		Description:  r.Description,
		Priority:     r.Priority,
		CreatorID:    creatorID,
		Tags:         r.Tags,
		CustomFields: r.CustomFields,
	}
}

type UpdateTicketRequest struct {
	Subject      string            `json:"subject,omitempty" binding:"omitempty,max=200"`
	Description  string            `json:"description,omitempty" binding:"omitempty,max=5000"`
	Tags         []string          `json:"tags,omitempty"`
	CustomFields map[string]string `json:"custom_fields,omitempty"`
}

type AssignTicketRequest struct {
	AssigneeID uint `json:"assignee_id" binding:"required"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ChangePriorityRequest struct {
	Priority string `json:"priority" binding:"required"`
}

type AddCommentRequest struct {
	Body       string `json:"body" binding:"required,max=10000"`
	IsInternal bool   `json:"is_internal"`
}

type TicketResponse struct {
	ID                 uint              `json:"id"`
	Number             string            `json:"number"`
	Subject            string            `json:"subject"`
	Description        string            `json:"description"`
	Priority           string            `json:"priority"`
	Status             string            `json:"status"`
	CreatorID          uint              `json:"creator_id"`
	AssigneeID         *uint             `json:"assignee_id,omitempty"`
	Tags               []string          `json:"tags"`
	CustomFields       map[string]string `json:"custom_fields"`
	AutoAssigned       bool              `json:"auto_assigned"`
	MatchedRuleID      *uint             `json:"matched_rule_id,omitempty"`
	AssignmentAttempts int               `json:"assignment_attempts"`
	SLADueTime         *time.Time        `json:"sla_due_time,omitempty"`
	FirstResponseAt    *time.Time        `json:"first_response_at,omitempty"`
	ResolvedAt         *time.Time        `json:"resolved_at,omitempty"`
	IsOverdue          bool              `json:"is_overdue"`
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`
	ClosedAt           *time.Time        `json:"closed_at,omitempty"`
}

func newTicketResponse(r *usecases.TicketResult) *TicketResponse {
	return &TicketResponse{
		ID:                 r.TicketID,
		Number:             r.Number,
		Subject:            r.Subject,
		Description:        r.Description,
		Priority:           r.Priority,
		Status:             r.Status,
		CreatorID:          r.CreatorID,
		AssigneeID:         r.AssigneeID,
		Tags:               r.Tags,
		CustomFields:       r.CustomFields,
		AutoAssigned:       r.AutoAssigned,
		MatchedRuleID:      r.MatchedRuleID,
		AssignmentAttempts: r.AssignmentAttempts,
		SLADueTime:         r.SLADueTime,
		FirstResponseAt:    r.FirstResponseAt,
		ResolvedAt:         r.ResolvedAt,
		IsOverdue:          r.IsOverdue,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
		ClosedAt:           r.ClosedAt,
	}
}

type CreateTicketResponse struct {
	ID         uint      `json:"id"`
	Number     string    `json:"number"`
	Status     string    `json:"status"`
	AssigneeID *uint     `json:"assignee_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type CommentResponse struct {
	ID         uint      `json:"id"`
	TicketID   uint      `json:"ticket_id"`
	AuthorID   uint      `json:"author_id"`
	Body       string    `json:"body"`
	BodyHTML   string    `json:"body_html"`
	IsInternal bool      `json:"is_internal"`
	CreatedAt  time.Time `json:"created_at"`
}

func newCommentResponse(r *usecases.CommentResult) *CommentResponse {
	return &CommentResponse{
		ID:         r.CommentID,
		TicketID:   r.TicketID,
		AuthorID:   r.AuthorID,
		Body:       r.Body,
		BodyHTML:   r.BodyHTML,
		IsInternal: r.IsInternal,
		CreatedAt:  r.CreatedAt,
	}
}

type ListTicketsRequest struct {
	Page       int
	PageSize   int
	Status     string
	Priority   string
	AssigneeID *uint
	Unassigned bool
	Tag        string
	Search     string
}

func (r *ListTicketsRequest) ToCommand(requesterID uint, requesterRole string) usecases.ListTicketsCommand {
	return usecases.ListTicketsCommand{
		RequesterID:   requesterID,
		RequesterRole: requesterRole,
		Status:        r.Status,
		Priority:      r.Priority,
		AssigneeID:    r.AssigneeID,
		Unassigned:    r.Unassigned,
		Tag:           r.Tag,
		Search:        r.Search,
		Page:          r.Page,
		PageSize:      r.PageSize,
	}
}

func parseListTicketsRequest(c *gin.Context) (*ListTicketsRequest, error) {
	pagination := utils.ParsePagination(c)

	req := &ListTicketsRequest{
		Page:       pagination.Page,
		PageSize:   pagination.PageSize,
		Status:     c.Query("status"),
		Priority:   c.Query("priority"),
		Tag:        c.Query("tag"),
		Search:     c.Query("search"),
		Unassigned: c.Query("unassigned") == "true",
	}

	if assigneeIDStr := c.Query("assignee_id"); assigneeIDStr != "" {
		assigneeID, err := strconv.ParseUint(assigneeIDStr, 10, 32)
		if err != nil {
			return nil, errors.NewValidationError("invalid assignee_id")
		}
		id := uint(assigneeID)
		req.AssigneeID = &id
	}

	return req, nil
}
