package usecases

import (
	"time"

	"deskd/internal/domain/ticket"
)

// TicketResult is the shared read model for a single ticket.
type TicketResult struct {
	TicketID           uint
	Number             string
	Subject            string
	Description        string
	Priority           string
	Status             string
	CreatorID          uint
	AssigneeID         *uint
	Tags               []string
	CustomFields       map[string]string
	AutoAssigned       bool
	MatchedRuleID      *uint
	AssignmentAttempts int
	SLADueTime         *time.Time
	FirstResponseAt    *time.Time
	ResolvedAt         *time.Time
	IsOverdue          bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
	ClosedAt           *time.Time
}

func newTicketResult(t *ticket.Ticket) *TicketResult {
	return &TicketResult{
		TicketID:           t.ID(),
		Number:             t.Number(),
		Subject:            t.Subject(),
		Description:        t.Description(),
		Priority:           t.Priority().String(),
		Status:             t.Status().String(),
		CreatorID:          t.CreatorID(),
		AssigneeID:         t.AssigneeID(),
		Tags:               t.Tags(),
		CustomFields:       t.CustomFields(),
		AutoAssigned:       t.AutoAssigned(),
		MatchedRuleID:      t.MatchedRuleID(),
		AssignmentAttempts: t.AssignmentAttempts(),
		SLADueTime:         t.SLADueTime(),
		FirstResponseAt:    t.FirstResponseAt(),
		ResolvedAt:         t.ResolvedAt(),
		IsOverdue:          t.IsOverdue(),
		CreatedAt:          t.CreatedAt(),
		UpdatedAt:          t.UpdatedAt(),
		ClosedAt:           t.ClosedAt(),
	}
}

// CommentResult is the read model for a ticket comment. BodyHTML carries the
// sanitized markdown rendering.
type CommentResult struct {
	CommentID  uint
	TicketID   uint
	AuthorID   uint
	Body       string
	BodyHTML   string
	IsInternal bool
	CreatedAt  time.Time
}

func newCommentResult(c *ticket.Comment, bodyHTML string) *CommentResult {
	return &CommentResult{
		CommentID:  c.ID(),
		TicketID:   c.TicketID(),
		AuthorID:   c.AuthorID(),
		Body:       c.Body(),
		BodyHTML:   bodyHTML,
		IsInternal: c.IsInternal(),
		CreatedAt:  c.CreatedAt(),
	}
}
