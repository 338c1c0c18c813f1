package ticket

import (
	"context"

	vo "deskd/internal/domain/ticket/valueobjects"
)

// ListFilter narrows List results. Nil fields are ignored.
type ListFilter struct {
	Status     *vo.TicketStatus
	Priority   *vo.Priority
	CreatorID  *uint
	AssigneeID *uint
	Unassigned bool
	Tag        *string
	Search     *string
}

// Stats is an aggregate snapshot over tickets.
type Stats struct {
	Total        int64
	ByStatus     map[string]int64
	ByPriority   map[string]int64
	Unassigned   int64
	AutoAssigned int64
	Overdue      int64
}

type TicketRepository interface {
	Create(ctx context.Context, ticket *Ticket) error
	FindByID(ctx context.Context, id uint) (*Ticket, error)
	FindByNumber(ctx context.Context, number string) (*Ticket, error)
	List(ctx context.Context, filter ListFilter, offset, limit int) ([]*Ticket, int64, error)
	Update(ctx context.Context, ticket *Ticket) error
	Delete(ctx context.Context, id uint) error

	// CountActiveByAssignees returns the number of active tickets currently
	// assigned to each of the given agents. Agents with no active tickets
	// are present in the result with a zero count.
	CountActiveByAssignees(ctx context.Context, assigneeIDs []uint) (map[uint]int, error)

	GetStats(ctx context.Context) (*Stats, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment *Comment) error
	FindByID(ctx context.Context, id uint) (*Comment, error)
	ListByTicketID(ctx context.Context, ticketID uint, includeInternal bool) ([]*Comment, error)
	Delete(ctx context.Context, id uint) error
}
