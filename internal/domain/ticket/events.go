package ticket

import (
	"time"

	"deskd/internal/domain/shared/events"
	"deskd/internal/shared/biztime"
)

const (
	EventTicketCreated      = "ticket.created"
	EventTicketAssigned     = "ticket.assigned"
	EventTicketAutoAssigned = "ticket.auto_assigned"
	EventTicketStatusChanged = "ticket.status_changed"
)

type TicketCreatedEvent struct {
	TicketID   uint
	Number     string
	CreatorID  uint
	Priority   string
	occurredAt time.Time
}

func NewTicketCreatedEvent(ticketID uint, number string, creatorID uint, priority string) *TicketCreatedEvent {
	return &TicketCreatedEvent{
		TicketID:   ticketID,
		Number:     number,
		CreatorID:  creatorID,
		Priority:   priority,
		occurredAt: biztime.NowUTC(),
	}
}

func (e *TicketCreatedEvent) EventName() string     { return EventTicketCreated }
func (e *TicketCreatedEvent) OccurredAt() time.Time { return e.occurredAt }

type TicketAssignedEvent struct {
	TicketID   uint
	AssigneeID uint
	AssignedBy uint
	occurredAt time.Time
}

func NewTicketAssignedEvent(ticketID, assigneeID, assignedBy uint) *TicketAssignedEvent {
	return &TicketAssignedEvent{
		TicketID:   ticketID,
		AssigneeID: assigneeID,
		AssignedBy: assignedBy,
		occurredAt: biztime.NowUTC(),
	}
}

func (e *TicketAssignedEvent) EventName() string     { return EventTicketAssigned }
func (e *TicketAssignedEvent) OccurredAt() time.Time { return e.occurredAt }

type TicketAutoAssignedEvent struct {
	TicketID   uint
	AssigneeID uint
	RuleID     uint
	occurredAt time.Time
}

func NewTicketAutoAssignedEvent(ticketID, assigneeID, ruleID uint) *TicketAutoAssignedEvent {
	return &TicketAutoAssignedEvent{
		TicketID:   ticketID,
		AssigneeID: assigneeID,
		RuleID:     ruleID,
		occurredAt: biztime.NowUTC(),
	}
}

func (e *TicketAutoAssignedEvent) EventName() string     { return EventTicketAutoAssigned }
func (e *TicketAutoAssignedEvent) OccurredAt() time.Time { return e.occurredAt }

type TicketStatusChangedEvent struct {
	TicketID   uint
	OldStatus  string
	NewStatus  string
	ChangedBy  uint
	occurredAt time.Time
}

func NewTicketStatusChangedEvent(ticketID uint, oldStatus, newStatus string, changedBy uint) *TicketStatusChangedEvent {
	return &TicketStatusChangedEvent{
		TicketID:   ticketID,
		OldStatus:  oldStatus,
		NewStatus:  newStatus,
		ChangedBy:  changedBy,
		occurredAt: biztime.NowUTC(),
	}
}

func (e *TicketStatusChangedEvent) EventName() string     { return EventTicketStatusChanged }
func (e *TicketStatusChangedEvent) OccurredAt() time.Time { return e.occurredAt }

var (
	_ events.DomainEvent = (*TicketCreatedEvent)(nil)
	_ events.DomainEvent = (*TicketAssignedEvent)(nil)
	_ events.DomainEvent = (*TicketAutoAssignedEvent)(nil)
	_ events.DomainEvent = (*TicketStatusChangedEvent)(nil)
)
