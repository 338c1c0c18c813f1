package valueobjects

import "fmt"

type TicketStatus string

const (
	StatusOpen       TicketStatus = "open"
	StatusInProgress TicketStatus = "in_progress"
	StatusWaiting    TicketStatus = "waiting"
	StatusResolved   TicketStatus = "resolved"
	StatusClosed     TicketStatus = "closed"
	StatusArchived   TicketStatus = "archived"
)

var validTicketStatuses = map[TicketStatus]bool{
	StatusOpen:       true,
	StatusInProgress: true,
	StatusWaiting:    true,
	StatusResolved:   true,
	StatusClosed:     true,
	StatusArchived:   true,
}

// ticketStatusTransitions is the explicit state machine for tickets.
// Archived is terminal.
var ticketStatusTransitions = map[TicketStatus][]TicketStatus{
	StatusOpen: {
		StatusInProgress,
		StatusWaiting,
		StatusResolved,
		StatusClosed,
	},
	StatusInProgress: {
		StatusWaiting,
		StatusResolved,
		StatusClosed,
	},
	StatusWaiting: {
		StatusInProgress,
		StatusResolved,
		StatusClosed,
	},
	StatusResolved: {
		StatusOpen,
		StatusClosed,
	},
	StatusClosed: {
		StatusOpen,
		StatusArchived,
	},
	StatusArchived: {},
}

func (ts TicketStatus) String() string {
	return string(ts)
}

func (ts TicketStatus) IsValid() bool {
	return validTicketStatuses[ts]
}

func (ts TicketStatus) CanTransitionTo(newStatus TicketStatus) bool {
	allowedTransitions, ok := ticketStatusTransitions[ts]
	if !ok {
		return false
	}

	for _, allowed := range allowedTransitions {
		if allowed == newStatus {
			return true
		}
	}
	return false
}

// IsActive reports whether a ticket in this status counts toward an agent's
// workload metric (assigned and unresolved).
func (ts TicketStatus) IsActive() bool {
	return ts == StatusOpen || ts == StatusInProgress || ts == StatusWaiting
}

func (ts TicketStatus) IsOpen() bool {
	return ts == StatusOpen
}

func (ts TicketStatus) IsInProgress() bool {
	return ts == StatusInProgress
}

func (ts TicketStatus) IsWaiting() bool {
	return ts == StatusWaiting
}

func (ts TicketStatus) IsResolved() bool {
	return ts == StatusResolved
}

func (ts TicketStatus) IsClosed() bool {
	return ts == StatusClosed
}

func (ts TicketStatus) IsArchived() bool {
	return ts == StatusArchived
}

func NewTicketStatus(s string) (TicketStatus, error) {
	ts := TicketStatus(s)
	if !ts.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return ts, nil
}
