package ticket

import (
	"fmt"
	"time"

	vo "deskd/internal/domain/ticket/valueobjects"
	"deskd/internal/shared/biztime"
)

// Ticket is the aggregate root for a support request. A ticket has at most
// one assignee at any time; assignment bookkeeping records how the assignee
// was chosen.
type Ticket struct {
	id                 uint
	number             string
	subject            string
	description        string
	priority           vo.Priority
	status             vo.TicketStatus
	creatorID          uint
	assigneeID         *uint
	tags               []string
	customFields       map[string]string
	autoAssigned       bool
	matchedRuleID      *uint
	assignmentAttempts int
	slaDueTime         *time.Time
	firstResponseAt    *time.Time
	resolvedAt         *time.Time
	version            int
	createdAt          time.Time
	updatedAt          time.Time
	closedAt           *time.Time
	comments           []*Comment
}

func NewTicket(
	subject string,
	description string,
	priority vo.Priority,
	creatorID uint,
	tags []string,
	customFields map[string]string,
) (*Ticket, error) {
	if len(subject) == 0 {
		return nil, fmt.Errorf("subject is required")
	}
	if len(subject) > 200 {
		return nil, fmt.Errorf("subject exceeds maximum length of 200 characters")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if len(description) > 5000 {
		return nil, fmt.Errorf("description exceeds maximum length of 5000 characters")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if creatorID == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}

	if tags == nil {
		tags = []string{}
	}
	if customFields == nil {
		customFields = make(map[string]string)
	}

	now := biztime.NowUTC()
	slaDueTime := now.Add(time.Duration(priority.GetSLAHours()) * time.Hour)

	return &Ticket{
		subject:      subject,
		description:  description,
		priority:     priority,
		status:       vo.StatusOpen,
		creatorID:    creatorID,
		tags:         tags,
		customFields: customFields,
		slaDueTime:   &slaDueTime,
		version:      1,
		createdAt:    now,
		updatedAt:    now,
		comments:     []*Comment{},
	}, nil
}

// ReconstructTicket rebuilds a ticket from persistence without re-running
// creation side effects.
func ReconstructTicket(
	id uint,
	number string,
	subject string,
	description string,
	priority vo.Priority,
	status vo.TicketStatus,
	creatorID uint,
	assigneeID *uint,
	tags []string,
	customFields map[string]string,
	autoAssigned bool,
	matchedRuleID *uint,
	assignmentAttempts int,
	slaDueTime *time.Time,
	firstResponseAt *time.Time,
	resolvedAt *time.Time,
	version int,
	createdAt, updatedAt time.Time,
	closedAt *time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(number) == 0 {
		return nil, fmt.Errorf("ticket number is required")
	}
	if len(subject) == 0 {
		return nil, fmt.Errorf("subject is required")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}

	if tags == nil {
		tags = []string{}
	}
	if customFields == nil {
		customFields = make(map[string]string)
	}

	return &Ticket{
		id:                 id,
		number:             number,
		subject:            subject,
		description:        description,
		priority:           priority,
		status:             status,
		creatorID:          creatorID,
		assigneeID:         assigneeID,
		tags:               tags,
		customFields:       customFields,
		autoAssigned:       autoAssigned,
		matchedRuleID:      matchedRuleID,
		assignmentAttempts: assignmentAttempts,
		slaDueTime:         slaDueTime,
		firstResponseAt:    firstResponseAt,
		resolvedAt:         resolvedAt,
		version:            version,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
		closedAt:           closedAt,
		comments:           []*Comment{},
	}, nil
}

func (t *Ticket) ID() uint                  { return t.id }
func (t *Ticket) Number() string            { return t.number }
func (t *Ticket) Subject() string           { return t.subject }
func (t *Ticket) Description() string       { return t.description }
func (t *Ticket) Priority() vo.Priority     { return t.priority }
func (t *Ticket) Status() vo.TicketStatus   { return t.status }
func (t *Ticket) CreatorID() uint           { return t.creatorID }
func (t *Ticket) AssigneeID() *uint         { return t.assigneeID }
func (t *Ticket) AutoAssigned() bool        { return t.autoAssigned }
func (t *Ticket) MatchedRuleID() *uint      { return t.matchedRuleID }
func (t *Ticket) AssignmentAttempts() int   { return t.assignmentAttempts }
func (t *Ticket) SLADueTime() *time.Time    { return t.slaDueTime }
func (t *Ticket) FirstResponseAt() *time.Time { return t.firstResponseAt }
func (t *Ticket) ResolvedAt() *time.Time    { return t.resolvedAt }
func (t *Ticket) Version() int              { return t.version }
func (t *Ticket) CreatedAt() time.Time      { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time      { return t.updatedAt }
func (t *Ticket) ClosedAt() *time.Time      { return t.closedAt }

func (t *Ticket) Tags() []string {
	tagsCopy := make([]string, len(t.tags))
	copy(tagsCopy, t.tags)
	return tagsCopy
}

func (t *Ticket) CustomFields() map[string]string {
	fieldsCopy := make(map[string]string, len(t.customFields))
	for k, v := range t.customFields {
		fieldsCopy[k] = v
	}
	return fieldsCopy
}

func (t *Ticket) Comments() []*Comment {
	commentsCopy := make([]*Comment, len(t.comments))
	copy(commentsCopy, t.comments)
	return commentsCopy
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *Ticket) SetNumber(number string) error {
	if len(t.number) > 0 {
		return fmt.Errorf("ticket number is already set")
	}
	if len(number) == 0 {
		return fmt.Errorf("ticket number cannot be empty")
	}
	t.number = number
	return nil
}

// AssignTo sets the assignee for a manual assignment.
func (t *Ticket) AssignTo(assigneeID uint) error {
	if assigneeID == 0 {
		return fmt.Errorf("assignee ID cannot be zero")
	}
	if t.status.IsClosed() || t.status.IsArchived() {
		return fmt.Errorf("cannot assign a %s ticket", t.status)
	}

	t.assigneeID = &assigneeID
	t.autoAssigned = false
	t.matchedRuleID = nil
	t.touch()

	return nil
}

// AutoAssignTo sets the assignee chosen by the routing engine and records
// which rule produced the match.
func (t *Ticket) AutoAssignTo(assigneeID uint, ruleID uint) error {
	if assigneeID == 0 {
		return fmt.Errorf("assignee ID cannot be zero")
	}
	if ruleID == 0 {
		return fmt.Errorf("rule ID cannot be zero")
	}
	if t.assigneeID != nil {
		return fmt.Errorf("ticket is already assigned")
	}

	t.assigneeID = &assigneeID
	t.autoAssigned = true
	t.matchedRuleID = &ruleID
	t.touch()

	return nil
}

// RecordAssignmentAttempt increments the attempt counter. It is recorded on
// every routing pass, including ones that end in a skip.
func (t *Ticket) RecordAssignmentAttempt() {
	t.assignmentAttempts++
	t.touch()
}

func (t *Ticket) ChangeStatus(newStatus vo.TicketStatus) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}

	if t.status == newStatus {
		return nil
	}

	if !t.status.CanTransitionTo(newStatus) {
		return fmt.Errorf("cannot transition from %s to %s", t.status, newStatus)
	}

	t.status = newStatus
	t.touch()

	now := biztime.NowUTC()
	if newStatus.IsResolved() && t.resolvedAt == nil {
		t.resolvedAt = &now
	}
	if newStatus.IsClosed() && t.closedAt == nil {
		t.closedAt = &now
	}
	if newStatus.IsOpen() {
		// Reopened tickets lose their terminal timestamps.
		t.closedAt = nil
		t.resolvedAt = nil
	}

	return nil
}

func (t *Ticket) ChangePriority(newPriority vo.Priority) error {
	if !newPriority.IsValid() {
		return fmt.Errorf("invalid priority: %s", newPriority)
	}

	if t.priority == newPriority {
		return nil
	}

	t.priority = newPriority
	t.touch()

	if !t.createdAt.IsZero() {
		newSLADueTime := t.createdAt.Add(time.Duration(newPriority.GetSLAHours()) * time.Hour)
		t.slaDueTime = &newSLADueTime
	}

	return nil
}

// UpdateDetails replaces the editable ticket fields. Nil slices/maps leave
// the corresponding field untouched.
func (t *Ticket) UpdateDetails(subject, description string, tags []string, customFields map[string]string) error {
	if len(subject) > 0 {
		if len(subject) > 200 {
			return fmt.Errorf("subject exceeds maximum length of 200 characters")
		}
		t.subject = subject
	}
	if len(description) > 0 {
		if len(description) > 5000 {
			return fmt.Errorf("description exceeds maximum length of 5000 characters")
		}
		t.description = description
	}
	if tags != nil {
		t.tags = tags
	}
	if customFields != nil {
		t.customFields = customFields
	}
	t.touch()
	return nil
}

func (t *Ticket) AddComment(comment *Comment) error {
	if comment == nil {
		return fmt.Errorf("comment cannot be nil")
	}

	if comment.TicketID() != t.id {
		return fmt.Errorf("comment ticket ID mismatch")
	}

	t.comments = append(t.comments, comment)
	t.updatedAt = biztime.NowUTC()

	// The first public staff reply marks the first-response time.
	if t.firstResponseAt == nil && !comment.IsInternal() && comment.AuthorID() != t.creatorID {
		now := biztime.NowUTC()
		t.firstResponseAt = &now
	}

	return nil
}

func (t *Ticket) IsOverdue() bool {
	if t.slaDueTime == nil {
		return false
	}

	if !t.status.IsActive() {
		return false
	}

	return biztime.NowUTC().After(*t.slaDueTime)
}

func (t *Ticket) CanBeViewedBy(userID uint, role string) bool {
	if role == "admin" || role == "agent" {
		return true
	}

	if t.creatorID == userID {
		return true
	}

	return t.assigneeID != nil && *t.assigneeID == userID
}

func (t *Ticket) touch() {
	t.updatedAt = biztime.NowUTC()
	t.version++
}
