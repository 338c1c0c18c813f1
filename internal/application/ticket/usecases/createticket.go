package usecases

import (
	"context"
	"strings"
	"time"

	routingusecases "deskd/internal/application/routing/usecases"
	"deskd/internal/domain/customfield"
	"deskd/internal/domain/shared/events"
	"deskd/internal/domain/ticket"
	vo "deskd/internal/domain/ticket/valueobjects"
	"deskd/internal/shared/errors"
	"deskd/internal/shared/logger"
)

type CreateTicketCommand struct {
	Subject      string
	Description  string
	Priority     string
	CreatorID    uint
	Tags         []string
	CustomFields map[string]string
}

type CreateTicketResult struct {
	TicketID   uint
	Number     string
	Status     string
	AssigneeID *uint
	CreatedAt  time.Time
}

// CreateTicketUseCase persists a new ticket and, when enabled, hands it to
// the routing engine. Auto-assignment is best effort: a routing failure is
// logged and the ticket stays unassigned.
type CreateTicketUseCase struct {
	ticketRepo         ticket.TicketRepository
	fieldRepo          customfield.DefinitionRepository
	numberGen          ticket.NumberGenerator
	autoAssigner       routingusecases.AutoAssignTicketExecutor
	autoAssignOnCreate bool
	dispatcher         events.Dispatcher
	logger             logger.Interface
}

// WithDispatcher enables domain event publication. Without it events are
// silently dropped.
func (uc *CreateTicketUseCase) WithDispatcher(d events.Dispatcher) *CreateTicketUseCase {
	uc.dispatcher = d
	return uc
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	fieldRepo customfield.DefinitionRepository,
	numberGen ticket.NumberGenerator,
	autoAssigner routingusecases.AutoAssignTicketExecutor,
	autoAssignOnCreate bool,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo:         ticketRepo,
		fieldRepo:          fieldRepo,
		numberGen:          numberGen,
		autoAssigner:       autoAssigner,
		autoAssignOnCreate: autoAssignOnCreate,
		logger:             logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case", "subject", cmd.Subject, "creator_id", cmd.CreatorID)

	if err := uc.validateCommand(ctx, cmd); err != nil {
		uc.logger.Errorw("invalid create ticket command", "error", err)
		return nil, err
	}

	// Intake classification suggests attributes the routing rules match
	// against. An explicit priority from the creator always wins.
	suggestion := ticket.Classify(cmd.Subject, cmd.Description)

	priority := vo.Priority(cmd.Priority)
	if cmd.Priority == "" {
		priority = suggestion.Priority
	}

	tags := mergeTags(cmd.Tags, suggestion.Tags)
	if len(suggestion.Tags) > 0 {
		uc.logger.Infow("classified ticket intake",
			"suggested_tags", suggestion.Tags, "suggested_priority", suggestion.Priority.String())
	}

	newTicket, err := ticket.NewTicket(
		cmd.Subject,
		cmd.Description,
		priority,
		cmd.CreatorID,
		tags,
		cmd.CustomFields,
	)
	if err != nil {
		uc.logger.Errorw("failed to create ticket entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	number, err := uc.numberGen.Generate(ctx)
	if err != nil {
		uc.logger.Errorw("failed to generate ticket number", "error", err)
		return nil, errors.NewInternalError("failed to generate ticket number")
	}
	if err := newTicket.SetNumber(number); err != nil {
		return nil, errors.NewInternalError(err.Error())
	}

	if err := uc.ticketRepo.Create(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket created successfully", "ticket_id", newTicket.ID(), "number", newTicket.Number())

	if uc.dispatcher != nil {
		event := ticket.NewTicketCreatedEvent(newTicket.ID(), newTicket.Number(), cmd.CreatorID, priority.String())
		if err := uc.dispatcher.Dispatch(ctx, event); err != nil {
			uc.logger.Warnw("failed to dispatch ticket created event", "ticket_id", newTicket.ID(), "error", err)
		}
	}

	assigneeID := uc.tryAutoAssign(ctx, newTicket.ID())

	return &CreateTicketResult{
		TicketID:   newTicket.ID(),
		Number:     newTicket.Number(),
		Status:     newTicket.Status().String(),
		AssigneeID: assigneeID,
		CreatedAt:  newTicket.CreatedAt(),
	}, nil
}

// tryAutoAssign runs the routing engine after creation. Failures are
// swallowed; creation already succeeded.
func (uc *CreateTicketUseCase) tryAutoAssign(ctx context.Context, ticketID uint) *uint {
	if !uc.autoAssignOnCreate || uc.autoAssigner == nil {
		return nil
	}

	result, err := uc.autoAssigner.Execute(ctx, routingusecases.AutoAssignTicketCommand{TicketID: ticketID})
	if err != nil {
		uc.logger.Errorw("auto assignment failed after ticket creation", "ticket_id", ticketID, "error", err)
		return nil
	}

	if !result.Assigned {
		uc.logger.Infow("ticket left unassigned", "ticket_id", ticketID, "skip_reason", result.SkipReason)
		return nil
	}

	return &result.AssigneeID
}

// mergeTags appends suggested tags the creator did not already supply.
func mergeTags(supplied, suggested []string) []string {
	merged := supplied
	for _, tag := range suggested {
		found := false
		for _, have := range supplied {
			if strings.EqualFold(have, tag) {
				found = true
				break
			}
		}
		if !found {
			merged = append(merged, tag)
		}
	}
	return merged
}

func (uc *CreateTicketUseCase) validateCommand(ctx context.Context, cmd CreateTicketCommand) error {
	if len(cmd.Subject) == 0 {
		return errors.NewValidationError("subject is required")
	}

	if len(cmd.Subject) > 200 {
		return errors.NewValidationError("subject exceeds maximum length of 200 characters")
	}

	if len(cmd.Description) == 0 {
		return errors.NewValidationError("description is required")
	}

	if len(cmd.Description) > 5000 {
		return errors.NewValidationError("description exceeds maximum length of 5000 characters")
	}

	if cmd.CreatorID == 0 {
		return errors.NewValidationError("creator ID is required")
	}

	if cmd.Priority != "" {
		priority := vo.Priority(cmd.Priority)
		if !priority.IsValid() {
			return errors.NewValidationError("invalid priority")
		}
	}

	return uc.validateCustomFields(ctx, cmd.CustomFields)
}

// validateCustomFields checks submitted values against active field
// definitions. Unknown keys are rejected.
func (uc *CreateTicketUseCase) validateCustomFields(ctx context.Context, fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}

	definitions, err := uc.fieldRepo.ListActive(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load custom field definitions", "error", err)
		return err
	}

	byKey := make(map[string]*customfield.Definition, len(definitions))
	for _, def := range definitions {
		byKey[def.Key()] = def
	}

	for key, value := range fields {
		def, ok := byKey[key]
		if !ok {
			return errors.NewValidationError("unknown custom field: " + key)
		}
		if err := def.ValidateValue(value); err != nil {
			return errors.NewValidationError(err.Error())
		}
	}

	return nil
}
