package usecases

import (
	"context"

	"deskd/internal/domain/routing"
	"deskd/internal/domain/shared/events"
	"deskd/internal/domain/ticket"
	"deskd/internal/domain/user"
	"deskd/internal/shared/errors"
	"deskd/internal/shared/logger"
)

// Skip reasons reported when auto-assignment ends without an assignee.
const (
	SkipReasonAlreadyAssigned = "already_assigned"
	SkipReasonStaffCreator    = "staff_creator"
	SkipReasonNoMatchingRule  = "no_matching_rule"
	SkipReasonNoEligibleAgent = "no_eligible_agent"
)

type AutoAssignTicketCommand struct {
	TicketID uint

	// DryRun evaluates the full pipeline without persisting anything.
	DryRun bool
}

type AutoAssignTicketResult struct {
	Assigned   bool
	SkipReason string
	AssigneeID uint
	RuleID     uint
	RuleName   string
}

// AutoAssignTicketUseCase runs the full routing pipeline for one ticket:
// match rules against the ticket, take the required skills from the winning
// rule, pick the least-loaded qualified agent, and persist the assignment.
// Every terminating condition short of a repository failure is a skip, not
// an error.
type AutoAssignTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	userRepo   user.UserRepository
	ruleRepo   routing.RuleRepository
	dispatcher events.Dispatcher
	logger     logger.Interface
}

func NewAutoAssignTicketUseCase(
	ticketRepo ticket.TicketRepository,
	userRepo user.UserRepository,
	ruleRepo routing.RuleRepository,
	logger logger.Interface,
) *AutoAssignTicketUseCase {
	return &AutoAssignTicketUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		ruleRepo:   ruleRepo,
		logger:     logger,
	}
}

// WithDispatcher enables domain event publication. Without it events are
// silently dropped.
func (uc *AutoAssignTicketUseCase) WithDispatcher(d events.Dispatcher) *AutoAssignTicketUseCase {
	uc.dispatcher = d
	return uc
}

func (uc *AutoAssignTicketUseCase) Execute(ctx context.Context, cmd AutoAssignTicketCommand) (*AutoAssignTicketResult, error) {
	uc.logger.Infow("executing auto assign ticket use case", "ticket_id", cmd.TicketID, "dry_run", cmd.DryRun)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to find ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	if t.AssigneeID() != nil {
		return &AutoAssignTicketResult{SkipReason: SkipReasonAlreadyAssigned}, nil
	}

	creator, err := uc.userRepo.FindByID(ctx, t.CreatorID())
	if err != nil {
		uc.logger.Errorw("failed to find ticket creator", "creator_id", t.CreatorID(), "error", err)
		return nil, err
	}
	if creator != nil && creator.IsStaff() {
		uc.logger.Infow("skipping auto assignment for staff-created ticket",
			"ticket_id", t.ID(), "creator_id", creator.ID())
		return &AutoAssignTicketResult{SkipReason: SkipReasonStaffCreator}, nil
	}

	if !cmd.DryRun {
		t.RecordAssignmentAttempt()
	}

	rules, err := uc.ruleRepo.ListActive(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list active rules", "error", err)
		return nil, err
	}

	matched := routing.MatchRules(rules, routing.TicketAttributes{
		Priority:     t.Priority(),
		Tags:         t.Tags(),
		CustomFields: t.CustomFields(),
	})

	if len(matched) == 0 {
		uc.logger.Infow("no routing rule matched ticket", "ticket_id", t.ID())
		return uc.finishSkip(ctx, t, cmd.DryRun, SkipReasonNoMatchingRule)
	}

	topRule := matched[0]
	requiredSkills := topRule.RequiredSkills()

	candidates, err := loadCandidates(ctx, uc.userRepo, uc.ticketRepo, requiredSkills)
	if err != nil {
		uc.logger.Errorw("failed to load agent candidates", "error", err)
		return nil, err
	}

	best := routing.SelectAgent(candidates, requiredSkills)
	if best == nil {
		uc.logger.Infow("no eligible agent for matched rule",
			"ticket_id", t.ID(), "rule_id", topRule.ID(), "required_skills", requiredSkills)
		return uc.finishSkip(ctx, t, cmd.DryRun, SkipReasonNoEligibleAgent)
	}

	result := &AutoAssignTicketResult{
		Assigned:   true,
		AssigneeID: best.Agent.ID(),
		RuleID:     topRule.ID(),
		RuleName:   topRule.Name(),
	}

	if cmd.DryRun {
		return result, nil
	}

	if err := t.AutoAssignTo(best.Agent.ID(), topRule.ID()); err != nil {
		uc.logger.Errorw("failed to apply auto assignment", "ticket_id", t.ID(), "error", err)
		return nil, errors.NewInternalError("failed to apply auto assignment")
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to persist auto assignment", "ticket_id", t.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket auto assigned",
		"ticket_id", t.ID(),
		"assignee_id", best.Agent.ID(),
		"rule_id", topRule.ID(),
		"active_tickets", best.ActiveTickets)

	if uc.dispatcher != nil {
		event := ticket.NewTicketAutoAssignedEvent(t.ID(), best.Agent.ID(), topRule.ID())
		if err := uc.dispatcher.Dispatch(ctx, event); err != nil {
			uc.logger.Warnw("failed to dispatch auto assigned event", "ticket_id", t.ID(), "error", err)
		}
	}

	return result, nil
}

// finishSkip persists the attempt counter on a skip outcome and returns the
// skip result.
func (uc *AutoAssignTicketUseCase) finishSkip(ctx context.Context, t *ticket.Ticket, dryRun bool, reason string) (*AutoAssignTicketResult, error) {
	if !dryRun {
		if err := uc.ticketRepo.Update(ctx, t); err != nil {
			uc.logger.Errorw("failed to record assignment attempt", "ticket_id", t.ID(), "error", err)
			return nil, err
		}
	}
	return &AutoAssignTicketResult{SkipReason: reason}, nil
}
