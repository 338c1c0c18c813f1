package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deskd/internal/domain/routing"
	"deskd/internal/domain/ticket"
	ticketvo "deskd/internal/domain/ticket/valueobjects"
	"deskd/internal/domain/user"
	uservo "deskd/internal/domain/user/valueobjects"
	"deskd/internal/shared/authorization"
	"deskd/internal/shared/errors"
)

func newAgent(t *testing.T, id uint, email string, skills ...string) *user.User {
	t.Helper()
	emailVO, err := uservo.NewEmail(email)
	require.NoError(t, err)
	nameVO, err := uservo.NewName("Agent Smith")
	require.NoError(t, err)

	agent, err := user.NewUser(emailVO, nameVO, "hash", authorization.RoleAgent)
	require.NoError(t, err)
	require.NoError(t, agent.SetID(id))

	for _, s := range skills {
		skill, err := uservo.NewSkill("support", s, 3)
		require.NoError(t, err)
		require.NoError(t, agent.AddSkill(skill))
	}
	return agent
}

func newCustomer(t *testing.T, id uint) *user.User {
	t.Helper()
	emailVO, err := uservo.NewEmail(fmt.Sprintf("customer%d@example.com", id))
	require.NoError(t, err)
	nameVO, err := uservo.NewName("Jamie Customer")
	require.NoError(t, err)

	customer, err := user.NewUser(emailVO, nameVO, "hash", authorization.RoleCustomer)
	require.NoError(t, err)
	require.NoError(t, customer.SetID(id))
	return customer
}

func newOpenTicket(t *testing.T, id uint, priority ticketvo.Priority, tags []string) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.NewTicket("Cannot pay invoice", "Card declined at checkout.", priority, 100, tags, nil)
	require.NoError(t, err)
	require.NoError(t, tk.SetID(id))
	require.NoError(t, tk.SetNumber(fmt.Sprintf("T-20260830-%04d", id)))
	return tk
}

func newRuleWithSkills(t *testing.T, id uint, priority *ticketvo.Priority, tags []string, skills []string, weight int) *routing.Rule {
	t.Helper()
	rule, err := routing.NewRule(fmt.Sprintf("rule-%d", id), "", routing.Conditions{
		Priority: priority,
		Tags:     tags,
	}, skills, weight, 1)
	require.NoError(t, err)
	require.NoError(t, rule.SetID(id))
	return rule
}

func TestAutoAssignTicket_AssignsLeastLoadedSkilledAgent(t *testing.T) {
	urgent := ticketvo.PriorityUrgent
	tk := newOpenTicket(t, 1, urgent, []string{"billing"})
	rule := newRuleWithSkills(t, 10, &urgent, []string{"billing"}, []string{"billing"}, 5)

	agentA := newAgent(t, 2, "a@example.com", "billing")
	agentB := newAgent(t, 3, "b@example.com", "billing")

	var savedTicket *ticket.Ticket
	ticketRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return tk, nil
		},
		CountActiveByAssigneesFunc: func(ctx context.Context, ids []uint) (map[uint]int, error) {
			return map[uint]int{2: 3, 3: 1}, nil
		},
		UpdateFunc: func(ctx context.Context, updated *ticket.Ticket) error {
			savedTicket = updated
			return nil
		},
	}
	userRepo := &mockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return newCustomer(t, id), nil
		},
		ListActiveAgentsFunc: func(ctx context.Context) ([]*user.User, error) {
			return []*user.User{agentA, agentB}, nil
		},
	}
	ruleRepo := &mockRuleRepository{
		ListActiveFunc: func(ctx context.Context) ([]*routing.Rule, error) {
			return []*routing.Rule{rule}, nil
		},
	}

	uc := NewAutoAssignTicketUseCase(ticketRepo, userRepo, ruleRepo, &mockLogger{})
	result, err := uc.Execute(context.Background(), AutoAssignTicketCommand{TicketID: 1})

	require.NoError(t, err)
	assert.True(t, result.Assigned)
	assert.Equal(t, uint(3), result.AssigneeID)
	assert.Equal(t, uint(10), result.RuleID)

	require.NotNil(t, savedTicket)
	require.NotNil(t, savedTicket.AssigneeID())
	assert.Equal(t, uint(3), *savedTicket.AssigneeID())
	assert.True(t, savedTicket.AutoAssigned())
	require.NotNil(t, savedTicket.MatchedRuleID())
	assert.Equal(t, uint(10), *savedTicket.MatchedRuleID())
	assert.Equal(t, 1, savedTicket.AssignmentAttempts())
}

func TestAutoAssignTicket_HighestWeightRuleWins(t *testing.T) {
	tk := newOpenTicket(t, 1, ticketvo.PriorityNormal, []string{"billing"})

	weak := newRuleWithSkills(t, 10, nil, []string{"billing"}, []string{"billing"}, 1)
	strong := newRuleWithSkills(t, 11, nil, []string{"billing"}, []string{"escalations"}, 9)

	escalationAgent := newAgent(t, 2, "esc@example.com", "escalations")

	ticketRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
		CountActiveByAssigneesFunc: func(ctx context.Context, ids []uint) (map[uint]int, error) {
			return map[uint]int{2: 0}, nil
		},
	}
	userRepo := &mockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) { return newCustomer(t, id), nil },
		ListActiveAgentsFunc: func(ctx context.Context) ([]*user.User, error) {
			return []*user.User{escalationAgent}, nil
		},
	}
	ruleRepo := &mockRuleRepository{
		ListActiveFunc: func(ctx context.Context) ([]*routing.Rule, error) {
			return []*routing.Rule{weak, strong}, nil
		},
	}

	uc := NewAutoAssignTicketUseCase(ticketRepo, userRepo, ruleRepo, &mockLogger{})
	result, err := uc.Execute(context.Background(), AutoAssignTicketCommand{TicketID: 1})

	require.NoError(t, err)
	assert.True(t, result.Assigned)
	assert.Equal(t, uint(11), result.RuleID)
}

func TestAutoAssignTicket_SkipsStaffCreatedTicket(t *testing.T) {
	tk := newOpenTicket(t, 1, ticketvo.PriorityNormal, nil)

	staff := newAgent(t, 100, "staff@example.com")
	ticketRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
		UpdateFunc: func(ctx context.Context, updated *ticket.Ticket) error {
			t.Fatal("skip must not persist anything")
			return nil
		},
	}
	userRepo := &mockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) { return staff, nil },
	}

	uc := NewAutoAssignTicketUseCase(ticketRepo, userRepo, &mockRuleRepository{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), AutoAssignTicketCommand{TicketID: 1})

	require.NoError(t, err)
	assert.False(t, result.Assigned)
	assert.Equal(t, SkipReasonStaffCreator, result.SkipReason)
}

func TestAutoAssignTicket_NoMatchingRuleIsASkip(t *testing.T) {
	tk := newOpenTicket(t, 1, ticketvo.PriorityLow, []string{"misc"})
	urgent := ticketvo.PriorityUrgent
	rule := newRuleWithSkills(t, 10, &urgent, nil, nil, 5)

	updated := false
	ticketRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
		UpdateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			updated = true
			return nil
		},
	}
	userRepo := &mockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) { return newCustomer(t, id), nil },
	}
	ruleRepo := &mockRuleRepository{
		ListActiveFunc: func(ctx context.Context) ([]*routing.Rule, error) {
			return []*routing.Rule{rule}, nil
		},
	}

	uc := NewAutoAssignTicketUseCase(ticketRepo, userRepo, ruleRepo, &mockLogger{})
	result, err := uc.Execute(context.Background(), AutoAssignTicketCommand{TicketID: 1})

	require.NoError(t, err)
	assert.False(t, result.Assigned)
	assert.Equal(t, SkipReasonNoMatchingRule, result.SkipReason)
	assert.Nil(t, tk.AssigneeID())

	// The attempt is still recorded and persisted.
	assert.True(t, updated)
	assert.Equal(t, 1, tk.AssignmentAttempts())
}

func TestAutoAssignTicket_NoEligibleAgentIsASkip(t *testing.T) {
	tk := newOpenTicket(t, 1, ticketvo.PriorityNormal, []string{"billing"})
	rule := newRuleWithSkills(t, 10, nil, []string{"billing"}, []string{"kubernetes"}, 5)

	generalist := newAgent(t, 2, "gen@example.com", "billing")

	ticketRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}
	userRepo := &mockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) { return newCustomer(t, id), nil },
		ListActiveAgentsFunc: func(ctx context.Context) ([]*user.User, error) {
			return []*user.User{generalist}, nil
		},
	}
	ruleRepo := &mockRuleRepository{
		ListActiveFunc: func(ctx context.Context) ([]*routing.Rule, error) {
			return []*routing.Rule{rule}, nil
		},
	}

	uc := NewAutoAssignTicketUseCase(ticketRepo, userRepo, ruleRepo, &mockLogger{})
	result, err := uc.Execute(context.Background(), AutoAssignTicketCommand{TicketID: 1})

	require.NoError(t, err)
	assert.False(t, result.Assigned)
	assert.Equal(t, SkipReasonNoEligibleAgent, result.SkipReason)
	assert.Nil(t, tk.AssigneeID())
}

func TestAutoAssignTicket_AlreadyAssignedIsASkip(t *testing.T) {
	tk := newOpenTicket(t, 1, ticketvo.PriorityNormal, nil)
	require.NoError(t, tk.AssignTo(50))

	ticketRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}

	uc := NewAutoAssignTicketUseCase(ticketRepo, &mockUserRepository{}, &mockRuleRepository{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), AutoAssignTicketCommand{TicketID: 1})

	require.NoError(t, err)
	assert.False(t, result.Assigned)
	assert.Equal(t, SkipReasonAlreadyAssigned, result.SkipReason)
}

func TestAutoAssignTicket_TicketNotFound(t *testing.T) {
	uc := NewAutoAssignTicketUseCase(&mockTicketRepository{}, &mockUserRepository{}, &mockRuleRepository{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), AutoAssignTicketCommand{TicketID: 99})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestAutoAssignTicket_RepositoryErrorPropagates(t *testing.T) {
	tk := newOpenTicket(t, 1, ticketvo.PriorityNormal, nil)
	rule := newRuleWithSkills(t, 10, nil, nil, nil, 1)
	agent := newAgent(t, 2, "a@example.com")

	ticketRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
		CountActiveByAssigneesFunc: func(ctx context.Context, ids []uint) (map[uint]int, error) {
			return map[uint]int{2: 0}, nil
		},
		UpdateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			return fmt.Errorf("connection reset")
		},
	}
	userRepo := &mockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) { return newCustomer(t, id), nil },
		ListActiveAgentsFunc: func(ctx context.Context) ([]*user.User, error) {
			return []*user.User{agent}, nil
		},
	}
	ruleRepo := &mockRuleRepository{
		ListActiveFunc: func(ctx context.Context) ([]*routing.Rule, error) {
			return []*routing.Rule{rule}, nil
		},
	}

	uc := NewAutoAssignTicketUseCase(ticketRepo, userRepo, ruleRepo, &mockLogger{})
	_, err := uc.Execute(context.Background(), AutoAssignTicketCommand{TicketID: 1})
	assert.Error(t, err)
}

func TestAutoAssignTicket_DryRunPersistsNothing(t *testing.T) {
	tk := newOpenTicket(t, 1, ticketvo.PriorityNormal, nil)
	rule := newRuleWithSkills(t, 10, nil, nil, nil, 1)
	agent := newAgent(t, 2, "a@example.com")

	ticketRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
		CountActiveByAssigneesFunc: func(ctx context.Context, ids []uint) (map[uint]int, error) {
			return map[uint]int{2: 0}, nil
		},
		UpdateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			return fmt.Errorf("dry run must not persist")
		},
	}
	userRepo := &mockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) { return newCustomer(t, id), nil },
		ListActiveAgentsFunc: func(ctx context.Context) ([]*user.User, error) {
			return []*user.User{agent}, nil
		},
	}
	ruleRepo := &mockRuleRepository{
		ListActiveFunc: func(ctx context.Context) ([]*routing.Rule, error) {
			return []*routing.Rule{rule}, nil
		},
	}

	uc := NewAutoAssignTicketUseCase(ticketRepo, userRepo, ruleRepo, &mockLogger{})
	result, err := uc.Execute(context.Background(), AutoAssignTicketCommand{TicketID: 1, DryRun: true})

	require.NoError(t, err)
	assert.True(t, result.Assigned)
	assert.Equal(t, uint(2), result.AssigneeID)
	assert.Nil(t, tk.AssigneeID())
	assert.Equal(t, 0, tk.AssignmentAttempts())
}
