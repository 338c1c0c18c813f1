package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	routingusecases "deskd/internal/application/routing/usecases"
	"deskd/internal/domain/customfield"
	"deskd/internal/domain/ticket"
	"deskd/internal/shared/errors"
)

func newCreateTicketUseCase(
	ticketRepo *mockTicketRepository,
	fieldRepo *mockDefinitionRepository,
	assigner *mockAutoAssigner,
	autoAssignOnCreate bool,
) *CreateTicketUseCase {
	return NewCreateTicketUseCase(
		ticketRepo,
		fieldRepo,
		&mockNumberGenerator{},
		assigner,
		autoAssignOnCreate,
		&mockLogger{},
	)
}

func TestCreateTicket_Success(t *testing.T) {
	var saved *ticket.Ticket
	ticketRepo := &mockTicketRepository{
		CreateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			saved = tk
			return tk.SetID(1)
		},
	}

	uc := newCreateTicketUseCase(ticketRepo, &mockDefinitionRepository{}, nil, false)
	result, err := uc.Execute(context.Background(), CreateTicketCommand{
		Subject:     "Login broken",
		Description: "I cannot log in since this morning.",
		Priority:    "high",
		CreatorID:   10,
		Tags:        []string{"auth"},
	})

	require.NoError(t, err)
	assert.Equal(t, uint(1), result.TicketID)
	assert.Equal(t, "T-20260830-0001", result.Number)
	assert.Equal(t, "open", result.Status)
	assert.Nil(t, result.AssigneeID)

	require.NotNil(t, saved)
	assert.Equal(t, "high", saved.Priority().String())
}

func TestCreateTicket_DefaultsToNormalPriority(t *testing.T) {
	ticketRepo := &mockTicketRepository{
		CreateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			assert.Equal(t, "normal", tk.Priority().String())
			return tk.SetID(1)
		},
	}

	uc := newCreateTicketUseCase(ticketRepo, &mockDefinitionRepository{}, nil, false)
	_, err := uc.Execute(context.Background(), CreateTicketCommand{
		Subject:     "No priority given",
		Description: "Use the default.",
		CreatorID:   10,
	})
	require.NoError(t, err)
}

func TestCreateTicket_ValidationFailures(t *testing.T) {
	uc := newCreateTicketUseCase(&mockTicketRepository{}, &mockDefinitionRepository{}, nil, false)

	tests := []struct {
		name string
		cmd  CreateTicketCommand
	}{
		{"missing subject", CreateTicketCommand{Description: "d", CreatorID: 1}},
		{"missing description", CreateTicketCommand{Subject: "s", CreatorID: 1}},
		{"missing creator", CreateTicketCommand{Subject: "s", Description: "d"}},
		{"bad priority", CreateTicketCommand{Subject: "s", Description: "d", CreatorID: 1, Priority: "critical"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.cmd)
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}

func TestCreateTicket_CustomFieldValidation(t *testing.T) {
	tierField, err := customfield.NewDefinition("tier", "Account tier", customfield.FieldTypeSelect, []string{"free", "pro"}, false)
	require.NoError(t, err)
	require.NoError(t, tierField.SetID(1))

	fieldRepo := &mockDefinitionRepository{
		ListActiveFunc: func(ctx context.Context) ([]*customfield.Definition, error) {
			return []*customfield.Definition{tierField}, nil
		},
	}
	ticketRepo := &mockTicketRepository{
		CreateFunc: func(ctx context.Context, tk *ticket.Ticket) error { return tk.SetID(1) },
	}

	uc := newCreateTicketUseCase(ticketRepo, fieldRepo, nil, false)

	_, err = uc.Execute(context.Background(), CreateTicketCommand{
		Subject: "s", Description: "d", CreatorID: 1,
		CustomFields: map[string]string{"tier": "pro"},
	})
	assert.NoError(t, err)

	_, err = uc.Execute(context.Background(), CreateTicketCommand{
		Subject: "s", Description: "d", CreatorID: 1,
		CustomFields: map[string]string{"tier": "platinum"},
	})
	assert.True(t, errors.IsValidationError(err))

	_, err = uc.Execute(context.Background(), CreateTicketCommand{
		Subject: "s", Description: "d", CreatorID: 1,
		CustomFields: map[string]string{"nonexistent": "x"},
	})
	assert.True(t, errors.IsValidationError(err))
}

func TestCreateTicket_IntakeClassificationSuggestsAttributes(t *testing.T) {
	var saved *ticket.Ticket
	ticketRepo := &mockTicketRepository{
		CreateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			saved = tk
			return tk.SetID(1)
		},
	}

	uc := newCreateTicketUseCase(ticketRepo, &mockDefinitionRepository{}, nil, false)
	_, err := uc.Execute(context.Background(), CreateTicketCommand{
		Subject:     "Urgent: charged twice",
		Description: "Our last invoice shows a double payment.",
		CreatorID:   10,
	})

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "urgent", saved.Priority().String())
	assert.Equal(t, []string{"billing"}, saved.Tags())
}

func TestCreateTicket_ExplicitPriorityBeatsSuggestion(t *testing.T) {
	ticketRepo := &mockTicketRepository{
		CreateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			assert.Equal(t, "low", tk.Priority().String())
			return tk.SetID(1)
		},
	}

	uc := newCreateTicketUseCase(ticketRepo, &mockDefinitionRepository{}, nil, false)
	_, err := uc.Execute(context.Background(), CreateTicketCommand{
		Subject:     "Outage question",
		Description: "Was last week's outage related to my region?",
		Priority:    "low",
		CreatorID:   10,
	})
	require.NoError(t, err)
}

func TestCreateTicket_SuggestedTagsMergeWithoutDuplicates(t *testing.T) {
	ticketRepo := &mockTicketRepository{
		CreateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			assert.Equal(t, []string{"Billing"}, tk.Tags())
			return tk.SetID(1)
		},
	}

	uc := newCreateTicketUseCase(ticketRepo, &mockDefinitionRepository{}, nil, false)
	_, err := uc.Execute(context.Background(), CreateTicketCommand{
		Subject:     "Refund status",
		Description: "Checking on my refund from last week.",
		Tags:        []string{"Billing"},
		CreatorID:   10,
	})
	require.NoError(t, err)
}

func TestCreateTicket_AutoAssignHookReportsAssignee(t *testing.T) {
	ticketRepo := &mockTicketRepository{
		CreateFunc: func(ctx context.Context, tk *ticket.Ticket) error { return tk.SetID(7) },
	}
	assigner := &mockAutoAssigner{
		ExecuteFunc: func(ctx context.Context, cmd routingusecases.AutoAssignTicketCommand) (*routingusecases.AutoAssignTicketResult, error) {
			assert.Equal(t, uint(7), cmd.TicketID)
			return &routingusecases.AutoAssignTicketResult{Assigned: true, AssigneeID: 3, RuleID: 10}, nil
		},
	}

	uc := newCreateTicketUseCase(ticketRepo, &mockDefinitionRepository{}, assigner, true)
	result, err := uc.Execute(context.Background(), CreateTicketCommand{
		Subject: "s", Description: "d", CreatorID: 1,
	})

	require.NoError(t, err)
	require.NotNil(t, result.AssigneeID)
	assert.Equal(t, uint(3), *result.AssigneeID)
}

func TestCreateTicket_AutoAssignFailureIsSwallowed(t *testing.T) {
	ticketRepo := &mockTicketRepository{
		CreateFunc: func(ctx context.Context, tk *ticket.Ticket) error { return tk.SetID(7) },
	}
	assigner := &mockAutoAssigner{
		ExecuteFunc: func(ctx context.Context, cmd routingusecases.AutoAssignTicketCommand) (*routingusecases.AutoAssignTicketResult, error) {
			return nil, fmt.Errorf("routing engine unavailable")
		},
	}

	uc := newCreateTicketUseCase(ticketRepo, &mockDefinitionRepository{}, assigner, true)
	result, err := uc.Execute(context.Background(), CreateTicketCommand{
		Subject: "s", Description: "d", CreatorID: 1,
	})

	require.NoError(t, err)
	assert.Nil(t, result.AssigneeID)
}

func TestCreateTicket_SaveFailurePropagates(t *testing.T) {
	ticketRepo := &mockTicketRepository{
		CreateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			return fmt.Errorf("unique constraint violation")
		},
	}

	uc := newCreateTicketUseCase(ticketRepo, &mockDefinitionRepository{}, nil, false)
	_, err := uc.Execute(context.Background(), CreateTicketCommand{
		Subject: "s", Description: "d", CreatorID: 1,
	})
	assert.Error(t, err)
}
