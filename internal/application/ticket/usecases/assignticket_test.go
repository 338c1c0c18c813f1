package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deskd/internal/domain/ticket"
	ticketvo "deskd/internal/domain/ticket/valueobjects"
	"deskd/internal/domain/user"
	uservo "deskd/internal/domain/user/valueobjects"
	"deskd/internal/shared/authorization"
	"deskd/internal/shared/errors"
)

func newStoredTicket(t *testing.T, id uint) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.NewTicket("Subject", "Description", ticketvo.PriorityNormal, 100, nil, nil)
	require.NoError(t, err)
	require.NoError(t, tk.SetID(id))
	require.NoError(t, tk.SetNumber(fmt.Sprintf("T-20260830-%04d", id)))
	return tk
}

func newStoredUser(t *testing.T, id uint, role authorization.UserRole) *user.User {
	t.Helper()
	email, err := uservo.NewEmail(fmt.Sprintf("user%d@example.com", id))
	require.NoError(t, err)
	name, err := uservo.NewName("Test User")
	require.NoError(t, err)

	u, err := user.NewUser(email, name, "hash", role)
	require.NoError(t, err)
	require.NoError(t, u.SetID(id))
	return u
}

func TestAssignTicket_Success(t *testing.T) {
	tk := newStoredTicket(t, 1)
	agent := newStoredUser(t, 5, authorization.RoleAgent)

	updated := false
	ticketRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
		UpdateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			updated = true
			return nil
		},
	}
	userRepo := &mockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) { return agent, nil },
	}

	uc := NewAssignTicketUseCase(ticketRepo, userRepo, &mockLogger{})
	result, err := uc.Execute(context.Background(), AssignTicketCommand{
		TicketID: 1, AssigneeID: 5, AssignedBy: 2,
	})

	require.NoError(t, err)
	require.NotNil(t, result.AssigneeID)
	assert.Equal(t, uint(5), *result.AssigneeID)
	assert.False(t, result.AutoAssigned)
	assert.True(t, updated)
}

func TestAssignTicket_RejectsCustomerAssignee(t *testing.T) {
	tk := newStoredTicket(t, 1)
	customer := newStoredUser(t, 5, authorization.RoleCustomer)

	ticketRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}
	userRepo := &mockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) { return customer, nil },
	}

	uc := NewAssignTicketUseCase(ticketRepo, userRepo, &mockLogger{})
	_, err := uc.Execute(context.Background(), AssignTicketCommand{TicketID: 1, AssigneeID: 5})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestAssignTicket_RejectsSuspendedAssignee(t *testing.T) {
	tk := newStoredTicket(t, 1)
	agent := newStoredUser(t, 5, authorization.RoleAgent)
	require.NoError(t, agent.Suspend())

	ticketRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}
	userRepo := &mockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) { return agent, nil },
	}

	uc := NewAssignTicketUseCase(ticketRepo, userRepo, &mockLogger{})
	_, err := uc.Execute(context.Background(), AssignTicketCommand{TicketID: 1, AssigneeID: 5})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestAssignTicket_TicketNotFound(t *testing.T) {
	uc := NewAssignTicketUseCase(&mockTicketRepository{}, &mockUserRepository{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), AssignTicketCommand{TicketID: 9, AssigneeID: 5})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestChangeTicketStatus(t *testing.T) {
	tk := newStoredTicket(t, 1)
	ticketRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}

	uc := NewChangeTicketStatusUseCase(ticketRepo, &mockLogger{})

	result, err := uc.Execute(context.Background(), ChangeTicketStatusCommand{
		TicketID: 1, NewStatus: "in_progress", RequesterID: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, "in_progress", result.Status)

	// Illegal transition surfaces as a validation error.
	_, err = uc.Execute(context.Background(), ChangeTicketStatusCommand{
		TicketID: 1, NewStatus: "archived", RequesterID: 2,
	})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestChangeTicketPriority(t *testing.T) {
	tk := newStoredTicket(t, 1)
	ticketRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}

	uc := NewChangeTicketPriorityUseCase(ticketRepo, &mockLogger{})

	result, err := uc.Execute(context.Background(), ChangeTicketPriorityCommand{
		TicketID: 1, NewPriority: "urgent", RequesterID: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, "urgent", result.Priority)

	_, err = uc.Execute(context.Background(), ChangeTicketPriorityCommand{
		TicketID: 1, NewPriority: "critical", RequesterID: 2,
	})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestGetTicket_RoleScoping(t *testing.T) {
	tk := newStoredTicket(t, 1)
	ticketRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}

	uc := NewGetTicketUseCase(ticketRepo, &mockLogger{})

	// The creator can read it.
	_, err := uc.Execute(context.Background(), GetTicketCommand{TicketID: 1, RequesterID: 100, RequesterRole: "customer"})
	assert.NoError(t, err)

	// Staff can read anything.
	_, err = uc.Execute(context.Background(), GetTicketCommand{TicketID: 1, RequesterID: 1, RequesterRole: "agent"})
	assert.NoError(t, err)

	// An unrelated customer cannot.
	_, err = uc.Execute(context.Background(), GetTicketCommand{TicketID: 1, RequesterID: 999, RequesterRole: "customer"})
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeForbidden, appErr.Type)
}

func TestListTickets_CustomerScopedToOwnTickets(t *testing.T) {
	var capturedFilter ticket.ListFilter
	ticketRepo := &mockTicketRepository{
		ListFunc: func(ctx context.Context, filter ticket.ListFilter, offset, limit int) ([]*ticket.Ticket, int64, error) {
			capturedFilter = filter
			return nil, 0, nil
		},
	}

	uc := NewListTicketsUseCase(ticketRepo, &mockLogger{})
	_, err := uc.Execute(context.Background(), ListTicketsCommand{
		RequesterID: 100, RequesterRole: "customer", Page: 1, PageSize: 20,
	})

	require.NoError(t, err)
	require.NotNil(t, capturedFilter.CreatorID)
	assert.Equal(t, uint(100), *capturedFilter.CreatorID)
}
