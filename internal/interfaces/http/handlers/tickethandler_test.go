package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deskd/internal/application/ticket/usecases"
	"deskd/internal/shared/constants"
	"deskd/internal/shared/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type mockCreateTicketUC struct {
	result *usecases.CreateTicketResult
	err    error
	gotCmd usecases.CreateTicketCommand
}

func (m *mockCreateTicketUC) Execute(_ context.Context, cmd usecases.CreateTicketCommand) (*usecases.CreateTicketResult, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type mockGetTicketUC struct {
	result *usecases.TicketResult
	err    error
}

func (m *mockGetTicketUC) Execute(_ context.Context, _ usecases.GetTicketCommand) (*usecases.TicketResult, error) {
	return m.result, m.err
}

type mockListTicketsUC struct {
	result *usecases.ListTicketsResult
	err    error
}

func (m *mockListTicketsUC) Execute(_ context.Context, _ usecases.ListTicketsCommand) (*usecases.ListTicketsResult, error) {
	return m.result, m.err
}

type mockAssignTicketUC struct {
	result *usecases.TicketResult
	err    error
	gotCmd usecases.AssignTicketCommand
}

func (m *mockAssignTicketUC) Execute(_ context.Context, cmd usecases.AssignTicketCommand) (*usecases.TicketResult, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type mockChangeStatusUC struct {
	result *usecases.TicketResult
	err    error
}

func (m *mockChangeStatusUC) Execute(_ context.Context, _ usecases.ChangeTicketStatusCommand) (*usecases.TicketResult, error) {
	return m.result, m.err
}

type ticketHandlerDeps struct {
	createUC *mockCreateTicketUC
	getUC    *mockGetTicketUC
	listUC   *mockListTicketsUC
	assignUC *mockAssignTicketUC
	statusUC *mockChangeStatusUC
}

func newTestTicketHandler(deps ticketHandlerDeps) *TicketHandler {
	if deps.createUC == nil {
		deps.createUC = &mockCreateTicketUC{}
	}
	if deps.getUC == nil {
		deps.getUC = &mockGetTicketUC{}
	}
	if deps.listUC == nil {
		deps.listUC = &mockListTicketsUC{}
	}
	if deps.assignUC == nil {
		deps.assignUC = &mockAssignTicketUC{}
	}
	if deps.statusUC == nil {
		deps.statusUC = &mockChangeStatusUC{}
	}

	return NewTicketHandler(
		deps.createUC, deps.getUC, deps.listUC, nil, nil,
		deps.statusUC, nil, deps.assignUC, nil, nil,
	)
}

func performRequest(handler gin.HandlerFunc, method, path, body string, userID uint, role string, params ...gin.Param) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var reqBody *bytes.Buffer
	if body != "" {
		reqBody = bytes.NewBufferString(body)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	c.Request = httptest.NewRequest(method, path, reqBody)
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = params
	c.Set(constants.ContextKeyUserID, userID)
	c.Set(constants.ContextKeyUserRole, role)

	handler(c)
	return w
}

// performRequestWithContext allows arbitrary context values, for handlers
// that read more than the user identity.
func performRequestWithContext(handler gin.HandlerFunc, method, path, body string, ctxValues map[string]any) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var reqBody *bytes.Buffer
	if body != "" {
		reqBody = bytes.NewBufferString(body)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	c.Request = httptest.NewRequest(method, path, reqBody)
	c.Request.Header.Set("Content-Type", "application/json")
	for k, v := range ctxValues {
		c.Set(k, v)
	}

	handler(c)
	return w
}

func TestTicketHandler_CreateTicket_Success(t *testing.T) {
	now := time.Now().UTC()
	createUC := &mockCreateTicketUC{
		result: &usecases.CreateTicketResult{
			TicketID:  1,
			Number:    "T-20260830-0001",
			Status:    "open",
			CreatedAt: now,
		},
	}
	handler := newTestTicketHandler(ticketHandlerDeps{createUC: createUC})

	body := `{"subject":"Printer on fire","description":"It is literally on fire","priority":"urgent"}`
	w := performRequest(handler.CreateTicket, http.MethodPost, "/tickets", body, 42, "customer")

	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			ID     uint   `json:"id"`
			Number string `json:"number"`
			Status string `json:"status"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, uint(1), resp.Data.ID)
	assert.Equal(t, "T-20260830-0001", resp.Data.Number)
	assert.Equal(t, "open", resp.Data.Status)

	assert.Equal(t, uint(42), createUC.gotCmd.CreatorID)
	assert.Equal(t, "urgent", createUC.gotCmd.Priority)
}

func TestTicketHandler_CreateTicket_MissingSubject(t *testing.T) {
	handler := newTestTicketHandler(ticketHandlerDeps{})

	w := performRequest(handler.CreateTicket, http.MethodPost, "/tickets", `{"description":"no subject"}`, 42, "customer")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestTicketHandler_GetTicket_NotFound(t *testing.T) {
	getUC := &mockGetTicketUC{err: errors.NewNotFoundError("ticket not found")}
	handler := newTestTicketHandler(ticketHandlerDeps{getUC: getUC})

	w := performRequest(handler.GetTicket, http.MethodGet, "/tickets/99", "", 42, "agent",
		gin.Param{Key: "id", Value: "99"})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTicketHandler_GetTicket_InvalidID(t *testing.T) {
	handler := newTestTicketHandler(ticketHandlerDeps{})

	w := performRequest(handler.GetTicket, http.MethodGet, "/tickets/abc", "", 42, "agent",
		gin.Param{Key: "id", Value: "abc"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTicketHandler_ListTickets_Success(t *testing.T) {
	listUC := &mockListTicketsUC{
		result: &usecases.ListTicketsResult{
			Tickets: []*usecases.TicketResult{
				{TicketID: 1, Number: "T-20260830-0001", Subject: "First", Status: "open", Priority: "normal"},
				{TicketID: 2, Number: "T-20260830-0002", Subject: "Second", Status: "open", Priority: "high"},
			},
			Total: 2,
		},
	}
	handler := newTestTicketHandler(ticketHandlerDeps{listUC: listUC})

	w := performRequest(handler.ListTickets, http.MethodGet, "/tickets?page=1&page_size=20", "", 42, "agent")

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Items []struct {
				Number string `json:"number"`
			} `json:"items"`
			Total int64 `json:"total"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, int64(2), resp.Data.Total)
	require.Len(t, resp.Data.Items, 2)
	assert.Equal(t, "T-20260830-0001", resp.Data.Items[0].Number)
}

func TestTicketHandler_AssignTicket_Success(t *testing.T) {
	assigneeID := uint(7)
	assignUC := &mockAssignTicketUC{
		result: &usecases.TicketResult{TicketID: 5, AssigneeID: &assigneeID, Status: "in_progress"},
	}
	handler := newTestTicketHandler(ticketHandlerDeps{assignUC: assignUC})

	w := performRequest(handler.AssignTicket, http.MethodPost, "/tickets/5/assign",
		`{"assignee_id":7}`, 42, "admin",
		gin.Param{Key: "id", Value: "5"})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(5), assignUC.gotCmd.TicketID)
	assert.Equal(t, uint(7), assignUC.gotCmd.AssigneeID)
	assert.Equal(t, uint(42), assignUC.gotCmd.AssignedBy)
}

func TestTicketHandler_ChangeStatus_InvalidTransition(t *testing.T) {
	statusUC := &mockChangeStatusUC{err: errors.NewValidationError("invalid status transition")}
	handler := newTestTicketHandler(ticketHandlerDeps{statusUC: statusUC})

	w := performRequest(handler.ChangeStatus, http.MethodPatch, "/tickets/5/status",
		`{"status":"closed"}`, 42, "agent",
		gin.Param{Key: "id", Value: "5"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
