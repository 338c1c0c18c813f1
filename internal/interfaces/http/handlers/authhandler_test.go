package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deskd/internal/application/user/usecases"
	"deskd/internal/shared/errors"
)

type mockRegisterUserUC struct {
	result *usecases.UserResult
	err    error
	gotCmd usecases.RegisterUserCommand
}

func (m *mockRegisterUserUC) Execute(_ context.Context, cmd usecases.RegisterUserCommand) (*usecases.UserResult, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type mockLoginUserUC struct {
	result *usecases.LoginUserResult
	err    error
}

func (m *mockLoginUserUC) Execute(_ context.Context, _ usecases.LoginUserCommand) (*usecases.LoginUserResult, error) {
	return m.result, m.err
}

type mockLogoutUserUC struct {
	err    error
	gotCmd usecases.LogoutUserCommand
}

func (m *mockLogoutUserUC) Execute(_ context.Context, cmd usecases.LogoutUserCommand) error {
	m.gotCmd = cmd
	return m.err
}

type mockGetUserUC struct {
	result *usecases.UserResult
	err    error
}

func (m *mockGetUserUC) Execute(_ context.Context, _ usecases.GetUserCommand) (*usecases.UserResult, error) {
	return m.result, m.err
}

type mockRefreshTokenUC struct {
	result *usecases.RefreshTokenResult
	err    error
	gotCmd usecases.RefreshTokenCommand
}

func (m *mockRefreshTokenUC) Execute(_ context.Context, cmd usecases.RefreshTokenCommand) (*usecases.RefreshTokenResult, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type authHandlerDeps struct {
	registerUC *mockRegisterUserUC
	loginUC    *mockLoginUserUC
	refreshUC  *mockRefreshTokenUC
	logoutUC   *mockLogoutUserUC
	getUserUC  *mockGetUserUC
}

func newTestAuthHandler(deps authHandlerDeps) *AuthHandler {
	if deps.registerUC == nil {
		deps.registerUC = &mockRegisterUserUC{}
	}
	if deps.loginUC == nil {
		deps.loginUC = &mockLoginUserUC{}
	}
	if deps.refreshUC == nil {
		deps.refreshUC = &mockRefreshTokenUC{}
	}
	if deps.logoutUC == nil {
		deps.logoutUC = &mockLogoutUserUC{}
	}
	if deps.getUserUC == nil {
		deps.getUserUC = &mockGetUserUC{}
	}

	return NewAuthHandler(deps.registerUC, deps.loginUC, deps.refreshUC, deps.logoutUC, deps.getUserUC)
}

func TestAuthHandler_Register_DefaultsToCustomer(t *testing.T) {
	registerUC := &mockRegisterUserUC{
		result: &usecases.UserResult{UserID: 1, Email: "new@example.com", Name: "New User", Role: "customer", Status: "active"},
	}
	handler := newTestAuthHandler(authHandlerDeps{registerUC: registerUC})

	// An anonymous caller asking for an agent role still gets customer.
	body := `{"email":"new@example.com","name":"New User","password":"longenough","role":"agent"}`
	w := performRequest(handler.Register, http.MethodPost, "/auth/register", body, 0, "")

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "customer", registerUC.gotCmd.Role)
	assert.Equal(t, "new@example.com", registerUC.gotCmd.Email)
}

func TestAuthHandler_Register_AdminMaySetRole(t *testing.T) {
	registerUC := &mockRegisterUserUC{
		result: &usecases.UserResult{UserID: 2, Email: "agent@example.com", Name: "Agent", Role: "agent", Status: "active"},
	}
	handler := newTestAuthHandler(authHandlerDeps{registerUC: registerUC})

	body := `{"email":"agent@example.com","name":"Agent","password":"longenough","role":"agent"}`
	w := performRequest(handler.Register, http.MethodPost, "/auth/register", body, 1, "admin")

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "agent", registerUC.gotCmd.Role)
}

func TestAuthHandler_Register_ShortPassword(t *testing.T) {
	handler := newTestAuthHandler(authHandlerDeps{})

	body := `{"email":"new@example.com","name":"New User","password":"short"}`
	w := performRequest(handler.Register, http.MethodPost, "/auth/register", body, 0, "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestAuthHandler_Login_Success(t *testing.T) {
	loginUC := &mockLoginUserUC{
		result: &usecases.LoginUserResult{
			User:        &usecases.UserResult{UserID: 1, Email: "a@example.com", Name: "A", Role: "agent", Status: "active"},
			AccessToken: "token-123",
			ExpiresIn:   3600,
		},
	}
	handler := newTestAuthHandler(authHandlerDeps{loginUC: loginUC})

	w := performRequest(handler.Login, http.MethodPost, "/auth/login",
		`{"email":"a@example.com","password":"longenough"}`, 0, "")

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			AccessToken string `json:"access_token"`
			TokenType   string `json:"token_type"`
			ExpiresIn   int64  `json:"expires_in"`
			User        struct {
				Email string `json:"email"`
				Role  string `json:"role"`
			} `json:"user"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "token-123", resp.Data.AccessToken)
	assert.Equal(t, "Bearer", resp.Data.TokenType)
	assert.Equal(t, int64(3600), resp.Data.ExpiresIn)
	assert.Equal(t, "agent", resp.Data.User.Role)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	loginUC := &mockLoginUserUC{err: errors.NewUnauthorizedError("invalid email or password")}
	handler := newTestAuthHandler(authHandlerDeps{loginUC: loginUC})

	w := performRequest(handler.Login, http.MethodPost, "/auth/login",
		`{"email":"a@example.com","password":"wrongpassword"}`, 0, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_Refresh_Success(t *testing.T) {
	refreshUC := &mockRefreshTokenUC{
		result: &usecases.RefreshTokenResult{
			AccessToken:  "new-access",
			RefreshToken: "new-refresh",
			ExpiresIn:    3600,
		},
	}
	handler := newTestAuthHandler(authHandlerDeps{refreshUC: refreshUC})

	w := performRequest(handler.Refresh, http.MethodPost, "/auth/refresh",
		`{"refresh_token":"old-refresh"}`, 0, "")

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			AccessToken  string `json:"access_token"`
			RefreshToken string `json:"refresh_token"`
			TokenType    string `json:"token_type"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "new-access", resp.Data.AccessToken)
	assert.Equal(t, "new-refresh", resp.Data.RefreshToken)
	assert.Equal(t, "Bearer", resp.Data.TokenType)

	assert.Equal(t, "old-refresh", refreshUC.gotCmd.RefreshToken)
}

func TestAuthHandler_Refresh_Invalid(t *testing.T) {
	refreshUC := &mockRefreshTokenUC{err: errors.NewUnauthorizedError("invalid or expired refresh token")}
	handler := newTestAuthHandler(authHandlerDeps{refreshUC: refreshUC})

	w := performRequest(handler.Refresh, http.MethodPost, "/auth/refresh",
		`{"refresh_token":"bad"}`, 0, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_Logout_PassesTokenAndExpiry(t *testing.T) {
	logoutUC := &mockLogoutUserUC{}
	handler := newTestAuthHandler(authHandlerDeps{logoutUC: logoutUC})

	expiry := time.Now().Add(time.Hour).Truncate(time.Second)
	w := performRequestWithContext(handler.Logout, http.MethodPost, "/auth/logout", "", map[string]any{
		"user_id":      uint(1),
		"user_role":    "agent",
		"token":        "token-123",
		"token_expiry": expiry,
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "token-123", logoutUC.gotCmd.Token)
	assert.Equal(t, expiry, logoutUC.gotCmd.ExpiresAt)
}
