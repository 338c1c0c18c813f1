package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deskd/internal/domain/user"
	uservo "deskd/internal/domain/user/valueobjects"
	"deskd/internal/shared/authorization"
	"deskd/internal/shared/errors"
)

func newActiveAgent(t *testing.T, id uint) *user.User {
	t.Helper()
	emailVO, err := uservo.NewEmail("agent@example.com")
	require.NoError(t, err)
	nameVO, err := uservo.NewName("Agent Smith")
	require.NoError(t, err)

	agent, err := user.NewUser(emailVO, nameVO, "hash", authorization.RoleAgent)
	require.NoError(t, err)
	require.NoError(t, agent.SetID(id))
	return agent
}

func TestRefreshTokenUseCase_RotatesTokens(t *testing.T) {
	agent := newActiveAgent(t, 7)
	expiry := time.Now().Add(24 * time.Hour)

	var revokedToken string
	blacklist := &mockTokenBlacklist{
		RevokeFunc: func(_ context.Context, token string, expiresAt time.Time) error {
			revokedToken = token
			assert.Equal(t, expiry, expiresAt)
			return nil
		},
	}
	jwtService := &mockJWTService{
		ValidateRefreshFunc: func(token string) (*RefreshClaims, error) {
			assert.Equal(t, "old-refresh", token)
			return &RefreshClaims{UserID: 7, Role: authorization.RoleAgent, ExpiresAt: expiry}, nil
		},
		GenerateFunc: func(userID uint, role authorization.UserRole) (*TokenPair, error) {
			assert.Equal(t, uint(7), userID)
			return &TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh", ExpiresIn: 3600}, nil
		},
	}
	userRepo := &mockUserRepository{
		FindByIDFunc: func(_ context.Context, id uint) (*user.User, error) {
			require.Equal(t, uint(7), id)
			return agent, nil
		},
	}

	uc := NewRefreshTokenUseCase(userRepo, jwtService, blacklist, &mockLogger{})

	result, err := uc.Execute(context.Background(), RefreshTokenCommand{RefreshToken: "old-refresh"})
	require.NoError(t, err)

	assert.Equal(t, "new-access", result.AccessToken)
	assert.Equal(t, "new-refresh", result.RefreshToken)
	assert.Equal(t, "old-refresh", revokedToken)
}

func TestRefreshTokenUseCase_RejectsRevokedToken(t *testing.T) {
	blacklist := &mockTokenBlacklist{
		IsRevokedFunc: func(_ context.Context, _ string) (bool, error) {
			return true, nil
		},
	}
	jwtService := &mockJWTService{
		ValidateRefreshFunc: func(string) (*RefreshClaims, error) {
			return &RefreshClaims{UserID: 7, Role: authorization.RoleAgent}, nil
		},
	}

	uc := NewRefreshTokenUseCase(&mockUserRepository{}, jwtService, blacklist, &mockLogger{})

	_, err := uc.Execute(context.Background(), RefreshTokenCommand{RefreshToken: "rotated-away"})
	require.Error(t, err)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeUnauthorized, appErr.Type)
}

func TestRefreshTokenUseCase_RejectsSuspendedUser(t *testing.T) {
	agent := newActiveAgent(t, 7)
	require.NoError(t, agent.Suspend())

	jwtService := &mockJWTService{
		ValidateRefreshFunc: func(string) (*RefreshClaims, error) {
			return &RefreshClaims{UserID: 7, Role: authorization.RoleAgent}, nil
		},
	}
	userRepo := &mockUserRepository{
		FindByIDFunc: func(_ context.Context, _ uint) (*user.User, error) {
			return agent, nil
		},
	}

	uc := NewRefreshTokenUseCase(userRepo, jwtService, nil, &mockLogger{})

	_, err := uc.Execute(context.Background(), RefreshTokenCommand{RefreshToken: "old-refresh"})
	require.Error(t, err)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeForbidden, appErr.Type)
}

func TestRefreshTokenUseCase_InvalidToken(t *testing.T) {
	jwtService := &mockJWTService{
		ValidateRefreshFunc: func(string) (*RefreshClaims, error) {
			return nil, errors.NewUnauthorizedError("invalid token")
		},
	}

	uc := NewRefreshTokenUseCase(&mockUserRepository{}, jwtService, nil, &mockLogger{})

	_, err := uc.Execute(context.Background(), RefreshTokenCommand{RefreshToken: "garbage"})
	require.Error(t, err)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeUnauthorized, appErr.Type)
}
