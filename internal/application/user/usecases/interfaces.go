package usecases

import (
	"context"
	"time"

	"deskd/internal/shared/authorization"
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// RefreshClaims carries what a refresh token proves: who it belongs to and
// when it stops being usable.
type RefreshClaims struct {
	UserID    uint
	Role      authorization.UserRole
	ExpiresAt time.Time
}

type JWTService interface {
	Generate(userID uint, role authorization.UserRole) (*TokenPair, error)
	Validate(token string) (uint, authorization.UserRole, error)
	ValidateRefresh(token string) (*RefreshClaims, error)
}

// TokenBlacklist revokes issued tokens until their natural expiry.
type TokenBlacklist interface {
	Revoke(ctx context.Context, token string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}

type RegisterUserExecutor interface {
	Execute(ctx context.Context, cmd RegisterUserCommand) (*UserResult, error)
}

type LoginUserExecutor interface {
	Execute(ctx context.Context, cmd LoginUserCommand) (*LoginUserResult, error)
}

type LogoutUserExecutor interface {
	Execute(ctx context.Context, cmd LogoutUserCommand) error
}

type GetUserExecutor interface {
	Execute(ctx context.Context, cmd GetUserCommand) (*UserResult, error)
}

type ListAgentsExecutor interface {
	Execute(ctx context.Context, cmd ListAgentsCommand) (*ListAgentsResult, error)
}

type UpdateUserSkillsExecutor interface {
	Execute(ctx context.Context, cmd UpdateUserSkillsCommand) (*UserResult, error)
}

type RefreshTokenExecutor interface {
	Execute(ctx context.Context, cmd RefreshTokenCommand) (*RefreshTokenResult, error)
}
