package usecases

import (
	"context"
	"time"

	"deskd/internal/shared/errors"
	"deskd/internal/shared/logger"
)

type LogoutUserCommand struct {
	Token     string
	ExpiresAt time.Time
}

// LogoutUserUseCase revokes the presented token via the blacklist. With no
// blacklist configured, logout degrades to a client-side token drop.
type LogoutUserUseCase struct {
	blacklist TokenBlacklist
	logger    logger.Interface
}

func NewLogoutUserUseCase(
	blacklist TokenBlacklist,
	logger logger.Interface,
) *LogoutUserUseCase {
	return &LogoutUserUseCase{
		blacklist: blacklist,
		logger:    logger,
	}
}

func (uc *LogoutUserUseCase) Execute(ctx context.Context, cmd LogoutUserCommand) error {
	if cmd.Token == "" {
		return errors.NewValidationError("token is required")
	}

	if uc.blacklist == nil {
		return nil
	}

	if err := uc.blacklist.Revoke(ctx, cmd.Token, cmd.ExpiresAt); err != nil {
		uc.logger.Errorw("failed to revoke token", "error", err)
		return errors.NewInternalError("failed to revoke token")
	}

	return nil
}
