package usecases

import (
	"context"

	"deskd/internal/domain/user"
	"deskd/internal/shared/errors"
	"deskd/internal/shared/logger"
)

type RefreshTokenCommand struct {
	RefreshToken string
}

type RefreshTokenResult struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// RefreshTokenUseCase exchanges a valid refresh token for a new token pair.
// Tokens rotate: the presented refresh token is revoked once the new pair is
// issued, so each refresh token is single use when a blacklist is configured.
type RefreshTokenUseCase struct {
	userRepo   user.UserRepository
	jwtService JWTService
	blacklist  TokenBlacklist
	logger     logger.Interface
}

func NewRefreshTokenUseCase(
	userRepo user.UserRepository,
	jwtService JWTService,
	blacklist TokenBlacklist,
	logger logger.Interface,
) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{
		userRepo:   userRepo,
		jwtService: jwtService,
		blacklist:  blacklist,
		logger:     logger,
	}
}

func (uc *RefreshTokenUseCase) Execute(ctx context.Context, cmd RefreshTokenCommand) (*RefreshTokenResult, error) {
	if cmd.RefreshToken == "" {
		return nil, errors.NewValidationError("refresh token is required")
	}

	claims, err := uc.jwtService.ValidateRefresh(cmd.RefreshToken)
	if err != nil {
		uc.logger.Warnw("invalid refresh token", "error", err)
		return nil, errors.NewUnauthorizedError("invalid or expired refresh token")
	}

	if uc.blacklist != nil {
		revoked, err := uc.blacklist.IsRevoked(ctx, cmd.RefreshToken)
		if err != nil {
			uc.logger.Errorw("failed to check refresh token blacklist", "error", err)
			return nil, errors.NewInternalError("failed to validate refresh token")
		}
		if revoked {
			return nil, errors.NewUnauthorizedError("refresh token has been revoked")
		}
	}

	existingUser, err := uc.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		uc.logger.Errorw("failed to find user for refresh", "user_id", claims.UserID, "error", err)
		return nil, err
	}
	if existingUser == nil {
		return nil, errors.NewUnauthorizedError("invalid or expired refresh token")
	}
	if !existingUser.IsActive() {
		return nil, errors.NewForbiddenError("account is suspended")
	}

	// Role comes from the user record, not the old token, so a role change
	// takes effect on the next refresh.
	tokens, err := uc.jwtService.Generate(existingUser.ID(), existingUser.Role())
	if err != nil {
		uc.logger.Errorw("failed to generate tokens", "user_id", existingUser.ID(), "error", err)
		return nil, errors.NewInternalError("failed to generate tokens")
	}

	if uc.blacklist != nil {
		if err := uc.blacklist.Revoke(ctx, cmd.RefreshToken, claims.ExpiresAt); err != nil {
			// The new pair is already issued; rotation failing only means the
			// old token stays usable until it expires.
			uc.logger.Warnw("failed to revoke rotated refresh token", "user_id", existingUser.ID(), "error", err)
		}
	}

	uc.logger.Infow("token refreshed", "user_id", existingUser.ID())

	return &RefreshTokenResult{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresIn:    tokens.ExpiresIn,
	}, nil
}
