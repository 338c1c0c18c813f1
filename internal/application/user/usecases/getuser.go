package usecases

import (
	"context"

	"deskd/internal/domain/user"
	"deskd/internal/shared/errors"
	"deskd/internal/shared/logger"
)

type GetUserCommand struct {
	UserID uint
}

type GetUserUseCase struct {
	userRepo user.UserRepository
	logger   logger.Interface
}

func NewGetUserUseCase(
	userRepo user.UserRepository,
	logger logger.Interface,
) *GetUserUseCase {
	return &GetUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *GetUserUseCase) Execute(ctx context.Context, cmd GetUserCommand) (*UserResult, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	u, err := uc.userRepo.FindByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to find user", "user_id", cmd.UserID, "error", err)
		return nil, err
	}
	if u == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	return newUserResult(u), nil
}
