package usecases

import (
	"context"

	"deskd/internal/domain/user"
	vo "deskd/internal/domain/user/valueobjects"
	"deskd/internal/shared/authorization"
	"deskd/internal/shared/errors"
	"deskd/internal/shared/logger"
)

type RegisterUserCommand struct {
	Email    string
	Name     string
	Password string

	// Role defaults to customer. Only admins may set another role; the
	// handler enforces that before building the command.
	Role string
}

type RegisterUserUseCase struct {
	userRepo user.UserRepository
	hasher   user.PasswordHasher
	logger   logger.Interface
}

func NewRegisterUserUseCase(
	userRepo user.UserRepository,
	hasher user.PasswordHasher,
	logger logger.Interface,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *RegisterUserUseCase) Execute(ctx context.Context, cmd RegisterUserCommand) (*UserResult, error) {
	uc.logger.Infow("executing register user use case", "email", cmd.Email)

	if len(cmd.Password) < 8 {
		return nil, errors.NewValidationError("password must be at least 8 characters")
	}
	if len(cmd.Password) > 72 {
		return nil, errors.NewValidationError("password cannot exceed 72 characters")
	}

	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	name, err := vo.NewName(cmd.Name)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		uc.logger.Errorw("failed to check email existence", "error", err)
		return nil, err
	}
	if exists {
		return nil, errors.NewConflictError("email is already registered")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to process password")
	}

	role := authorization.ParseUserRole(cmd.Role)

	newUser, err := user.NewUser(email, name, hash, role)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("email is already registered")
		}
		uc.logger.Errorw("failed to save user", "error", err)
		return nil, err
	}

	uc.logger.Infow("user registered", "user_id", newUser.ID(), "role", role.String())

	return newUserResult(newUser), nil
}
