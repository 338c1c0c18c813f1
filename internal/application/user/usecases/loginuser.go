package usecases

import (
	"context"

	"deskd/internal/domain/user"
	vo "deskd/internal/domain/user/valueobjects"
	"deskd/internal/shared/errors"
	"deskd/internal/shared/logger"
)

type LoginUserCommand struct {
	Email    string
	Password string
}

type LoginUserResult struct {
	User         *UserResult
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

type LoginUserUseCase struct {
	userRepo   user.UserRepository
	hasher     user.PasswordHasher
	jwtService JWTService
	logger     logger.Interface
}

func NewLoginUserUseCase(
	userRepo user.UserRepository,
	hasher user.PasswordHasher,
	jwtService JWTService,
	logger logger.Interface,
) *LoginUserUseCase {
	return &LoginUserUseCase{
		userRepo:   userRepo,
		hasher:     hasher,
		jwtService: jwtService,
		logger:     logger,
	}
}

func (uc *LoginUserUseCase) Execute(ctx context.Context, cmd LoginUserCommand) (*LoginUserResult, error) {
	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	existingUser, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		uc.logger.Errorw("failed to find user by email", "error", err)
		return nil, err
	}

	// A generic error hides whether the email exists.
	if existingUser == nil {
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	if !existingUser.IsActive() {
		return nil, errors.NewForbiddenError("account is suspended")
	}

	if err := uc.hasher.Verify(existingUser.PasswordHash(), cmd.Password); err != nil {
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	tokens, err := uc.jwtService.Generate(existingUser.ID(), existingUser.Role())
	if err != nil {
		uc.logger.Errorw("failed to generate tokens", "user_id", existingUser.ID(), "error", err)
		return nil, errors.NewInternalError("failed to generate tokens")
	}

	existingUser.RecordLogin()
	if err := uc.userRepo.Update(ctx, existingUser); err != nil {
		// Login bookkeeping is not worth failing the login over.
		uc.logger.Warnw("failed to record login time", "user_id", existingUser.ID(), "error", err)
	}

	uc.logger.Infow("user logged in", "user_id", existingUser.ID())

	return &LoginUserResult{
		User:         newUserResult(existingUser),
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresIn:    tokens.ExpiresIn,
	}, nil
}
