package usecases

import (
	"context"
	"time"

	"deskd/internal/domain/user"
	uservo "deskd/internal/domain/user/valueobjects"
	"deskd/internal/shared/authorization"
	"deskd/internal/shared/logger"
)

type mockUserRepository struct {
	CreateFunc           func(ctx context.Context, u *user.User) error
	FindByIDFunc         func(ctx context.Context, id uint) (*user.User, error)
	FindByIDsFunc        func(ctx context.Context, ids []uint) ([]*user.User, error)
	FindByEmailFunc      func(ctx context.Context, email *uservo.Email) (*user.User, error)
	ExistsByEmailFunc    func(ctx context.Context, email *uservo.Email) (bool, error)
	ListFunc             func(ctx context.Context, offset, limit int) ([]*user.User, int64, error)
	UpdateFunc           func(ctx context.Context, u *user.User) error
	DeleteFunc           func(ctx context.Context, id uint) error
	ListActiveAgentsFunc func(ctx context.Context) ([]*user.User, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	if m.FindByIDsFunc != nil {
		return m.FindByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email *uservo.Email) (*user.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email *uservo.Email) (bool, error) {
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email)
	}
	return false, nil
}

func (m *mockUserRepository) List(ctx context.Context, offset, limit int) ([]*user.User, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, offset, limit)
	}
	return nil, 0, nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockUserRepository) ListActiveAgents(ctx context.Context) ([]*user.User, error) {
	if m.ListActiveAgentsFunc != nil {
		return m.ListActiveAgentsFunc(ctx)
	}
	return nil, nil
}

type mockJWTService struct {
	GenerateFunc        func(userID uint, role authorization.UserRole) (*TokenPair, error)
	ValidateFunc        func(token string) (uint, authorization.UserRole, error)
	ValidateRefreshFunc func(token string) (*RefreshClaims, error)
}

func (m *mockJWTService) Generate(userID uint, role authorization.UserRole) (*TokenPair, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(userID, role)
	}
	return &TokenPair{AccessToken: "access", RefreshToken: "refresh", ExpiresIn: 3600}, nil
}

func (m *mockJWTService) Validate(token string) (uint, authorization.UserRole, error) {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(token)
	}
	return 0, "", nil
}

func (m *mockJWTService) ValidateRefresh(token string) (*RefreshClaims, error) {
	if m.ValidateRefreshFunc != nil {
		return m.ValidateRefreshFunc(token)
	}
	return nil, nil
}

type mockTokenBlacklist struct {
	RevokeFunc    func(ctx context.Context, token string, expiresAt time.Time) error
	IsRevokedFunc func(ctx context.Context, token string) (bool, error)
}

func (m *mockTokenBlacklist) Revoke(ctx context.Context, token string, expiresAt time.Time) error {
	if m.RevokeFunc != nil {
		return m.RevokeFunc(ctx, token, expiresAt)
	}
	return nil
}

func (m *mockTokenBlacklist) IsRevoked(ctx context.Context, token string) (bool, error) {
	if m.IsRevokedFunc != nil {
		return m.IsRevokedFunc(ctx, token)
	}
	return false, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
