package user

import (
	"context"

	vo "deskd/internal/domain/user/valueobjects"
)

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByIDs(ctx context.Context, ids []uint) ([]*User, error)
	FindByEmail(ctx context.Context, email *vo.Email) (*User, error)
	ExistsByEmail(ctx context.Context, email *vo.Email) (bool, error)
	List(ctx context.Context, offset, limit int) ([]*User, int64, error)
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id uint) error

	// ListActiveAgents returns all active users with the agent role,
	// skills preloaded, ordered by ID.
	ListActiveAgents(ctx context.Context) ([]*User, error)
}
