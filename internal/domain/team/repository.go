package team

import "context"

type TeamRepository interface {
	Create(ctx context.Context, team *Team) error
	FindByID(ctx context.Context, id uint) (*Team, error)
	FindByName(ctx context.Context, name string) (*Team, error)
	List(ctx context.Context, offset, limit int) ([]*Team, int64, error)
	Update(ctx context.Context, team *Team) error
	Delete(ctx context.Context, id uint) error
}
