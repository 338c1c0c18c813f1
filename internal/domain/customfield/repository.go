package customfield

import "context"

type DefinitionRepository interface {
	Create(ctx context.Context, definition *Definition) error
	FindByID(ctx context.Context, id uint) (*Definition, error)
	FindByKey(ctx context.Context, key string) (*Definition, error)
	List(ctx context.Context, offset, limit int) ([]*Definition, int64, error)
	ListActive(ctx context.Context) ([]*Definition, error)
	Update(ctx context.Context, definition *Definition) error
	Delete(ctx context.Context, id uint) error
}
