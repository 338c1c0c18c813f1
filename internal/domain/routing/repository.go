package routing

import "context"

type RuleRepository interface {
	Create(ctx context.Context, rule *Rule) error
	FindByID(ctx context.Context, id uint) (*Rule, error)
	List(ctx context.Context, offset, limit int) ([]*Rule, int64, error)

	// ListActive returns active rules ordered by creation time ascending,
	// which keeps equal-weight tie-breaking deterministic.
	ListActive(ctx context.Context) ([]*Rule, error)

	Update(ctx context.Context, rule *Rule) error
	Delete(ctx context.Context, id uint) error
}
