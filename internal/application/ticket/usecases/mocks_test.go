package usecases

import (
	"context"

	routingusecases "deskd/internal/application/routing/usecases"
	"deskd/internal/domain/customfield"
	"deskd/internal/domain/ticket"
	"deskd/internal/domain/user"
	uservo "deskd/internal/domain/user/valueobjects"
	"deskd/internal/shared/logger"
)

type mockTicketRepository struct {
	CreateFunc                 func(ctx context.Context, t *ticket.Ticket) error
	FindByIDFunc               func(ctx context.Context, id uint) (*ticket.Ticket, error)
	FindByNumberFunc           func(ctx context.Context, number string) (*ticket.Ticket, error)
	ListFunc                   func(ctx context.Context, filter ticket.ListFilter, offset, limit int) ([]*ticket.Ticket, int64, error)
	UpdateFunc                 func(ctx context.Context, t *ticket.Ticket) error
	DeleteFunc                 func(ctx context.Context, id uint) error
	CountActiveByAssigneesFunc func(ctx context.Context, assigneeIDs []uint) (map[uint]int, error)
	GetStatsFunc               func(ctx context.Context) (*ticket.Stats, error)
}

func (m *mockTicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) FindByNumber(ctx context.Context, number string) (*ticket.Ticket, error) {
	if m.FindByNumberFunc != nil {
		return m.FindByNumberFunc(ctx, number)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.ListFilter, offset, limit int) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter, offset, limit)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockTicketRepository) CountActiveByAssignees(ctx context.Context, assigneeIDs []uint) (map[uint]int, error) {
	if m.CountActiveByAssigneesFunc != nil {
		return m.CountActiveByAssigneesFunc(ctx, assigneeIDs)
	}
	return map[uint]int{}, nil
}

func (m *mockTicketRepository) GetStats(ctx context.Context) (*ticket.Stats, error) {
	if m.GetStatsFunc != nil {
		return m.GetStatsFunc(ctx)
	}
	return nil, nil
}

type mockCommentRepository struct {
	CreateFunc         func(ctx context.Context, comment *ticket.Comment) error
	FindByIDFunc       func(ctx context.Context, id uint) (*ticket.Comment, error)
	ListByTicketIDFunc func(ctx context.Context, ticketID uint, includeInternal bool) ([]*ticket.Comment, error)
	DeleteFunc         func(ctx context.Context, id uint) error
}

func (m *mockCommentRepository) Create(ctx context.Context, comment *ticket.Comment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, comment)
	}
	return nil
}

func (m *mockCommentRepository) FindByID(ctx context.Context, id uint) (*ticket.Comment, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockCommentRepository) ListByTicketID(ctx context.Context, ticketID uint, includeInternal bool) ([]*ticket.Comment, error) {
	if m.ListByTicketIDFunc != nil {
		return m.ListByTicketIDFunc(ctx, ticketID, includeInternal)
	}
	return nil, nil
}

func (m *mockCommentRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

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

type mockDefinitionRepository struct {
	CreateFunc     func(ctx context.Context, definition *customfield.Definition) error
	FindByIDFunc   func(ctx context.Context, id uint) (*customfield.Definition, error)
	FindByKeyFunc  func(ctx context.Context, key string) (*customfield.Definition, error)
	ListFunc       func(ctx context.Context, offset, limit int) ([]*customfield.Definition, int64, error)
	ListActiveFunc func(ctx context.Context) ([]*customfield.Definition, error)
	UpdateFunc     func(ctx context.Context, definition *customfield.Definition) error
	DeleteFunc     func(ctx context.Context, id uint) error
}

func (m *mockDefinitionRepository) Create(ctx context.Context, definition *customfield.Definition) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, definition)
	}
	return nil
}

func (m *mockDefinitionRepository) FindByID(ctx context.Context, id uint) (*customfield.Definition, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockDefinitionRepository) FindByKey(ctx context.Context, key string) (*customfield.Definition, error) {
	if m.FindByKeyFunc != nil {
		return m.FindByKeyFunc(ctx, key)
	}
	return nil, nil
}

func (m *mockDefinitionRepository) List(ctx context.Context, offset, limit int) ([]*customfield.Definition, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, offset, limit)
	}
	return nil, 0, nil
}

func (m *mockDefinitionRepository) ListActive(ctx context.Context) ([]*customfield.Definition, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx)
	}
	return nil, nil
}

func (m *mockDefinitionRepository) Update(ctx context.Context, definition *customfield.Definition) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, definition)
	}
	return nil
}

func (m *mockDefinitionRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type mockNumberGenerator struct {
	GenerateFunc func(ctx context.Context) (string, error)
}

func (m *mockNumberGenerator) Generate(ctx context.Context) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx)
	}
	return "T-20260830-0001", nil
}

type mockAutoAssigner struct {
	ExecuteFunc func(ctx context.Context, cmd routingusecases.AutoAssignTicketCommand) (*routingusecases.AutoAssignTicketResult, error)
}

func (m *mockAutoAssigner) Execute(ctx context.Context, cmd routingusecases.AutoAssignTicketCommand) (*routingusecases.AutoAssignTicketResult, error) {
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, cmd)
	}
	return &routingusecases.AutoAssignTicketResult{}, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                  {}
func (m *mockLogger) Info(msg string, args ...any)                   {}
func (m *mockLogger) Warn(msg string, args ...any)                   {}
func (m *mockLogger) Error(msg string, args ...any)                  {}
func (m *mockLogger) With(args ...any) logger.Interface              { return m }
func (m *mockLogger) Named(name string) logger.Interface             { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
