package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"deskd/internal/domain/ticket"
	vo "deskd/internal/domain/ticket/valueobjects"
	"deskd/internal/infrastructure/persistence/mappers"
	"deskd/internal/infrastructure/persistence/models"
	"deskd/internal/shared/biztime"
	"deskd/internal/shared/db"
)

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(gdb *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     gdb,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create ticket: %w", err)
	}

	return t.SetID(model.ID)
}

func (r *TicketRepository) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) FindByNumber(ctx context.Context, number string) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("number = ?", number).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) List(
	ctx context.Context,
	filter ticket.ListFilter,
	offset, limit int,
) ([]*ticket.Ticket, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := r.applyFilter(tx.Model(&models.TicketModel{}), filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	query = query.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var ticketModels []models.TicketModel
	if err := query.Find(&ticketModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets := make([]*ticket.Ticket, len(ticketModels))
	for i := range ticketModels {
		t, err := r.mapper.ToDomain(&ticketModels[i])
		if err != nil {
			return nil, 0, err
		}
		tickets[i] = t
	}

	return tickets, total, nil
}

func (r *TicketRepository) applyFilter(query *gorm.DB, filter ticket.ListFilter) *gorm.DB {
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", filter.Priority.String())
	}
	if filter.CreatorID != nil {
		query = query.Where("creator_id = ?", *filter.CreatorID)
	}
	if filter.AssigneeID != nil {
		query = query.Where("assignee_id = ?", *filter.AssigneeID)
	}
	if filter.Unassigned {
		query = query.Where("assignee_id IS NULL")
	}
	if filter.Tag != nil {
		// Tags are stored as a JSON array of strings.
		query = query.Where("tags LIKE ?", fmt.Sprintf("%%%q%%", *filter.Tag))
	}
	if filter.Search != nil {
		pattern := "%" + *filter.Search + "%"
		query = query.Where("subject LIKE ? OR description LIKE ?", pattern, pattern)
	}
	return query
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}

	return nil
}

func (r *TicketRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.TicketModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("ticket not found")
	}
	return nil
}

// CountActiveByAssignees returns the active ticket count per agent. Agents
// with no active tickets get an explicit zero so callers can rank them.
func (r *TicketRepository) CountActiveByAssignees(ctx context.Context, assigneeIDs []uint) (map[uint]int, error) {
	counts := make(map[uint]int, len(assigneeIDs))
	for _, id := range assigneeIDs {
		counts[id] = 0
	}

	if len(assigneeIDs) == 0 {
		return counts, nil
	}

	type row struct {
		AssigneeID uint
		Count      int
	}

	var rows []row
	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.
		Model(&models.TicketModel{}).
		Select("assignee_id, COUNT(*) as count").
		Where("assignee_id IN ?", assigneeIDs).
		Where("status IN ?", activeStatuses()).
		Group("assignee_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count active tickets: %w", err)
	}

	for _, row := range rows {
		counts[row.AssigneeID] = row.Count
	}

	return counts, nil
}

func (r *TicketRepository) GetStats(ctx context.Context) (*ticket.Stats, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	stats := &ticket.Stats{
		ByStatus:   make(map[string]int64),
		ByPriority: make(map[string]int64),
	}

	if err := tx.Model(&models.TicketModel{}).Count(&stats.Total).Error; err != nil {
		return nil, fmt.Errorf("failed to count tickets: %w", err)
	}

	type bucket struct {
		Key   string
		Count int64
	}

	var statusBuckets []bucket
	if err := tx.Model(&models.TicketModel{}).
		Select("status as key, COUNT(*) as count").
		Group("status").
		Scan(&statusBuckets).Error; err != nil {
		return nil, fmt.Errorf("failed to group tickets by status: %w", err)
	}
	for _, b := range statusBuckets {
		stats.ByStatus[b.Key] = b.Count
	}

	var priorityBuckets []bucket
	if err := tx.Model(&models.TicketModel{}).
		Select("priority as key, COUNT(*) as count").
		Group("priority").
		Scan(&priorityBuckets).Error; err != nil {
		return nil, fmt.Errorf("failed to group tickets by priority: %w", err)
	}
	for _, b := range priorityBuckets {
		stats.ByPriority[b.Key] = b.Count
	}

	if err := tx.Model(&models.TicketModel{}).
		Where("assignee_id IS NULL").
		Count(&stats.Unassigned).Error; err != nil {
		return nil, fmt.Errorf("failed to count unassigned tickets: %w", err)
	}

	if err := tx.Model(&models.TicketModel{}).
		Where("auto_assigned = ?", true).
		Count(&stats.AutoAssigned).Error; err != nil {
		return nil, fmt.Errorf("failed to count auto-assigned tickets: %w", err)
	}

	if err := tx.Model(&models.TicketModel{}).
		Where("status IN ?", activeStatuses()).
		Where("sla_due_time IS NOT NULL AND sla_due_time < ?", biztime.NowUTC()).
		Count(&stats.Overdue).Error; err != nil {
		return nil, fmt.Errorf("failed to count overdue tickets: %w", err)
	}

	return stats, nil
}

func activeStatuses() []string {
	return []string{
		vo.StatusOpen.String(),
		vo.StatusInProgress.String(),
		vo.StatusWaiting.String(),
	}
}
