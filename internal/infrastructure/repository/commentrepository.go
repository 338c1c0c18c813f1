package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"deskd/internal/domain/ticket"
	"deskd/internal/infrastructure/persistence/mappers"
	"deskd/internal/infrastructure/persistence/models"
	"deskd/internal/shared/db"
)

type CommentRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewCommentRepository(gdb *gorm.DB) *CommentRepository {
	return &CommentRepository{
		db:     gdb,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *CommentRepository) Create(ctx context.Context, c *ticket.Comment) error {
	model := r.mapper.CommentToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}

	return c.SetID(model.ID)
}

func (r *CommentRepository) FindByID(ctx context.Context, id uint) (*ticket.Comment, error) {
	var model models.CommentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find comment: %w", err)
	}

	return r.mapper.CommentToDomain(&model)
}

func (r *CommentRepository) ListByTicketID(ctx context.Context, ticketID uint, includeInternal bool) ([]*ticket.Comment, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC")

	if !includeInternal {
		query = query.Where("is_internal = ?", false)
	}

	var commentModels []models.CommentModel
	if err := query.Find(&commentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	comments := make([]*ticket.Comment, len(commentModels))
	for i := range commentModels {
		c, err := r.mapper.CommentToDomain(&commentModels[i])
		if err != nil {
			return nil, err
		}
		comments[i] = c
	}

	return comments, nil
}

func (r *CommentRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.CommentModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete comment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("comment not found")
	}
	return nil
}
