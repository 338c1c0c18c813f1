package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"deskd/internal/domain/routing"
	"deskd/internal/infrastructure/persistence/mappers"
	"deskd/internal/infrastructure/persistence/models"
	"deskd/internal/shared/db"
)

type RoutingRuleRepository struct {
	db     *gorm.DB
	mapper mappers.RoutingRuleMapper
}

func NewRoutingRuleRepository(gdb *gorm.DB) *RoutingRuleRepository {
	return &RoutingRuleRepository{
		db:     gdb,
		mapper: mappers.NewRoutingRuleMapper(),
	}
}

func (r *RoutingRuleRepository) Create(ctx context.Context, rule *routing.Rule) error {
	model := r.mapper.ToModel(rule)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create routing rule: %w", err)
	}

	return rule.SetID(model.ID)
}

func (r *RoutingRuleRepository) FindByID(ctx context.Context, id uint) (*routing.Rule, error) {
	var model models.RoutingRuleModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find routing rule: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *RoutingRuleRepository) List(ctx context.Context, offset, limit int) ([]*routing.Rule, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var total int64
	if err := tx.Model(&models.RoutingRuleModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count routing rules: %w", err)
	}

	query := tx.Order("weight DESC, created_at ASC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var ruleModels []models.RoutingRuleModel
	if err := query.Find(&ruleModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list routing rules: %w", err)
	}

	rules, err := r.toDomainSlice(ruleModels)
	if err != nil {
		return nil, 0, err
	}

	return rules, total, nil
}

// ListActive returns active rules ordered by creation time ascending. The
// matcher re-sorts by weight; creation order keeps ties deterministic.
func (r *RoutingRuleRepository) ListActive(ctx context.Context) ([]*routing.Rule, error) {
	var ruleModels []models.RoutingRuleModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where("is_active = ?", true).
		Order("created_at ASC, id ASC").
		Find(&ruleModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list active routing rules: %w", err)
	}

	return r.toDomainSlice(ruleModels)
}

func (r *RoutingRuleRepository) Update(ctx context.Context, rule *routing.Rule) error {
	model := r.mapper.ToModel(rule)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.RoutingRuleModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update routing rule: %w", result.Error)
	}

	return nil
}

func (r *RoutingRuleRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.RoutingRuleModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete routing rule: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("routing rule not found")
	}
	return nil
}

func (r *RoutingRuleRepository) toDomainSlice(ruleModels []models.RoutingRuleModel) ([]*routing.Rule, error) {
	rules := make([]*routing.Rule, len(ruleModels))
	for i := range ruleModels {
		rule, err := r.mapper.ToDomain(&ruleModels[i])
		if err != nil {
			return nil, err
		}
		rules[i] = rule
	}
	return rules, nil
}
