package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"deskd/internal/domain/customfield"
	"deskd/internal/infrastructure/persistence/mappers"
	"deskd/internal/infrastructure/persistence/models"
	"deskd/internal/shared/db"
)

type CustomFieldRepository struct {
	db     *gorm.DB
	mapper mappers.CustomFieldMapper
}

func NewCustomFieldRepository(gdb *gorm.DB) *CustomFieldRepository {
	return &CustomFieldRepository{
		db:     gdb,
		mapper: mappers.NewCustomFieldMapper(),
	}
}

func (r *CustomFieldRepository) Create(ctx context.Context, d *customfield.Definition) error {
	model := r.mapper.ToModel(d)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create field definition: %w", err)
	}

	return d.SetID(model.ID)
}

func (r *CustomFieldRepository) FindByID(ctx context.Context, id uint) (*customfield.Definition, error) {
	var model models.CustomFieldDefinitionModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find field definition: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *CustomFieldRepository) FindByKey(ctx context.Context, key string) (*customfield.Definition, error) {
	var model models.CustomFieldDefinitionModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("key = ?", key).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find field definition by key: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *CustomFieldRepository) List(ctx context.Context, offset, limit int) ([]*customfield.Definition, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var total int64
	if err := tx.Model(&models.CustomFieldDefinitionModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count field definitions: %w", err)
	}

	query := tx.Order("id ASC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var defModels []models.CustomFieldDefinitionModel
	if err := query.Find(&defModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list field definitions: %w", err)
	}

	definitions, err := r.toDomainSlice(defModels)
	if err != nil {
		return nil, 0, err
	}

	return definitions, total, nil
}

func (r *CustomFieldRepository) ListActive(ctx context.Context) ([]*customfield.Definition, error) {
	var defModels []models.CustomFieldDefinitionModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where("is_active = ?", true).
		Order("id ASC").
		Find(&defModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list active field definitions: %w", err)
	}

	return r.toDomainSlice(defModels)
}

func (r *CustomFieldRepository) Update(ctx context.Context, d *customfield.Definition) error {
	model := r.mapper.ToModel(d)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.CustomFieldDefinitionModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update field definition: %w", result.Error)
	}

	return nil
}

func (r *CustomFieldRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.CustomFieldDefinitionModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete field definition: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("field definition not found")
	}
	return nil
}

func (r *CustomFieldRepository) toDomainSlice(defModels []models.CustomFieldDefinitionModel) ([]*customfield.Definition, error) {
	definitions := make([]*customfield.Definition, len(defModels))
	for i := range defModels {
		d, err := r.mapper.ToDomain(&defModels[i])
		if err != nil {
			return nil, err
		}
		definitions[i] = d
	}
	return definitions, nil
}
