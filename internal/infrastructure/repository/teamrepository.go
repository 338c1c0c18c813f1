package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"deskd/internal/domain/team"
	"deskd/internal/infrastructure/persistence/mappers"
	"deskd/internal/infrastructure/persistence/models"
	"deskd/internal/shared/db"
)

type TeamRepository struct {
	db     *gorm.DB
	mapper mappers.TeamMapper
}

func NewTeamRepository(gdb *gorm.DB) *TeamRepository {
	return &TeamRepository{
		db:     gdb,
		mapper: mappers.NewTeamMapper(),
	}
}

func (r *TeamRepository) Create(ctx context.Context, t *team.Team) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create team: %w", err)
	}

	return t.SetID(model.ID)
}

func (r *TeamRepository) FindByID(ctx context.Context, id uint) (*team.Team, error) {
	var model models.TeamModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Preload("Members").First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find team: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TeamRepository) FindByName(ctx context.Context, name string) (*team.Team, error) {
	var model models.TeamModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Preload("Members").Where("name = ?", name).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find team by name: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TeamRepository) List(ctx context.Context, offset, limit int) ([]*team.Team, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var total int64
	if err := tx.Model(&models.TeamModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count teams: %w", err)
	}

	query := tx.Preload("Members").Order("id ASC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var teamModels []models.TeamModel
	if err := query.Find(&teamModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list teams: %w", err)
	}

	teams := make([]*team.Team, len(teamModels))
	for i := range teamModels {
		t, err := r.mapper.ToDomain(&teamModels[i])
		if err != nil {
			return nil, 0, err
		}
		teams[i] = t
	}

	return teams, total, nil
}

func (r *TeamRepository) Update(ctx context.Context, t *team.Team) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TeamModel{}).
		Where("id = ?", model.ID).
		Select("name", "description", "updated_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update team: %w", result.Error)
	}

	// Membership is replaced wholesale to match the aggregate.
	if err := tx.Where("team_id = ?", model.ID).Delete(&models.TeamMemberModel{}).Error; err != nil {
		return fmt.Errorf("failed to clear team members: %w", err)
	}
	if len(model.Members) > 0 {
		for i := range model.Members {
			model.Members[i].ID = 0
			model.Members[i].TeamID = model.ID
		}
		if err := tx.Create(&model.Members).Error; err != nil {
			return fmt.Errorf("failed to save team members: %w", err)
		}
	}

	return nil
}

func (r *TeamRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("team_id = ?", id).Delete(&models.TeamMemberModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete team members: %w", err)
	}

	result := tx.Delete(&models.TeamModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete team: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("team not found")
	}
	return nil
}
