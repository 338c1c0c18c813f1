package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"deskd/internal/domain/user"
	vo "deskd/internal/domain/user/valueobjects"
	"deskd/internal/infrastructure/persistence/mappers"
	"deskd/internal/infrastructure/persistence/models"
	"deskd/internal/shared/authorization"
	"deskd/internal/shared/db"
)

type UserRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
}

func NewUserRepository(gdb *gorm.DB) *UserRepository {
	return &UserRepository{
		db:     gdb,
		mapper: mappers.NewUserMapper(),
	}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return u.SetID(model.ID)
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Preload("Skills").First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *UserRepository) FindByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	if len(ids) == 0 {
		return []*user.User{}, nil
	}

	var userModels []models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Preload("Skills").Where("id IN ?", ids).Find(&userModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find users: %w", err)
	}

	return r.toDomainSlice(userModels)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email *vo.Email) (*user.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Preload("Skills").Where("email = ?", email.String()).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email *vo.Email) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.UserModel{}).Where("email = ?", email.String()).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check user email: %w", err)
	}

	return count > 0, nil
}

func (r *UserRepository) List(ctx context.Context, offset, limit int) ([]*user.User, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var total int64
	if err := tx.Model(&models.UserModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	query := tx.Preload("Skills").Order("id ASC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var userModels []models.UserModel
	if err := query.Find(&userModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}

	users, err := r.toDomainSlice(userModels)
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.UserModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at", "Skills").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update user: %w", result.Error)
	}

	// Skills are replaced wholesale to keep the set in sync with the aggregate.
	if err := tx.Where("user_id = ?", model.ID).Delete(&models.UserSkillModel{}).Error; err != nil {
		return fmt.Errorf("failed to clear user skills: %w", err)
	}
	if len(model.Skills) > 0 {
		for i := range model.Skills {
			model.Skills[i].ID = 0
			model.Skills[i].UserID = model.ID
		}
		if err := tx.Create(&model.Skills).Error; err != nil {
			return fmt.Errorf("failed to save user skills: %w", err)
		}
	}

	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("user_id = ?", id).Delete(&models.UserSkillModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete user skills: %w", err)
	}

	result := tx.Delete(&models.UserModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("user not found")
	}
	return nil
}

// ListActiveAgents returns active agents with skills preloaded, ordered by
// ID so the selector's tie-breaking stays deterministic.
func (r *UserRepository) ListActiveAgents(ctx context.Context) ([]*user.User, error) {
	var userModels []models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Preload("Skills").
		Where("role = ?", authorization.RoleAgent.String()).
		Where("status = ?", vo.StatusActive.String()).
		Order("id ASC").
		Find(&userModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list active agents: %w", err)
	}

	return r.toDomainSlice(userModels)
}

func (r *UserRepository) toDomainSlice(userModels []models.UserModel) ([]*user.User, error) {
	users := make([]*user.User, len(userModels))
	for i := range userModels {
		u, err := r.mapper.ToDomain(&userModels[i])
		if err != nil {
			return nil, err
		}
		users[i] = u
	}
	return users, nil
}
