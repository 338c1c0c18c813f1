package mappers

import (
	"fmt"

	"deskd/internal/domain/user"
	vo "deskd/internal/domain/user/valueobjects"
	"deskd/internal/infrastructure/persistence/models"
	"deskd/internal/shared/authorization"
)

type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	model := &models.UserModel{
		ID:           u.ID(),
		Email:        u.Email().String(),
		Name:         u.Name().String(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		Status:       u.Status().String(),
		TeamID:       u.TeamID(),
		LastLoginAt:  u.LastLoginAt(),
		CreatedAt:    u.CreatedAt(),
		UpdatedAt:    u.UpdatedAt(),
	}

	for _, skill := range u.Skills() {
		model.Skills = append(model.Skills, models.UserSkillModel{
			UserID:      u.ID(),
			Name:        skill.Name(),
			Category:    skill.Category(),
			Proficiency: skill.Proficiency(),
		})
	}

	return model
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	email, err := vo.NewEmail(model.Email)
	if err != nil {
		return nil, fmt.Errorf("invalid user email (id=%d): %w", model.ID, err)
	}
	name, err := vo.NewName(model.Name)
	if err != nil {
		return nil, fmt.Errorf("invalid user name (id=%d): %w", model.ID, err)
	}
	status, err := vo.NewStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid user status (id=%d): %w", model.ID, err)
	}

	skills := make([]*vo.Skill, 0, len(model.Skills))
	for _, s := range model.Skills {
		skill, err := vo.NewSkill(s.Category, s.Name, s.Proficiency)
		if err != nil {
			return nil, fmt.Errorf("invalid user skill %q (id=%d): %w", s.Name, model.ID, err)
		}
		skills = append(skills, skill)
	}

	return user.ReconstructUser(
		model.ID,
		email,
		name,
		model.PasswordHash,
		authorization.ParseUserRole(model.Role),
		status,
		skills,
		model.TeamID,
		model.LastLoginAt,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
