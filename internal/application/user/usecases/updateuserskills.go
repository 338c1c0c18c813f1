package usecases

import (
	"context"

	"deskd/internal/domain/user"
	vo "deskd/internal/domain/user/valueobjects"
	"deskd/internal/shared/errors"
	"deskd/internal/shared/logger"
)

type SkillInput struct {
	Category    string
	Name        string
	Proficiency int
}

type UpdateUserSkillsCommand struct {
	UserID uint
	Skills []SkillInput
}

// UpdateUserSkillsUseCase replaces an agent's skill list. Only agents carry
// skills; the routing engine consults them when selecting assignees.
type UpdateUserSkillsUseCase struct {
	userRepo user.UserRepository
	logger   logger.Interface
}

func NewUpdateUserSkillsUseCase(
	userRepo user.UserRepository,
	logger logger.Interface,
) *UpdateUserSkillsUseCase {
	return &UpdateUserSkillsUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *UpdateUserSkillsUseCase) Execute(ctx context.Context, cmd UpdateUserSkillsCommand) (*UserResult, error) {
	uc.logger.Infow("executing update user skills use case", "user_id", cmd.UserID, "skill_count", len(cmd.Skills))

	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	u, err := uc.userRepo.FindByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to find user", "user_id", cmd.UserID, "error", err)
		return nil, err
	}
	if u == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	if !u.IsStaff() {
		return nil, errors.NewValidationError("only staff users can have skills")
	}

	skills := make([]*vo.Skill, 0, len(cmd.Skills))
	seen := make(map[string]bool, len(cmd.Skills))
	for _, input := range cmd.Skills {
		skill, err := vo.NewSkill(input.Category, input.Name, input.Proficiency)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if seen[skill.Name()] {
			return nil, errors.NewValidationError("duplicate skill: " + skill.Name())
		}
		seen[skill.Name()] = true
		skills = append(skills, skill)
	}

	u.ReplaceSkills(skills)

	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to update user skills", "user_id", cmd.UserID, "error", err)
		return nil, err
	}

	uc.logger.Infow("user skills updated", "user_id", u.ID(), "skill_count", len(skills))

	return newUserResult(u), nil
}
