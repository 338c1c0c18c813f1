package usecases

import (
	"time"

	"deskd/internal/domain/user"
)

type SkillResult struct {
	Category    string
	Name        string
	Proficiency int
}

// UserResult is the shared read model for a user. The password hash never
// leaves the application layer.
type UserResult struct {
	UserID      uint
	Email       string
	Name        string
	DisplayName string
	Role        string
	Status      string
	Skills      []SkillResult
	TeamID      *uint
	LastLoginAt *time.Time
	CreatedAt   time.Time
}

func newUserResult(u *user.User) *UserResult {
	skills := u.Skills()
	skillResults := make([]SkillResult, 0, len(skills))
	for _, s := range skills {
		skillResults = append(skillResults, SkillResult{
			Category:    s.Category(),
			Name:        s.Name(),
			Proficiency: s.Proficiency(),
		})
	}

	return &UserResult{
		UserID:      u.ID(),
		Email:       u.Email().String(),
		Name:        u.Name().String(),
		DisplayName: u.Name().DisplayName(),
		Role:        u.Role().String(),
		Status:      u.Status().String(),
		Skills:      skillResults,
		TeamID:      u.TeamID(),
		LastLoginAt: u.LastLoginAt(),
		CreatedAt:   u.CreatedAt(),
	}
}
