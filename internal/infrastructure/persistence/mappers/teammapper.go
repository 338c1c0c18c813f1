package mappers

import (
	"deskd/internal/domain/team"
	"deskd/internal/infrastructure/persistence/models"
)

type TeamMapper interface {
	ToModel(t *team.Team) *models.TeamModel
	ToDomain(model *models.TeamModel) (*team.Team, error)
}

type TeamMapperImpl struct{}

func NewTeamMapper() TeamMapper {
	return &TeamMapperImpl{}
}

func (m *TeamMapperImpl) ToModel(t *team.Team) *models.TeamModel {
	model := &models.TeamModel{
		ID:          t.ID(),
		Name:        t.Name(),
		Description: t.Description(),
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
	}

	for _, member := range t.Members() {
		model.Members = append(model.Members, models.TeamMemberModel{
			TeamID:   t.ID(),
			UserID:   member.UserID,
			Role:     member.Role.String(),
			JoinedAt: member.JoinedAt,
		})
	}

	return model
}

func (m *TeamMapperImpl) ToDomain(model *models.TeamModel) (*team.Team, error) {
	members := make([]team.Member, 0, len(model.Members))
	for _, mm := range model.Members {
		members = append(members, team.Member{
			UserID:   mm.UserID,
			Role:     team.MemberRole(mm.Role),
			JoinedAt: mm.JoinedAt,
		})
	}

	return team.ReconstructTeam(
		model.ID,
		model.Name,
		model.Description,
		members,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
