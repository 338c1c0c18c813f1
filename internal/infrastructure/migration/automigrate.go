package migration

import (
	"deskd/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.UserSkillModel{},
		&models.TicketModel{},
		&models.CommentModel{},
		&models.RoutingRuleModel{},
		&models.TeamModel{},
		&models.TeamMemberModel{},
		&models.CustomFieldDefinitionModel{},
	}
}
