package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"deskd/internal/domain/routing"
	"deskd/internal/infrastructure/persistence/models"
)

type RoutingRuleMapper interface {
	ToModel(r *routing.Rule) *models.RoutingRuleModel
	ToDomain(model *models.RoutingRuleModel) (*routing.Rule, error)
}

type RoutingRuleMapperImpl struct{}

func NewRoutingRuleMapper() RoutingRuleMapper {
	return &RoutingRuleMapperImpl{}
}

func (m *RoutingRuleMapperImpl) ToModel(r *routing.Rule) *models.RoutingRuleModel {
	model := &models.RoutingRuleModel{
		ID:          r.ID(),
		Name:        r.Name(),
		Description: r.Description(),
		Weight:      r.Weight(),
		IsActive:    r.IsActive(),
		CreatedBy:   r.CreatedBy(),
		CreatedAt:   r.CreatedAt(),
		UpdatedAt:   r.UpdatedAt(),
	}

	if condJSON, err := json.Marshal(r.Conditions()); err == nil {
		model.Conditions = datatypes.JSON(condJSON)
	}
	if skillsJSON, err := json.Marshal(r.RequiredSkills()); err == nil {
		model.RequiredSkills = datatypes.JSON(skillsJSON)
	}

	return model
}

func (m *RoutingRuleMapperImpl) ToDomain(model *models.RoutingRuleModel) (*routing.Rule, error) {
	var conditions routing.Conditions
	if len(model.Conditions) > 0 {
		if err := json.Unmarshal(model.Conditions, &conditions); err != nil {
			return nil, fmt.Errorf("failed to unmarshal rule conditions (id=%d): %w", model.ID, err)
		}
	}

	var requiredSkills []string
	if len(model.RequiredSkills) > 0 {
		if err := json.Unmarshal(model.RequiredSkills, &requiredSkills); err != nil {
			return nil, fmt.Errorf("failed to unmarshal rule required skills (id=%d): %w", model.ID, err)
		}
	}

	return routing.ReconstructRule(
		model.ID,
		model.Name,
		model.Description,
		conditions,
		requiredSkills,
		model.Weight,
		model.IsActive,
		model.CreatedBy,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
