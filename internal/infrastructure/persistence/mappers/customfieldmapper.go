package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"deskd/internal/domain/customfield"
	"deskd/internal/infrastructure/persistence/models"
)

type CustomFieldMapper interface {
	ToModel(d *customfield.Definition) *models.CustomFieldDefinitionModel
	ToDomain(model *models.CustomFieldDefinitionModel) (*customfield.Definition, error)
}

type CustomFieldMapperImpl struct{}

func NewCustomFieldMapper() CustomFieldMapper {
	return &CustomFieldMapperImpl{}
}

func (m *CustomFieldMapperImpl) ToModel(d *customfield.Definition) *models.CustomFieldDefinitionModel {
	model := &models.CustomFieldDefinitionModel{
		ID:        d.ID(),
		Key:       d.Key(),
		Label:     d.Label(),
		FieldType: d.FieldType().String(),
		Required:  d.Required(),
		IsActive:  d.IsActive(),
		CreatedAt: d.CreatedAt(),
		UpdatedAt: d.UpdatedAt(),
	}

	if optionsJSON, err := json.Marshal(d.Options()); err == nil {
		model.Options = datatypes.JSON(optionsJSON)
	}

	return model
}

func (m *CustomFieldMapperImpl) ToDomain(model *models.CustomFieldDefinitionModel) (*customfield.Definition, error) {
	fieldType, err := customfield.NewFieldType(model.FieldType)
	if err != nil {
		return nil, fmt.Errorf("invalid field type (id=%d): %w", model.ID, err)
	}

	var options []string
	if len(model.Options) > 0 {
		if err := json.Unmarshal(model.Options, &options); err != nil {
			return nil, fmt.Errorf("failed to unmarshal field options (id=%d): %w", model.ID, err)
		}
	}

	return customfield.ReconstructDefinition(
		model.ID,
		model.Key,
		model.Label,
		fieldType,
		options,
		model.Required,
		model.IsActive,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
