package usecases

import (
	"context"
	"time"

	"deskd/internal/domain/customfield"
	"deskd/internal/shared/errors"
	"deskd/internal/shared/logger"
	"deskd/internal/shared/mapper"
)

type DefinitionResult struct {
	DefinitionID uint
	Key          string
	Label        string
	FieldType    string
	Options      []string
	Required     bool
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func newDefinitionResult(d *customfield.Definition) *DefinitionResult {
	return &DefinitionResult{
		DefinitionID: d.ID(),
		Key:          d.Key(),
		Label:        d.Label(),
		FieldType:    d.FieldType().String(),
		Options:      d.Options(),
		Required:     d.Required(),
		IsActive:     d.IsActive(),
		CreatedAt:    d.CreatedAt(),
		UpdatedAt:    d.UpdatedAt(),
	}
}

type CreateDefinitionCommand struct {
	Key       string
	Label     string
	FieldType string
	Options   []string
	Required  bool
}

type CreateDefinitionExecutor interface {
	Execute(ctx context.Context, cmd CreateDefinitionCommand) (*DefinitionResult, error)
}

type CreateDefinitionUseCase struct {
	fieldRepo customfield.DefinitionRepository
	logger    logger.Interface
}

func NewCreateDefinitionUseCase(
	fieldRepo customfield.DefinitionRepository,
	logger logger.Interface,
) *CreateDefinitionUseCase {
	return &CreateDefinitionUseCase{
		fieldRepo: fieldRepo,
		logger:    logger,
	}
}

func (uc *CreateDefinitionUseCase) Execute(ctx context.Context, cmd CreateDefinitionCommand) (*DefinitionResult, error) {
	uc.logger.Infow("executing create custom field definition use case", "key", cmd.Key)

	fieldType, err := customfield.NewFieldType(cmd.FieldType)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	existing, err := uc.fieldRepo.FindByKey(ctx, cmd.Key)
	if err != nil {
		uc.logger.Errorw("failed to check field key", "error", err)
		return nil, err
	}
	if existing != nil {
		return nil, errors.NewConflictError("a field with this key already exists")
	}

	definition, err := customfield.NewDefinition(cmd.Key, cmd.Label, fieldType, cmd.Options, cmd.Required)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.fieldRepo.Create(ctx, definition); err != nil {
		uc.logger.Errorw("failed to save field definition", "error", err)
		return nil, err
	}

	uc.logger.Infow("custom field definition created", "definition_id", definition.ID(), "key", definition.Key())

	return newDefinitionResult(definition), nil
}

type GetDefinitionCommand struct {
	DefinitionID uint
}

type GetDefinitionExecutor interface {
	Execute(ctx context.Context, cmd GetDefinitionCommand) (*DefinitionResult, error)
}

type GetDefinitionUseCase struct {
	fieldRepo customfield.DefinitionRepository
	logger    logger.Interface
}

func NewGetDefinitionUseCase(
	fieldRepo customfield.DefinitionRepository,
	logger logger.Interface,
) *GetDefinitionUseCase {
	return &GetDefinitionUseCase{
		fieldRepo: fieldRepo,
		logger:    logger,
	}
}

func (uc *GetDefinitionUseCase) Execute(ctx context.Context, cmd GetDefinitionCommand) (*DefinitionResult, error) {
	if cmd.DefinitionID == 0 {
		return nil, errors.NewValidationError("definition ID is required")
	}

	definition, err := uc.fieldRepo.FindByID(ctx, cmd.DefinitionID)
	if err != nil {
		uc.logger.Errorw("failed to find field definition", "definition_id", cmd.DefinitionID, "error", err)
		return nil, err
	}
	if definition == nil {
		return nil, errors.NewNotFoundError("field definition not found")
	}

	return newDefinitionResult(definition), nil
}

type ListDefinitionsCommand struct {
	Page     int
	PageSize int
}

type ListDefinitionsResult struct {
	Definitions []*DefinitionResult
	Total       int64
}

type ListDefinitionsExecutor interface {
	Execute(ctx context.Context, cmd ListDefinitionsCommand) (*ListDefinitionsResult, error)
}

type ListDefinitionsUseCase struct {
	fieldRepo customfield.DefinitionRepository
	logger    logger.Interface
}

func NewListDefinitionsUseCase(
	fieldRepo customfield.DefinitionRepository,
	logger logger.Interface,
) *ListDefinitionsUseCase {
	return &ListDefinitionsUseCase{
		fieldRepo: fieldRepo,
		logger:    logger,
	}
}

func (uc *ListDefinitionsUseCase) Execute(ctx context.Context, cmd ListDefinitionsCommand) (*ListDefinitionsResult, error) {
	offset := (cmd.Page - 1) * cmd.PageSize

	definitions, total, err := uc.fieldRepo.List(ctx, offset, cmd.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list field definitions", "error", err)
		return nil, err
	}

	return &ListDefinitionsResult{
		Definitions: mapper.MapSlice(definitions, newDefinitionResult),
		Total:       total,
	}, nil
}

type UpdateDefinitionCommand struct {
	DefinitionID uint
	Label        string
	Options      []string
	Required     bool
	IsActive     *bool
}

type UpdateDefinitionExecutor interface {
	Execute(ctx context.Context, cmd UpdateDefinitionCommand) (*DefinitionResult, error)
}

type UpdateDefinitionUseCase struct {
	fieldRepo customfield.DefinitionRepository
	logger    logger.Interface
}

func NewUpdateDefinitionUseCase(
	fieldRepo customfield.DefinitionRepository,
	logger logger.Interface,
) *UpdateDefinitionUseCase {
	return &UpdateDefinitionUseCase{
		fieldRepo: fieldRepo,
		logger:    logger,
	}
}

func (uc *UpdateDefinitionUseCase) Execute(ctx context.Context, cmd UpdateDefinitionCommand) (*DefinitionResult, error) {
	uc.logger.Infow("executing update custom field definition use case", "definition_id", cmd.DefinitionID)

	if cmd.DefinitionID == 0 {
		return nil, errors.NewValidationError("definition ID is required")
	}

	definition, err := uc.fieldRepo.FindByID(ctx, cmd.DefinitionID)
	if err != nil {
		uc.logger.Errorw("failed to find field definition", "definition_id", cmd.DefinitionID, "error", err)
		return nil, err
	}
	if definition == nil {
		return nil, errors.NewNotFoundError("field definition not found")
	}

	if err := definition.Update(cmd.Label, cmd.Options, cmd.Required); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if cmd.IsActive != nil {
		if *cmd.IsActive {
			definition.Activate()
		} else {
			definition.Deactivate()
		}
	}

	if err := uc.fieldRepo.Update(ctx, definition); err != nil {
		uc.logger.Errorw("failed to update field definition", "definition_id", cmd.DefinitionID, "error", err)
		return nil, err
	}

	return newDefinitionResult(definition), nil
}

type DeleteDefinitionCommand struct {
	DefinitionID uint
}

type DeleteDefinitionExecutor interface {
	Execute(ctx context.Context, cmd DeleteDefinitionCommand) error
}

type DeleteDefinitionUseCase struct {
	fieldRepo customfield.DefinitionRepository
	logger    logger.Interface
}

func NewDeleteDefinitionUseCase(
	fieldRepo customfield.DefinitionRepository,
	logger logger.Interface,
) *DeleteDefinitionUseCase {
	return &DeleteDefinitionUseCase{
		fieldRepo: fieldRepo,
		logger:    logger,
	}
}

func (uc *DeleteDefinitionUseCase) Execute(ctx context.Context, cmd DeleteDefinitionCommand) error {
	uc.logger.Infow("executing delete custom field definition use case", "definition_id", cmd.DefinitionID)

	if cmd.DefinitionID == 0 {
		return errors.NewValidationError("definition ID is required")
	}

	definition, err := uc.fieldRepo.FindByID(ctx, cmd.DefinitionID)
	if err != nil {
		uc.logger.Errorw("failed to find field definition", "definition_id", cmd.DefinitionID, "error", err)
		return err
	}
	if definition == nil {
		return errors.NewNotFoundError("field definition not found")
	}

	if err := uc.fieldRepo.Delete(ctx, cmd.DefinitionID); err != nil {
		uc.logger.Errorw("failed to delete field definition", "definition_id", cmd.DefinitionID, "error", err)
		return err
	}

	uc.logger.Infow("custom field definition deleted", "definition_id", cmd.DefinitionID)
	return nil
}
