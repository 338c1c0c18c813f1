package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"deskd/internal/application/customfield/usecases"
	"deskd/internal/shared/logger"
	"deskd/internal/shared/utils"
)

type CreateCustomFieldRequest struct {
	Key       string   `json:"key" binding:"required,max=50"`
	Label     string   `json:"label" binding:"required,max=100"`
	FieldType string   `json:"field_type" binding:"required"`
	Options   []string `json:"options,omitempty"`
	Required  bool     `json:"required"`
}

type UpdateCustomFieldRequest struct {
	Label    string   `json:"label" binding:"required,max=100"`
	Options  []string `json:"options,omitempty"`
	Required bool     `json:"required"`
	IsActive *bool    `json:"is_active,omitempty"`
}

type CustomFieldResponse struct {
	ID        uint      `json:"id"`
	Key       string    `json:"key"`
	Label     string    `json:"label"`
	FieldType string    `json:"field_type"`
	Options   []string  `json:"options"`
	Required  bool      `json:"required"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newCustomFieldResponse(r *usecases.DefinitionResult) *CustomFieldResponse {
	return &CustomFieldResponse{
		ID:        r.DefinitionID,
		Key:       r.Key,
		Label:     r.Label,
		FieldType: r.FieldType,
		Options:   r.Options,
		Required:  r.Required,
		IsActive:  r.IsActive,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

type CustomFieldHandler struct {
	createUC usecases.CreateDefinitionExecutor
	getUC    usecases.GetDefinitionExecutor
	listUC   usecases.ListDefinitionsExecutor
	updateUC usecases.UpdateDefinitionExecutor
	deleteUC usecases.DeleteDefinitionExecutor
	logger   logger.Interface
}

func NewCustomFieldHandler(
	createUC usecases.CreateDefinitionExecutor,
	getUC usecases.GetDefinitionExecutor,
	listUC usecases.ListDefinitionsExecutor,
	updateUC usecases.UpdateDefinitionExecutor,
	deleteUC usecases.DeleteDefinitionExecutor,
) *CustomFieldHandler {
	return &CustomFieldHandler{
		createUC: createUC,
		getUC:    getUC,
		listUC:   listUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		logger:   logger.NewLogger(),
	}
}

// Create handles POST /custom-fields
func (h *CustomFieldHandler) Create(c *gin.Context) {
	var req CreateCustomFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.CreateDefinitionCommand{
		Key:       req.Key,
		Label:     req.Label,
		FieldType: req.FieldType,
		Options:   req.Options,
		Required:  req.Required,
	}

	result, err := h.createUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, newCustomFieldResponse(result), "Custom field created successfully")
}

// Get handles GET /custom-fields/:id
func (h *CustomFieldHandler) Get(c *gin.Context) {
	definitionID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetDefinitionCommand{DefinitionID: definitionID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", newCustomFieldResponse(result))
}

// List handles GET /custom-fields
func (h *CustomFieldHandler) List(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	cmd := usecases.ListDefinitionsCommand{
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}

	result, err := h.listUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	fields := make([]*CustomFieldResponse, 0, len(result.Definitions))
	for _, d := range result.Definitions {
		fields = append(fields, newCustomFieldResponse(d))
	}

	utils.ListSuccessResponse(c, fields, result.Total, pagination.Page, pagination.PageSize)
}

// Update handles PUT /custom-fields/:id
func (h *CustomFieldHandler) Update(c *gin.Context) {
	definitionID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateCustomFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.UpdateDefinitionCommand{
		DefinitionID: definitionID,
		Label:        req.Label,
		Options:      req.Options,
		Required:     req.Required,
		IsActive:     req.IsActive,
	}

	result, err := h.updateUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Custom field updated successfully", newCustomFieldResponse(result))
}

// Delete handles DELETE /custom-fields/:id
func (h *CustomFieldHandler) Delete(c *gin.Context) {
	definitionID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteDefinitionCommand{DefinitionID: definitionID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
