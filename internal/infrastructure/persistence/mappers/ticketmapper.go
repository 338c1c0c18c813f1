package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"deskd/internal/domain/ticket"
	vo "deskd/internal/domain/ticket/valueobjects"
	"deskd/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between Ticket domain entities and persistence models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
	CommentToModel(c *ticket.Comment) *models.CommentModel
	CommentToDomain(model *models.CommentModel) (*ticket.Comment, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	model := &models.TicketModel{
		ID:                 t.ID(),
		Number:             t.Number(),
		Subject:            t.Subject(),
		Description:        t.Description(),
		Priority:           t.Priority().String(),
		Status:             t.Status().String(),
		CreatorID:          t.CreatorID(),
		AssigneeID:         t.AssigneeID(),
		AutoAssigned:       t.AutoAssigned(),
		MatchedRuleID:      t.MatchedRuleID(),
		AssignmentAttempts: t.AssignmentAttempts(),
		SLADueTime:         t.SLADueTime(),
		FirstResponseAt:    t.FirstResponseAt(),
		ResolvedAt:         t.ResolvedAt(),
		Version:            t.Version(),
		CreatedAt:          t.CreatedAt(),
		UpdatedAt:          t.UpdatedAt(),
		ClosedAt:           t.ClosedAt(),
	}

	if tagsJSON, err := json.Marshal(t.Tags()); err == nil {
		model.Tags = datatypes.JSON(tagsJSON)
	}
	if fieldsJSON, err := json.Marshal(t.CustomFields()); err == nil {
		model.CustomFields = datatypes.JSON(fieldsJSON)
	}

	return model
}

// ToDomain converts the ticket fields only. Comments are loaded separately
// by the repository.
func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	priority, err := vo.NewPriority(model.Priority)
	if err != nil {
		return nil, fmt.Errorf("invalid ticket priority (id=%d): %w", model.ID, err)
	}
	status, err := vo.NewTicketStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid ticket status (id=%d): %w", model.ID, err)
	}

	var tags []string
	if len(model.Tags) > 0 {
		if err := json.Unmarshal(model.Tags, &tags); err != nil {
			return nil, fmt.Errorf("failed to unmarshal ticket tags (id=%d): %w", model.ID, err)
		}
	}

	var customFields map[string]string
	if len(model.CustomFields) > 0 {
		if err := json.Unmarshal(model.CustomFields, &customFields); err != nil {
			return nil, fmt.Errorf("failed to unmarshal ticket custom fields (id=%d): %w", model.ID, err)
		}
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.Number,
		model.Subject,
		model.Description,
		priority,
		status,
		model.CreatorID,
		model.AssigneeID,
		tags,
		customFields,
		model.AutoAssigned,
		model.MatchedRuleID,
		model.AssignmentAttempts,
		model.SLADueTime,
		model.FirstResponseAt,
		model.ResolvedAt,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
		model.ClosedAt,
	)
}

func (m *TicketMapperImpl) CommentToModel(c *ticket.Comment) *models.CommentModel {
	return &models.CommentModel{
		ID:         c.ID(),
		TicketID:   c.TicketID(),
		AuthorID:   c.AuthorID(),
		Body:       c.Body(),
		IsInternal: c.IsInternal(),
		CreatedAt:  c.CreatedAt(),
		UpdatedAt:  c.UpdatedAt(),
	}
}

func (m *TicketMapperImpl) CommentToDomain(model *models.CommentModel) (*ticket.Comment, error) {
	return ticket.ReconstructComment(
		model.ID,
		model.TicketID,
		model.AuthorID,
		model.Body,
		model.IsInternal,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
