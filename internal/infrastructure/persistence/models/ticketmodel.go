package models

import (
	"time"

	"gorm.io/datatypes"
)

type TicketModel struct {
	ID                 uint           `gorm:"primaryKey"`
	Number             string         `gorm:"uniqueIndex;size:50;not null"`
	Subject            string         `gorm:"size:200;not null"`
	Description        string         `gorm:"type:text;not null"`
	Priority           string         `gorm:"size:20;not null;index"`
	Status             string         `gorm:"size:20;not null;index"`
	CreatorID          uint           `gorm:"not null;index"`
	AssigneeID         *uint          `gorm:"index"`
	Tags               datatypes.JSON `gorm:"type:json"`
	CustomFields       datatypes.JSON `gorm:"type:json"`
	AutoAssigned       bool           `gorm:"not null;default:false"`
	MatchedRuleID      *uint          `gorm:"index"`
	AssignmentAttempts int            `gorm:"not null;default:0"`
	SLADueTime         *time.Time     `gorm:"index"`
	FirstResponseAt    *time.Time
	ResolvedAt         *time.Time
	Version            int        `gorm:"not null;default:1"`
	CreatedAt          time.Time  `gorm:"not null"`
	UpdatedAt          time.Time  `gorm:"not null"`
	ClosedAt           *time.Time

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}

type CommentModel struct {
	ID         uint      `gorm:"primaryKey"`
	TicketID   uint      `gorm:"not null;index"`
	AuthorID   uint      `gorm:"not null;index"`
	Body       string    `gorm:"type:text;not null"`
	IsInternal bool      `gorm:"not null;default:false"`
	CreatedAt  time.Time `gorm:"not null;index"`
	UpdatedAt  time.Time `gorm:"not null"`
}

func (CommentModel) TableName() string {
	return "ticket_comments"
}
