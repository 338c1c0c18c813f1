package models

import (
	"time"

	"gorm.io/datatypes"
)

type RoutingRuleModel struct {
	ID             uint           `gorm:"primaryKey"`
	Name           string         `gorm:"size:100;not null"`
	Description    string         `gorm:"type:text"`
	Conditions     datatypes.JSON `gorm:"type:json"`
	RequiredSkills datatypes.JSON `gorm:"type:json"`
	Weight         int            `gorm:"not null;default:0;index"`
	IsActive       bool           `gorm:"not null;default:true;index"`
	CreatedBy      uint           `gorm:"not null"`
	CreatedAt      time.Time      `gorm:"not null;index"`
	UpdatedAt      time.Time      `gorm:"not null"`
}

func (RoutingRuleModel) TableName() string {
	return "routing_rules"
}
