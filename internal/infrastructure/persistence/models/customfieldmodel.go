package models

import (
	"time"

	"gorm.io/datatypes"
)

type CustomFieldDefinitionModel struct {
	ID        uint           `gorm:"primaryKey"`
	Key       string         `gorm:"uniqueIndex;size:50;not null"`
	Label     string         `gorm:"size:100;not null"`
	FieldType string         `gorm:"size:20;not null"`
	Options   datatypes.JSON `gorm:"type:json"`
	Required  bool           `gorm:"not null;default:false"`
	IsActive  bool           `gorm:"not null;default:true;index"`
	CreatedAt time.Time      `gorm:"not null"`
	UpdatedAt time.Time      `gorm:"not null"`
}

func (CustomFieldDefinitionModel) TableName() string {
	return "custom_field_definitions"
}
