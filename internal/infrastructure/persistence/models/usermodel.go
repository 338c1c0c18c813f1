package models

import (
	"time"
)

// UserModel is the persistence model for accounts. Skills live in their own
// table so the routing engine can preload them per agent.
type UserModel struct {
	ID           uint   `gorm:"primaryKey"`
	Email        string `gorm:"uniqueIndex;not null;size:255"`
	Name         string `gorm:"not null;size:100"`
	PasswordHash string `gorm:"not null;size:255"`
	Role         string `gorm:"not null;size:20;index"`
	Status       string `gorm:"not null;default:active;size:20;index"`
	TeamID       *uint  `gorm:"index"`
	LastLoginAt  *time.Time
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`

	Skills []UserSkillModel `gorm:"foreignKey:UserID"`
}

func (UserModel) TableName() string {
	return "users"
}

type UserSkillModel struct {
	ID          uint   `gorm:"primaryKey"`
	UserID      uint   `gorm:"not null;index:idx_user_skill,unique"`
	Name        string `gorm:"not null;size:100;index:idx_user_skill,unique"`
	Category    string `gorm:"size:100"`
	Proficiency int    `gorm:"not null;default:1"`
}

func (UserSkillModel) TableName() string {
	return "user_skills"
}
