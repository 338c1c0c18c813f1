package models

import "time"

type TeamModel struct {
	ID          uint      `gorm:"primaryKey"`
	Name        string    `gorm:"uniqueIndex;size:100;not null"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`

	Members []TeamMemberModel `gorm:"foreignKey:TeamID"`
}

func (TeamModel) TableName() string {
	return "teams"
}

type TeamMemberModel struct {
	ID       uint      `gorm:"primaryKey"`
	TeamID   uint      `gorm:"not null;index:idx_team_member,unique"`
	UserID   uint      `gorm:"not null;index:idx_team_member,unique"`
	Role     string    `gorm:"not null;size:20;default:member"`
	JoinedAt time.Time `gorm:"not null"`
}

func (TeamMemberModel) TableName() string {
	return "team_members"
}
