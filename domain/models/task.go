package models

import (
	"time"
)

type Task struct {
	ID     uint `gorm:"primaryKey;autoIncrement"`
	UserID uint `gorm:"not null;index"`
	User   User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`

	Title       string `gorm:"size:255;not null"`
	Description string `gorm:"type:text"`

	// Priority is a small int, 1..5 by convention (1 highest), default 3.
	Priority         int `gorm:"not null;default:3"`
	EstimatedMinutes int `gorm:"not null;default:0"`

	DueAt       *time.Time
	IsCompleted bool `gorm:"not null;default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Subtasks []Subtask `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE"`
}

func (Task) TableName() string {
	return "tasks"
}
