package models

import (
	"time"
)

type Subtask struct {
	ID     uint `gorm:"primaryKey;autoIncrement"`
	TaskID uint `gorm:"not null;index"`

	// ParentSubtaskID enables nesting within the same task. The constraint
	// lives on the relation field: GORM ignores constraint tags on scalars.
	ParentSubtaskID *uint    `gorm:"index"`
	Parent          *Subtask `gorm:"foreignKey:ParentSubtaskID;constraint:OnDelete:CASCADE"`

	Title       string `gorm:"size:255;not null"`
	Description string `gorm:"type:text"`

	IsCompleted bool `gorm:"not null;default:false"`
	OrderIndex  int  `gorm:"not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Subtask) TableName() string {
	return "subtasks"
}
