package models

import (
	"time"
)

type User struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	Username  string `gorm:"size:150;uniqueIndex;not null"`
	// PasswordHash is empty until a credential is set; login ignores it
	// unless password verification is enabled.
	PasswordHash string `gorm:"size:255"`
	CreatedAt    time.Time
}

func (User) TableName() string {
	return "users"
}
