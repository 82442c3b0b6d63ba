package model

import "time"

// AuthToken binds an opaque bearer key to a user. The unique index on
// UserID enforces at most one active token per user.
type AuthToken struct {
	ID        uint      `json:"-" gorm:"primaryKey"`
	Key       string    `json:"key" gorm:"uniqueIndex;size:40;not null"`
	UserID    uint      `json:"-" gorm:"uniqueIndex;not null"`
	User      User      `json:"-" gorm:"foreignKey:UserID"`
	CreatedAt time.Time `json:"-"`
}
