package model

import "time"

// Ingredient is a user-owned ingredient referenced by recipes.
type Ingredient struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	UserID    uint      `json:"-" gorm:"not null;index"`
	User      User      `json:"-" gorm:"foreignKey:UserID"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
