package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Recipe is the central user-owned entity. Tags and Ingredients are
// many-to-many and must belong to the same owner; that rule is enforced
// at the service boundary, not here.
type Recipe struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Title       string          `json:"title" gorm:"size:255;not null"`
	TimeMinutes int             `json:"time_minutes" gorm:"not null"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Link        string          `json:"link,omitempty" gorm:"size:255"`
	Image       string          `json:"image,omitempty" gorm:"size:255"`
	UserID      uint            `json:"-" gorm:"not null;index"`
	User        User            `json:"-" gorm:"foreignKey:UserID"`
	Tags        []Tag           `json:"-" gorm:"many2many:recipe_tags;constraint:OnDelete:CASCADE"`
	Ingredients []Ingredient    `json:"-" gorm:"many2many:recipe_ingredients;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
