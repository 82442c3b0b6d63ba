package repository

import "gorm.io/gorm"

// OwnedBy narrows a query to records belonging to the given user. Every
// tag/ingredient/recipe query goes through this scope so ownership
// filtering lives in exactly one place.
func OwnedBy(userID uint) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
}
