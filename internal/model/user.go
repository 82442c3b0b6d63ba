package model

import (
	"strings"
	"time"
)

// User represents an authenticated user in the system.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Name         string    `json:"name" gorm:"size:255"`
	IsActive     bool      `json:"is_active" gorm:"default:true"`
	IsStaff      bool      `json:"is_staff" gorm:"default:false"`
	IsSuperuser  bool      `json:"-" gorm:"default:false"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NormalizeEmail lowercases the domain portion of an email address.
// The local part is left untouched since it is case-sensitive per RFC 5321.
func NormalizeEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return email[:at+1] + strings.ToLower(email[at+1:])
}
