// Package model defines database models
package model

import "time"

const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

type User struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Role         string    `gorm:"default:student" json:"role"`
	CreatedAt    time.Time `json:"created_at"`

	Sets     []FlashcardSet `gorm:"foreignKey:UserID" json:"-"`
	Stats    *UserStats     `gorm:"foreignKey:UserID" json:"-"`
	Sessions []StudySession `gorm:"foreignKey:UserID" json:"-"`
}
