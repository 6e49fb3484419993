package model

import "time"

// UserStats is created lazily the first time a user records a
// study session. One row per user.
type UserStats struct {
	ID            string     `gorm:"primaryKey" json:"-"`
	UserID        string     `gorm:"uniqueIndex;not null" json:"-"`
	CardsStudied  int        `gorm:"default:0" json:"cards_studied"`
	XPPoints      int        `gorm:"default:0" json:"xp_points"`
	CurrentStreak int        `gorm:"default:0" json:"current_streak"`
	LongestStreak int        `gorm:"default:0" json:"longest_streak"`
	LastStudiedAt *time.Time `json:"last_studied_at,omitempty"`
}
