package model

import "time"

type FlashcardSet struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	UserID      string    `gorm:"index;not null" json:"user_id"`
	Title       string    `gorm:"not null;size:200" json:"title"`
	Description string    `gorm:"size:1000" json:"description"`
	Subject     string    `gorm:"size:100" json:"subject"`
	IsPublic    bool      `gorm:"default:false" json:"is_public"`
	CreatedAt   time.Time `json:"created_at"`

	Cards []Flashcard `gorm:"foreignKey:SetID" json:"cards,omitempty"`
}
