package model

import "time"

type Flashcard struct {
	ID    string `gorm:"primaryKey" json:"id"`
	SetID string `gorm:"index;not null" json:"set_id"`
	Front string `gorm:"not null;size:500" json:"front"`
	Back  string `gorm:"not null;size:1000" json:"back"`

	// Romanization hint for Japanese study sets, empty for
	// everything else
	Romaji string `gorm:"size:500" json:"romaji,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
