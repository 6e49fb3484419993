package model

import "time"

const (
	ModeStudy = "study"
	ModeTest  = "test"
)

// StudySession is an append-only log entry. Rows are never updated
// or deleted by the session-recording path.
type StudySession struct {
	ID             string    `gorm:"primaryKey" json:"id"`
	UserID         string    `gorm:"index;not null" json:"user_id"`
	SetID          string    `gorm:"index;not null" json:"set_id"`
	CardsStudied   int       `gorm:"not null" json:"cards_studied"`
	CorrectAnswers int       `gorm:"default:0" json:"correct_answers"`
	XPEarned       int       `gorm:"not null" json:"xp_earned"`
	Mode           string    `gorm:"not null" json:"mode"`
	CreatedAt      time.Time `json:"created_at"`
}
