package service

import (
	"fmt"
	"hoangtv/flashcard-api/model"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testDBSeq atomic.Int64

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:servicetest%d?mode=memory&cache=shared", testDBSeq.Add(1))

	db, err := gorm.Open(sqlite.Open(dsn))
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		model.User{},
		model.FlashcardSet{},
		model.Flashcard{},
		model.UserStats{},
		model.StudySession{},
	))

	return db
}

func mustCreateSet(t *testing.T, db *gorm.DB, ownerID string, public bool) model.FlashcardSet {
	t.Helper()

	id, err := NewID()
	require.NoError(t, err)

	set := model.FlashcardSet{
		ID:       id,
		UserID:   ownerID,
		Title:    "N5 Kanji",
		Subject:  "Japanese",
		IsPublic: public,
	}
	require.NoError(t, db.Create(&set).Error)

	return set
}

func modelStats(cards, xp, streak, longest int) model.UserStats {
	return model.UserStats{
		CardsStudied:  cards,
		XPPoints:      xp,
		CurrentStreak: streak,
		LongestStreak: longest,
	}
}

func mustCreateCard(t *testing.T, db *gorm.DB, setID, front, back, romaji string) model.Flashcard {
	t.Helper()

	id, err := NewID()
	require.NoError(t, err)

	card := model.Flashcard{ID: id, SetID: setID, Front: front, Back: back, Romaji: romaji}
	require.NoError(t, db.Create(&card).Error)

	return card
}
