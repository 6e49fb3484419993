package service

import (
	"hoangtv/flashcard-api/model"
	"math"
	"time"

	"gorm.io/gorm"
)

const (
	xpPerCard   = 10
	xpTestBonus = 50
	xpPerLevel  = 100
)

// Progress is the study-session accounting engine. It appends a session
// row and folds the session into the user's cumulative stats.
type Progress struct {
	DB *gorm.DB

	// Now is swappable for tests; defaults to time.Now
	Now func() time.Time
}

// SessionResult is what the client gets back for display after a
// completed study or test pass.
type SessionResult struct {
	SessionID string `json:"sessionId"`
	XPEarned  int    `json:"xpEarned"`
	Streak    int    `json:"streak"`
}

// dayOf truncates a timestamp to its UTC calendar day. Streaks are
// counted on UTC day boundaries, computed once per recorded session.
func dayOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// xpFor computes the XP earned by a session: 10 per card plus a bonus
// of up to 50 scaled by the test score. A score of 0 still counts as a
// test, it just earns no bonus.
func xpFor(cardsStudied int, testScore *float64) int {
	xp := cardsStudied * xpPerCard
	if testScore != nil {
		xp += int(math.Round(*testScore * xpTestBonus))
	}
	return xp
}

// nextStreak runs the streak state machine against the prior stats row.
// prior is nil when the user has never studied before.
func nextStreak(prior *model.UserStats, now time.Time) int {
	if prior == nil || prior.LastStudiedAt == nil {
		return 1
	}

	today := dayOf(now)
	lastDay := dayOf(*prior.LastStudiedAt)

	switch {
	case lastDay.Equal(today):
		return max(prior.CurrentStreak, 1)
	case lastDay.Equal(today.AddDate(0, 0, -1)):
		return prior.CurrentStreak + 1
	default:
		return 1
	}
}

// LevelFor derives the displayed level from cumulative XP.
func LevelFor(xpPoints int) int {
	return xpPoints/xpPerLevel + 1
}

// RecordSession appends a StudySession row and updates the user's
// stats. A nil testScore means study mode, non-nil means test mode.
//
// The session insert and the stats update are two separate writes, in
// that order. If the stats update fails the session row stays behind;
// callers must not assume atomicity across the two.
func (p *Progress) RecordSession(userID UserID, setID string, cardsStudied int, testScore *float64) (*SessionResult, error) {
	now := time.Now()
	if p.Now != nil {
		now = p.Now()
	}

	xpEarned := xpFor(cardsStudied, testScore)

	correct := 0
	mode := model.ModeStudy
	if testScore != nil {
		mode = model.ModeTest
		correct = int(math.Round(*testScore * float64(cardsStudied)))
	}

	sessionID, err := NewID()
	if err != nil {
		return nil, err
	}

	err = p.DB.Create(&model.StudySession{
		ID:             sessionID,
		UserID:         string(userID),
		SetID:          setID,
		CardsStudied:   cardsStudied,
		CorrectAnswers: correct,
		XPEarned:       xpEarned,
		Mode:           mode,
		CreatedAt:      now,
	}).Error
	if err != nil {
		return nil, err
	}

	var prior model.UserStats
	err = p.DB.Where("user_id = ?", userID).First(&prior).Error

	if err == gorm.ErrRecordNotFound {
		// First-ever session: the streak is always 1, whatever the
		// state machine would say
		statsID, err := NewID()
		if err != nil {
			return nil, err
		}

		err = p.DB.Create(&model.UserStats{
			ID:            statsID,
			UserID:        string(userID),
			CardsStudied:  cardsStudied,
			XPPoints:      xpEarned,
			CurrentStreak: 1,
			LongestStreak: 1,
			LastStudiedAt: &now,
		}).Error
		if err != nil {
			return nil, err
		}

		return &SessionResult{SessionID: sessionID, XPEarned: xpEarned, Streak: 1}, nil
	}

	if err != nil {
		return nil, err
	}

	streak := nextStreak(&prior, now)
	longest := max(streak, prior.LongestStreak, 1)

	// Counters are incremented in SQL so two concurrent sessions never
	// double-count cards or XP. The streak columns stay last-writer-wins.
	err = p.DB.
		Model(model.UserStats{}).
		Where("user_id = ?", userID).
		Updates(map[string]any{
			"cards_studied":   gorm.Expr("cards_studied + ?", cardsStudied),
			"xp_points":       gorm.Expr("xp_points + ?", xpEarned),
			"current_streak":  streak,
			"longest_streak":  longest,
			"last_studied_at": now,
		}).
		Error
	if err != nil {
		return nil, err
	}

	return &SessionResult{SessionID: sessionID, XPEarned: xpEarned, Streak: streak}, nil
}
