package service

import "hoangtv/flashcard-api/model"

type Achievement struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// AchievementsFor returns the threshold achievements a user has earned.
// Purely derived from the stats row, nothing is persisted.
func AchievementsFor(stats model.UserStats) []Achievement {
	earned := []Achievement{}

	if stats.CardsStudied >= 10 {
		earned = append(earned, Achievement{1, "First Steps", "Study 10 cards", "🚀"})
	}
	if stats.CardsStudied >= 50 {
		earned = append(earned, Achievement{2, "Learning", "Study 50 cards", "📚"})
	}
	if stats.CardsStudied >= 100 {
		earned = append(earned, Achievement{3, "Scholar", "Study 100 cards", "🎓"})
	}
	if stats.CardsStudied >= 500 {
		earned = append(earned, Achievement{4, "Master", "Study 500 cards", "👑"})
	}
	if stats.CurrentStreak >= 3 {
		earned = append(earned, Achievement{5, "On Fire", "3 day streak", "🔥"})
	}
	if stats.CurrentStreak >= 7 {
		earned = append(earned, Achievement{6, "Unstoppable", "7 day streak", "⚡"})
	}
	if stats.LongestStreak >= 30 {
		earned = append(earned, Achievement{7, "Champion", "30 day streak", "🏆"})
	}
	if stats.XPPoints >= 1000 {
		earned = append(earned, Achievement{8, "XP Master", "Earn 1000 XP", "✨"})
	}

	return earned
}
