package api

import (
	"hoangtv/flashcard-api/model"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// librarySet is the listing row shape: a set joined with its author's
// email. Kept flat so gorm can scan the JOIN result directly.
type librarySet struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Subject     string    `json:"subject"`
	IsPublic    bool      `json:"is_public"`
	CreatedAt   time.Time `json:"created_at"`
	UserEmail   string    `json:"user_email"`
}

// LibraryFetchBulk lists every public set with its author, newest
// first. No identity required; responses are cached briefly.
func (a *API) LibraryFetchBulk(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	sets := []librarySet{}

	err := a.DB.
		Model(model.FlashcardSet{}).
		Select("flashcard_sets.*, users.email AS user_email").
		Joins("LEFT JOIN users ON users.id = flashcard_sets.user_id").
		Where("flashcard_sets.is_public = ?", true).
		Order("flashcard_sets.created_at desc").
		Find(&sets).
		Error
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to load library", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, sets)
}
