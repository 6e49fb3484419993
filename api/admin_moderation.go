package api

import (
	"hoangtv/flashcard-api/model"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminModeration lists every public set for review.
func (a *API) AdminModeration(c *gin.Context) {
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

		zap.L().Error("Failed to load public sets", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{"sets": sets})
}
