package api

import (
	"hoangtv/flashcard-api/model"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// LibraryFetch returns one public set and its cards. Private sets are
// indistinguishable from missing ones here.
func (a *API) LibraryFetch(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	setID := c.Param("id")
	if setID == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "No set ID provided",
			"requestID": requestID,
		})
		return
	}

	var set librarySet

	err := a.DB.
		Model(model.FlashcardSet{}).
		Select("flashcard_sets.*, users.email AS user_email").
		Joins("JOIN users ON users.id = flashcard_sets.user_id").
		Where("flashcard_sets.id = ? AND flashcard_sets.is_public = ?", setID, true).
		First(&set).
		Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
				"error":     "Set not found",
				"requestID": requestID,
			})
			return
		}

		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to load library set", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	cards := []model.Flashcard{}

	err = a.DB.
		Where("set_id = ?", setID).
		Order("created_at asc").
		Find(&cards).
		Error
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to load library cards", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"set":   set,
		"cards": cards,
	})
}
