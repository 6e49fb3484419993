package api

import (
	"hoangtv/flashcard-api/model"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminModerationUnpublish forces a set private without touching its
// contents. The owner keeps the set.
func (a *API) AdminModerationUnpublish(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	setID := c.Param("id")
	if setID == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "No set ID provided",
			"requestID": requestID,
		})
		return
	}

	res := a.DB.
		Model(model.FlashcardSet{}).
		Where("id = ?", setID).
		Update("is_public", false)
	if res.Error != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to unpublish set", zap.Error(res.Error), zap.String("requestID", requestID))
		return
	}

	if res.RowsAffected == 0 {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
			"error":     "Set not found",
			"requestID": requestID,
		})
		return
	}

	zap.L().Info("Unpublished set", zap.String("setID", setID), zap.String("requestID", requestID))

	c.JSON(http.StatusOK, gin.H{"success": true})
}
