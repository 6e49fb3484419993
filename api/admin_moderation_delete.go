package api

import (
	"hoangtv/flashcard-api/model"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AdminModerationDelete removes a set and its cards outright,
// regardless of who owns it.
func (a *API) AdminModerationDelete(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	setID := c.Param("id")
	if setID == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "No set ID provided",
			"requestID": requestID,
		})
		return
	}

	var set model.FlashcardSet
	if err := a.DB.Where("id = ?", setID).First(&set).Error; err != nil {
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

		zap.L().Error("Failed to load set", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	err := a.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("set_id = ?", setID).Delete(model.Flashcard{}).Error; err != nil {
			return err
		}

		return tx.Where("id = ?", setID).Delete(model.FlashcardSet{}).Error
	})
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to delete set", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	zap.L().Info("Removed set", zap.String("setID", setID), zap.String("requestID", requestID))

	c.JSON(http.StatusOK, gin.H{"success": true})
}
