package api

import (
	"hoangtv/flashcard-api/model"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AdminUserDelete deactivates an account: the user row plus their
// stats, sessions, sets and cards all go in one transaction. This is
// the only path that may shrink a user's cumulative stats.
func (a *API) AdminUserDelete(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	targetID := c.Param("id")
	if targetID == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "No user ID provided",
			"requestID": requestID,
		})
		return
	}

	var target model.User
	if err := a.DB.Where("id = ?", targetID).First(&target).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
				"error":     "User not found",
				"requestID": requestID,
			})
			return
		}

		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to load user", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	err := a.DB.Transaction(func(tx *gorm.DB) error {
		var setIDs []string
		err := tx.Model(model.FlashcardSet{}).
			Where("user_id = ?", targetID).
			Pluck("id", &setIDs).
			Error
		if err != nil {
			return err
		}

		if len(setIDs) > 0 {
			if err := tx.Where("set_id IN ?", setIDs).Delete(model.Flashcard{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("user_id = ?", targetID).Delete(model.FlashcardSet{}).Error; err != nil {
			return err
		}

		if err := tx.Where("user_id = ?", targetID).Delete(model.StudySession{}).Error; err != nil {
			return err
		}

		if err := tx.Where("user_id = ?", targetID).Delete(model.UserStats{}).Error; err != nil {
			return err
		}

		return tx.Where("id = ?", targetID).Delete(model.User{}).Error
	})
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to deactivate user", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	zap.L().Info("Deactivated user", zap.String("target", targetID), zap.String("requestID", requestID))

	c.JSON(http.StatusOK, gin.H{"success": true})
}
