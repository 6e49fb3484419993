package api

import (
	"hoangtv/flashcard-api/internal/service"
	"hoangtv/flashcard-api/model"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type statsResponse struct {
	model.UserStats
	Level int `json:"level"`
}

// StatsFetch returns the caller's cumulative stats. A user who never
// recorded a session gets zeroed values, not an error.
func (a *API) StatsFetch(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	var stats model.UserStats

	err := a.DB.Where("user_id = ?", userID).First(&stats).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to load user stats", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, statsResponse{
		UserStats: stats,
		Level:     service.LevelFor(stats.XPPoints),
	})
}
