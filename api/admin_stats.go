package api

import (
	"hoangtv/flashcard-api/model"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) AdminStats(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	counts := map[string]int64{}

	for name, m := range map[string]any{
		"users":    model.User{},
		"sets":     model.FlashcardSet{},
		"cards":    model.Flashcard{},
		"sessions": model.StudySession{},
	} {
		var n int64
		if err := a.DB.Model(m).Count(&n).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to count rows", zap.String("table", name), zap.Error(err), zap.String("requestID", requestID))
			return
		}
		counts[name] = n
	}

	c.JSON(http.StatusOK, counts)
}
