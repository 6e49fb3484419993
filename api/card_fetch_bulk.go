package api

import (
	"hoangtv/flashcard-api/internal/service"
	"hoangtv/flashcard-api/model"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) CardFetchBulk(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	setID := c.Param("id")
	if setID == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "No set ID provided",
			"requestID": requestID,
		})
		return
	}

	if _, err := a.Guard.AuthorizeMutation(service.UserID(userID), setID); err != nil {
		abortGuardError(c, err, requestID)
		return
	}

	cards := []model.Flashcard{}

	err := a.DB.
		Where("set_id = ?", setID).
		Order("created_at asc").
		Find(&cards).
		Error
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to load cards", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, cards)
}
