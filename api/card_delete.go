package api

import (
	"hoangtv/flashcard-api/internal/service"
	"hoangtv/flashcard-api/model"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) CardDelete(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	setID := c.Param("id")
	cardID := c.Param("cardId")
	if setID == "" || cardID == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Set ID and card ID are required",
			"requestID": requestID,
		})
		return
	}

	if _, err := a.Guard.AuthorizeMutation(service.UserID(userID), setID); err != nil {
		abortGuardError(c, err, requestID)
		return
	}

	err := a.DB.
		Where("id = ? AND set_id = ?", cardID, setID).
		Delete(model.Flashcard{}).
		Error
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to delete card", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
