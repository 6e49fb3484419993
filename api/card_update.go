package api

import (
	"hoangtv/flashcard-api/internal/service"
	"hoangtv/flashcard-api/model"
	"hoangtv/flashcard-api/validators"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func (a *API) CardUpdate(c *gin.Context) {
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

	var data cardBody
	if err := c.ShouldBind(&data); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})
		return
	}

	if err := validators.CardValidator(data.Front, data.Back); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	if _, err := a.Guard.AuthorizeMutation(service.UserID(userID), setID); err != nil {
		abortGuardError(c, err, requestID)
		return
	}

	var card model.Flashcard

	err := a.DB.Where("id = ? AND set_id = ?", cardID, setID).First(&card).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
				"error":     "Card not found",
				"requestID": requestID,
			})
			return
		}

		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to load card", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	err = a.DB.
		Model(model.Flashcard{}).
		Where("id = ? AND set_id = ?", cardID, setID).
		Updates(map[string]any{
			"front":  data.Front,
			"back":   data.Back,
			"romaji": data.Romaji,
		}).
		Error
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to update card", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	card.Front = data.Front
	card.Back = data.Back
	card.Romaji = data.Romaji

	c.JSON(http.StatusOK, card)
}
