package api

import (
	"hoangtv/flashcard-api/internal/service"
	"hoangtv/flashcard-api/model"
	"hoangtv/flashcard-api/validators"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type cardBody struct {
	Front  string `json:"front"`
	Back   string `json:"back"`
	Romaji string `json:"romaji"`
}

func (a *API) CardCreate(c *gin.Context) {
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

	cardID, err := service.NewID()
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to generate card ID", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	card := model.Flashcard{
		ID:        cardID,
		SetID:     setID,
		Front:     data.Front,
		Back:      data.Back,
		Romaji:    data.Romaji,
		CreatedAt: time.Now(),
	}

	if err := a.DB.Create(&card).Error; err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create card", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusCreated, card)
}
