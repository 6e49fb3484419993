package api

import (
	"hoangtv/flashcard-api/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type sessionBody struct {
	SetID        string `json:"setId"`
	CardsStudied int    `json:"cardsStudied"`

	// nil means study mode, any value (including 0) means test mode
	TestScore *float64 `json:"testScore"`
}

func (a *API) SessionRecord(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	var data sessionBody
	if err := c.ShouldBind(&data); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})
		return
	}

	if data.SetID == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "No set ID provided",
			"requestID": requestID,
		})
		return
	}

	if data.CardsStudied < 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "cardsStudied can't be negative",
			"requestID": requestID,
		})
		return
	}

	if data.TestScore != nil && (*data.TestScore < 0 || *data.TestScore > 1) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "testScore must be between 0 and 1",
			"requestID": requestID,
		})
		return
	}

	// The set has to be studyable by the caller: their own, or public
	if _, err := a.Guard.AuthorizeRead(service.UserID(userID), data.SetID); err != nil {
		abortGuardError(c, err, requestID)
		return
	}

	result, err := a.Progress.RecordSession(service.UserID(userID), data.SetID, data.CardsStudied, data.TestScore)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Failed to track session",
			"requestID": requestID,
		})

		zap.L().Error("Failed to record study session", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"xpEarned":  result.XPEarned,
		"streak":    result.Streak,
		"sessionId": result.SessionID,
	})
}
