package api

import (
	"hoangtv/flashcard-api/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) LibraryCopy(c *gin.Context) {
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

	newSetID, err := a.Copier.CopySet(service.UserID(userID), setID)
	if err != nil {
		abortGuardError(c, err, requestID)
		return
	}

	zap.L().Info("Copied library set",
		zap.String("source", setID),
		zap.String("copy", newSetID),
		zap.String("requestID", requestID))

	c.JSON(http.StatusOK, gin.H{
		"newSetId": newSetID,
	})
}
