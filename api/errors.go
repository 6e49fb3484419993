package api

import (
	"errors"
	"hoangtv/flashcard-api/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// abortGuardError maps service errors onto the response taxonomy:
// missing entity -> 404, ownership mismatch -> 403, anything else is an
// opaque 500.
func abortGuardError(c *gin.Context, err error, requestID string) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
			"error":     "Set not found",
			"requestID": requestID,
		})
	case errors.Is(err, service.ErrForbidden):
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error":     "You don't own this set",
			"requestID": requestID,
		})
	default:
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Storage failure", zap.Error(err), zap.String("requestID", requestID))
	}
}
