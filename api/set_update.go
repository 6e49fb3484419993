package api

import (
	"hoangtv/flashcard-api/internal/service"
	"hoangtv/flashcard-api/model"
	"hoangtv/flashcard-api/validators"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) SetUpdate(c *gin.Context) {
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

	var data setBody
	if err := c.ShouldBind(&data); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})
		return
	}

	if err := validators.SetTitleValidator(data.Title); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	set, err := a.Guard.AuthorizeMutation(service.UserID(userID), setID)
	if err != nil {
		abortGuardError(c, err, requestID)
		return
	}

	err = a.DB.
		Model(model.FlashcardSet{}).
		Where("id = ?", setID).
		Updates(map[string]any{
			"title":       data.Title,
			"description": data.Description,
			"subject":     data.Subject,
			"is_public":   data.IsPublic,
		}).
		Error
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to update set", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	set.Title = data.Title
	set.Description = data.Description
	set.Subject = data.Subject
	set.IsPublic = data.IsPublic

	c.JSON(http.StatusOK, set)
}
