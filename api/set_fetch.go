package api

import (
	"hoangtv/flashcard-api/internal/service"
	"hoangtv/flashcard-api/model"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type setDetail struct {
	model.FlashcardSet
	UserEmail string `json:"user_email"`
}

func (a *API) SetFetch(c *gin.Context) {
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

	set, err := a.Guard.AuthorizeRead(service.UserID(userID), setID)
	if err != nil {
		abortGuardError(c, err, requestID)
		return
	}

	var owner model.User
	err = a.DB.
		Select("email").
		Where("id = ?", set.UserID).
		Find(&owner).
		Error
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to load set author", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, setDetail{FlashcardSet: *set, UserEmail: owner.Email})
}
