package api

import (
	"hoangtv/flashcard-api/model"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type adminUser struct {
	model.User
	Stats model.UserStats `json:"stats"`
}

func (a *API) AdminUsers(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	q := a.DB.Model(model.User{}).Order("created_at desc")

	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		q = q.Where("email LIKE ? OR username LIKE ?", like, like)
	}

	users := []model.User{}
	if err := q.Find(&users).Error; err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to load users", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	out := make([]adminUser, 0, len(users))
	for _, u := range users {
		var stats model.UserStats
		err := a.DB.Where("user_id = ?", u.ID).First(&stats).Error
		if err != nil && err != gorm.ErrRecordNotFound {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to load user stats", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		out = append(out, adminUser{User: u, Stats: stats})
	}

	c.JSON(http.StatusOK, gin.H{"users": out})
}
