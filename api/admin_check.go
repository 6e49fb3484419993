package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminCheck sits behind the admin middleware, so reaching it at all
// means the caller has the admin role.
func (a *API) AdminCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"admin": true})
}
