package middlewares

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// UserContext resolves the :userID path param and stores it as "userID" (uint).
func UserContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("userID"), 10, 32)
		if err != nil || id == 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
			return
		}
		c.Set("userID", uint(id))
		c.Next()
	}
}
