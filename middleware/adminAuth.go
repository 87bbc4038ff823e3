package middleware

import (
	"net/http"

	"kino/utils"

	"github.com/gin-gonic/gin"
)

// AdminOnlyMiddleware must run after JWTAuthCustomerMiddleware.
func AdminOnlyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(RoleKey) != utils.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}
