package middleware

import (
	"net/http"

	"kino/utils"

	"github.com/gin-gonic/gin"
)

// AnonymousOnlyMiddleware turns away callers that present a live token, so
// signed in customers cannot register again.
func AnonymousOnlyMiddleware(tokens utils.TokenStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			c.Next()
			return
		}
		claims, err := utils.ParseClaims(tokenString)
		if err != nil {
			c.Next()
			return
		}
		if live, err := tokens.Exists(c.Request.Context(), claims.Subject, utils.HashToken(tokenString)); err == nil && live {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "You are already signed in"})
			return
		}
		c.Next()
	}
}
