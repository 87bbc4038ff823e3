package middleware

import (
	"net/http"
	"strings"

	"kino/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Context keys set by JWTAuthCustomerMiddleware.
const (
	CustomerIDKey = "customerID"
	RoleKey       = "role"
	TokenKey      = "token"
)

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
}

// JWTAuthCustomerMiddleware accepts a signed, unexpired token whose hash is
// still live in the token store. Logged out tokens are rejected even before
// they expire.
func JWTAuthCustomerMiddleware(tokens utils.TokenStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}

		claims, err := utils.ParseClaims(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		live, err := tokens.Exists(c.Request.Context(), claims.Subject, utils.HashToken(tokenString))
		if err != nil {
			utils.GetLogger().Error("token store lookup failed", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "Authorization temporarily unavailable"})
			return
		}
		if !live {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token revoked or expired"})
			return
		}

		c.Set(CustomerIDKey, claims.Subject)
		c.Set(RoleKey, claims.Role)
		c.Set(TokenKey, tokenString)
		c.Next()
	}
}
