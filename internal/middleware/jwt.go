package middleware

import (
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"bet_assist/internal/utils" // JWT utility functions

	"github.com/gin-gonic/gin" // Gin web framework
)

const userIDKey = "userID" // Gin context key holding the authenticated user

// JWTAuthMiddleware validates the bearer token and stores the user id in the context
func JWTAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		claims, err := utils.ParseJWT(strings.TrimPrefix(authHeader, "Bearer "), secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		c.Set(userIDKey, claims.UserID) // Store userID in context
		c.Next()
	}
}

// UserID returns the user authenticated by JWTAuthMiddleware
func UserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok && id != 0
}
