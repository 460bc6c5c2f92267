package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"streamify/backend/pkg/jwt"
)

// CookieName is the session cookie the SPA authenticates with.
const CookieName = "jwt"

// ContextUserID is the gin context key under which the caller's id is stored.
const ContextUserID = "userID"

// Middleware resolves the calling user from the session cookie, falling back
// to a Bearer header, and aborts with 401 when neither yields a valid token.
func Middleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(CookieName)
		if err != nil || tokenString == "" {
			authHeader := c.GetHeader("Authorization")
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				tokenString = parts[1]
			}
		}
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized - no token provided"})
			return
		}

		userID, err := jwt.ParseToken(tokenString, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized - invalid token"})
			return
		}

		c.Set(ContextUserID, userID)
		c.Next()
	}
}
