package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ownerKey is the gin context key holding the authenticated owner id.
const ownerKey = "owner"

// Middleware validates the Authorization header and stores the owner id in
// the request context. Requests without a valid bearer token never reach
// the task handlers.
func Middleware(tokens *Tokens) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authorization header required"})
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid Authorization header"})
			return
		}
		userID, err := tokens.Parse(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
			return
		}
		c.Set(ownerKey, userID)
		c.Next()
	}
}

// Owner returns the authenticated owner id set by Middleware.
func Owner(c *gin.Context) string {
	return c.GetString(ownerKey)
}
