package middlewares

import (
	"net/http"
	"strings"

	"ringside/utils"

	"github.com/gin-gonic/gin"
)

// SubjectKey is the gin context key holding the authenticated subject id
const SubjectKey = "subjectId"

// AuthMiddleware verifies the Bearer access token and stores the subject id
// in the request context
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing Authorization token"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Authorization token format"})
			c.Abort()
			return
		}

		subject, tokenType, err := utils.ParseToken(parts[1], secret)
		if err != nil || tokenType != utils.TokenTypeAccess {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(SubjectKey, subject)
		c.Next()
	}
}
