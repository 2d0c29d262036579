package middlewares

import (
	"net/http"
	"strings"

	"github.com/DANIELXXOMG2/DinamicBarProyect-sub000/utils"

	"github.com/gin-gonic/gin"
)

func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "missing token"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := utils.VerifyToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid token"})
			c.Abort()
			return
		}

		// jwt numbers decode as float64
		if id, ok := claims["user_id"].(float64); ok {
			c.Set("user_id", uint(id))
		}
		c.Set("username", claims["username"])
		c.Set("role", claims["role"])
		c.Next()
	}
}

// RequireRole guards a route group; the role claim is validated
// server-side on every request, never trusted from the client.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, ok := c.Get("role")
		if !ok || v != role {
			c.JSON(http.StatusForbidden, gin.H{"message": "insufficient role"})
			c.Abort()
			return
		}
		c.Next()
	}
}
