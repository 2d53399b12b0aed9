package middleware

import (
	"net/http"
	"strings"

	"library-backend/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuth guards routes behind a bearer token and exposes the user id from
// the claims.
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, utils.Response{Message: "Authorization header missing"})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			c.JSON(http.StatusUnauthorized, utils.Response{Message: "Invalid authorization format, expected: Bearer <token>"})
			c.Abort()
			return
		}

		claims, err := utils.DecodeJWT(strings.TrimSpace(parts[1]))
		if err != nil {
			c.JSON(http.StatusUnauthorized, utils.Response{Message: "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set("user_id", claims["user_id"])
		c.Next()
	}
}
