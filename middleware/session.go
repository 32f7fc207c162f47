package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tieubaoca/memobox-be/utils"
)

const SessionContextKey = "session"

// SessionMiddleware attaches session claims when a parsable bearer token is
// present. It never rejects a request: the auth layer is an offline
// emulation and every request belongs to the local user.
func SessionMiddleware(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		c.Next()
		return
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		c.Next()
		return
	}

	if claims, err := utils.ParseSessionToken(parts[1]); err == nil {
		c.Set(SessionContextKey, claims)
	}
	c.Next()
}
