package middleware

import (
	"tourguide/utils"

	"github.com/gin-gonic/gin"
)

// RequireAdmin must run after JWTAuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := GetPrincipal(c)
		if !ok {
			abortWith(c, utils.NewAuthenticationError("Authentication required"))
			return
		}
		if !p.IsAdmin() {
			abortWith(c, utils.NewForbiddenError("Admin access required"))
			return
		}
		c.Next()
	}
}
