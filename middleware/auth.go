package middleware

import (
	"strings"

	"tourguide/models"
	"tourguide/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	principalKey = "principal"
	tokenKey     = "token"
)

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

// JWTAuthMiddleware resolves the bearer token into a models.Principal.
// Revoked tokens are rejected when tokens is non-nil.
func JWTAuthMiddleware(tokens *utils.TokenStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			abortWith(c, utils.NewAuthenticationError("Missing or invalid Authorization header"))
			return
		}

		claims, err := utils.ParseToken(tokenString)
		if err != nil {
			abortWith(c, utils.NewAuthenticationError("Invalid or expired token"))
			return
		}

		revoked, err := tokens.IsRevoked(c.Request.Context(), tokenString)
		if err != nil {
			utils.GetLogger().Error("Token revocation check failed", zap.Error(err))
			abortWith(c, utils.NewStoreError("check token", err))
			return
		}
		if revoked {
			abortWith(c, utils.NewAuthenticationError("Token has been revoked"))
			return
		}

		c.Set(principalKey, models.Principal{ID: claims.Subject, Role: models.Role(claims.Role)})
		c.Set(tokenKey, tokenString)
		c.Next()
	}
}

// GetPrincipal returns the identity set by JWTAuthMiddleware.
func GetPrincipal(c *gin.Context) (models.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return models.Principal{}, false
	}
	p, ok := v.(models.Principal)
	return p, ok && p.ID != ""
}

// GetToken returns the raw bearer token accepted for this request.
func GetToken(c *gin.Context) string {
	return c.GetString(tokenKey)
}

func abortWith(c *gin.Context, err error) {
	utils.RespondError(c, err)
	c.Abort()
}
