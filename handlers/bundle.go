package handlers

import (
	"tourguide/middleware"
	"tourguide/models"
	"tourguide/utils"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the endpoint handlers and what the routes need to guard them.
type HandlerBundle struct {
	Tokens *utils.TokenStore

	Bookings *BookingHandler
	Auth     *AuthHandler
	Catalog  *CatalogHandler
	Contact  *ContactHandler
	Health   *HealthHandler
}

// requirePrincipal writes a 401 and returns false when the request has no identity.
func requirePrincipal(c *gin.Context) (models.Principal, bool) {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.RespondError(c, utils.NewAuthenticationError("Authentication required"))
	}
	return p, ok
}

// bindJSON decodes the body into dst, writing a 400 on failure.
func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		utils.RespondError(c, utils.NewValidationError("Invalid request body", map[string]string{"body": err.Error()}))
		return false
	}
	return true
}
