package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gobodhi/tour-cms/internal/models"
	"github.com/gobodhi/tour-cms/internal/services"
	"github.com/gobodhi/tour-cms/internal/utils"
	"gorm.io/gorm"
)

// RequireAuth validates the session cookie and loads the user into the
// request context. Every failure looks the same to the caller.
func RequireAuth(db *gorm.DB, secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cookie := c.Cookies(services.SessionCookie)
		if cookie == "" {
			return utils.UnauthorizedResponse(c)
		}

		userID, err := services.ParseSessionToken(secret, cookie)
		if err != nil {
			return utils.UnauthorizedResponse(c)
		}

		user, err := services.GetUser(db, userID)
		if err != nil {
			return utils.UnauthorizedResponse(c)
		}

		c.Locals("user", user)
		return c.Next()
	}
}

// CurrentUser returns the authenticated user set by RequireAuth.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals("user").(*models.User)
	return user
}
