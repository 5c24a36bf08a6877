package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	usercontroller "github.com/brightpage/brightpage/internal/db/controller/user"
	"github.com/brightpage/brightpage/internal/db/models"
	"github.com/brightpage/brightpage/internal/web/session"
)

// localsUserKey is the fiber Locals key holding the authenticated user.
const localsUserKey = "CurrentUser"

// ResolveSession returns middleware that resolves the session cookie once per
// request and stores the authenticated user in fiber Locals. Requests without
// a valid session pass through anonymously; gating is done by RequireAdmin.
func ResolveSession(store *session.Store, db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionID := c.Cookies(session.CookieName)
		if sessionID == "" {
			return c.Next()
		}

		data, err := store.Read(sessionID)
		if err != nil {
			return c.Next()
		}

		u, err := usercontroller.GetByID(db, data.UserID)
		if err != nil {
			return c.Next()
		}

		// deactivated accounts keep their cookie but lose access
		if !u.Active {
			return c.Next()
		}

		c.Locals(localsUserKey, u)

		return c.Next()
	}
}

// RequireAdmin returns middleware that rejects requests without an
// authenticated session before any handler or persistence call runs.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if CurrentUser(c) == nil {
			log.Debug().Str("path", c.Path()).Msg("unauthenticated request to admin route")

			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized",
			})
		}

		return c.Next()
	}
}

// CurrentUser returns the authenticated user for this request, or nil.
func CurrentUser(c *fiber.Ctx) *models.User {
	u, ok := c.Locals(localsUserKey).(*models.User)
	if !ok {
		return nil
	}

	return u
}
