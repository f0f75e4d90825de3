// middleware/auth.go
package middleware

import (
	"log"
	"strings"

	"charity-gaming-system/services"

	"github.com/gofiber/fiber/v2"
)

// SessionLocal is the fiber locals key the verified session is stored under.
const SessionLocal = "session"

// BearerToken pulls the ID token out of the Authorization header. Returns ""
// when no bearer credentials were sent.
func BearerToken(c *fiber.Ctx) string {
	auth := c.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	}
	return ""
}

// SessionMiddleware verifies the bearer token with the identity provider and
// attaches the resulting request-scoped session. Protected handlers run only
// after this succeeds, so they never have to re-check and never see a half
// authenticated request.
func SessionMiddleware(identity *services.IdentityClient) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := BearerToken(c)
		if token == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "missing bearer token",
			})
		}

		uid, err := identity.VerifyToken(token)
		if err != nil {
			log.Printf("session rejected on %s: %v", c.Path(), err)
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "session token invalid",
			})
		}

		c.Locals(SessionLocal, services.Session{
			UserID:  uid,
			IDToken: token,
		})
		return c.Next()
	}
}

// CurrentSession returns the session placed by SessionMiddleware.
func CurrentSession(c *fiber.Ctx) services.Session {
	session, _ := c.Locals(SessionLocal).(services.Session)
	return session
}
