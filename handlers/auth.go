// handlers/auth.go
package handlers

import (
	"charity-gaming-system/middleware"
	"charity-gaming-system/services"

	"github.com/gofiber/fiber/v2"
)

// sessionPayload is what login and register hand back. The token travels with
// every later request — sessions live in the request, not in the process.
func sessionPayload(session *services.Session) fiber.Map {
	return fiber.Map{
		"success":       true,
		"id_token":      session.IDToken,
		"refresh_token": session.RefreshToken,
		"expires_in":    session.ExpiresIn,
	}
}

func SetupAuthRoutes(app *fiber.App, identity *services.IdentityClient, userService *services.UserService) {
	app.Post("/api/login", func(c *fiber.Ctx) error {
		type Req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		var req Req
		if err := c.BodyParser(&req); err != nil || req.Email == "" || req.Password == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "email and password required"})
		}

		session, err := identity.SignIn(req.Email, req.Password)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(sessionPayload(session))
	})

	app.Post("/api/register", func(c *fiber.Ctx) error {
		type Req struct {
			Email           string              `json:"email"`
			Password        string              `json:"password"`
			ConfirmPassword string              `json:"confirmpassword"`
			GamerHandles    []map[string]string `json:"gamerhandles"`
			Charity         string              `json:"charity"`
			DisplayName     string              `json:"display_name"`
		}
		var req Req
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON"})
		}

		// The form sends handles as a list of {game: handle} objects.
		var handles []services.GamerHandle
		for _, pair := range req.GamerHandles {
			for game, handle := range pair {
				handles = append(handles, services.GamerHandle{Game: game, Handle: handle})
			}
		}

		_, session, err := userService.Register(services.RegisterRequest{
			Email:           req.Email,
			Password:        req.Password,
			ConfirmPassword: req.ConfirmPassword,
			DisplayName:     req.DisplayName,
			Charity:         req.Charity,
			Handles:         handles,
		})
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(sessionPayload(session))
	})

	app.Get("/api/is_user_logged_in", func(c *fiber.Ctx) error {
		token := middleware.BearerToken(c)
		if token == "" {
			return c.JSON(fiber.Map{"logged_in": false})
		}
		if _, err := identity.VerifyToken(token); err != nil {
			return c.JSON(fiber.Map{"logged_in": false})
		}
		return c.JSON(fiber.Map{"logged_in": true})
	})

	app.Get("/api/logout", middleware.SessionMiddleware(identity), func(c *fiber.Ctx) error {
		session := middleware.CurrentSession(c)
		if err := identity.Revoke(session.IDToken); err != nil {
			return fail(c, err)
		}
		return success(c)
	})
}
