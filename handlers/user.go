// handlers/user.go
package handlers

import (
	"charity-gaming-system/middleware"
	"charity-gaming-system/models"
	"charity-gaming-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App, identity *services.IdentityClient, userService *services.UserService) {
	app.Get("/api/get_user_data", middleware.SessionMiddleware(identity), func(c *fiber.Ctx) error {
		game := unescapeGameName(c.Query("game", models.GameLeagueOfLegends))

		profile, err := userService.Profile(middleware.CurrentSession(c), game)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(profile)
	})
}
