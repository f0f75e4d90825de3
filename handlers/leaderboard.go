// handlers/leaderboard.go
package handlers

import (
	"strings"

	"charity-gaming-system/models"
	"charity-gaming-system/services"

	"github.com/gofiber/fiber/v2"
)

// unescapeGameName turns the URL form ("League_of_Legends") back into the
// stored game name.
func unescapeGameName(raw string) string {
	return strings.ReplaceAll(raw, "_", " ")
}

func SetupLeaderboardRoutes(app *fiber.App, leaderboardService *services.LeaderboardService) {
	app.Get("/api/get_leaderboard", func(c *fiber.Ctx) error {
		game := unescapeGameName(c.Query("game", models.GameLeagueOfLegends))
		scope := c.Query("num_of_players", "complete")

		entries, err := leaderboardService.Leaderboard(game, scope)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(entries)
	})

	app.Get("/api/get_global_leaderboard", func(c *fiber.Ctx) error {
		entries, err := leaderboardService.Global()
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(entries)
	})
}
