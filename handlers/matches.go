// handlers/matches.go
package handlers

import (
	"charity-gaming-system/middleware"
	"charity-gaming-system/models"
	"charity-gaming-system/services"

	"github.com/gofiber/fiber/v2"
)

// recentMatchCount is how many matches one stats pull covers.
const recentMatchCount = 5

// scoringFields are the participant stats the scoring rule consumes.
var scoringFields = []string{"kills", "deaths", "assists", "win"}

// toMatchStats converts one raw participant stat line from the gateway into a
// typed scoring input. The gateway already collapsed missing values to 0.
func toMatchStats(raw map[string]any) services.MatchStats {
	asInt := func(field string) int {
		if f, ok := raw[field].(float64); ok {
			return int(f)
		}
		return 0
	}
	win, _ := raw["win"].(bool)
	return services.MatchStats{
		Kills:   asInt("kills"),
		Deaths:  asInt("deaths"),
		Assists: asInt("assists"),
		Win:     win,
	}
}

func SetupMatchRoutes(app *fiber.App, identity *services.IdentityClient, userService *services.UserService, matchService *services.MatchService, riot *services.RiotClient) {
	// Pulls the user's recent matches from the stats provider, ingests the new
	// ones (idempotently), and returns the raw per-match stats.
	app.Get("/api/get_user_league_games", middleware.SessionMiddleware(identity), func(c *fiber.Ctx) error {
		session := middleware.CurrentSession(c)

		handle, region, err := userService.HandleAndRegion(session, models.GameLeagueOfLegends)
		if err != nil {
			return fail(c, err)
		}

		puuid, err := riot.ResolvePlayerID(handle, region)
		if err != nil {
			return fail(c, err)
		}

		matchIDs, err := riot.RecentMatchIDs(puuid, region, recentMatchCount)
		if err != nil {
			return fail(c, err)
		}

		stats, err := riot.MatchStats(puuid, region, matchIDs, scoringFields)
		if err != nil {
			return fail(c, err)
		}

		scored := make(map[string]services.MatchStats, len(stats))
		for matchID, raw := range stats {
			scored[matchID] = toMatchStats(raw)
		}
		if _, err := matchService.Ingest(handle, scored); err != nil {
			return fail(c, err)
		}

		return c.JSON(stats)
	})
}
