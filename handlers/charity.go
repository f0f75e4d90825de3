// handlers/charity.go
package handlers

import (
	"charity-gaming-system/middleware"
	"charity-gaming-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupCharityRoutes(app *fiber.App, identity *services.IdentityClient, charityService *services.CharityService) {
	// Public: the charity list backs the registration form, before any session
	// exists.
	app.Get("/api/get_all_charities", func(c *fiber.Ctx) error {
		charities, err := charityService.List()
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(charities)
	})

	// Session-gated per route so the middleware never shadows the public
	// endpoints sharing the /api prefix.
	requireSession := middleware.SessionMiddleware(identity)

	app.Post("/api/set_charity", requireSession, func(c *fiber.Ctx) error {
		type Req struct {
			CharityName string `json:"charity_name"`
		}
		var req Req
		if err := c.BodyParser(&req); err != nil || req.CharityName == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "charity_name required"})
		}

		if err := charityService.SetForUser(middleware.CurrentSession(c), req.CharityName); err != nil {
			return fail(c, err)
		}
		return success(c)
	})

	app.Post("/api/add_charity", requireSession, func(c *fiber.Ctx) error {
		type Req struct {
			CharityName string `json:"charity_name"`
			Description string `json:"description"`
			Category    string `json:"category"`
			Location    string `json:"location"`
			Year        string `json:"year"`
		}
		var req Req
		if err := c.BodyParser(&req); err != nil || req.CharityName == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "charity_name required"})
		}

		if _, err := charityService.Add(req.CharityName, services.CharityInfo{
			Description:  req.Description,
			Category:     req.Category,
			Location:     req.Location,
			FoundingYear: req.Year,
		}); err != nil {
			return fail(c, err)
		}
		return success(c)
	})
}
