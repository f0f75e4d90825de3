// handlers/respond.go
package handlers

import (
	"errors"

	"charity-gaming-system/services"

	"github.com/gofiber/fiber/v2"
)

// errorStatus maps service errors onto the API's status contract: bad
// credentials are 404 on the login/register path, everything else —
// validation, not-found, duplicates, bad tokens, provider trouble — is 400.
func errorStatus(err error) int {
	if errors.Is(err, services.ErrNotAuthenticated) {
		return fiber.StatusNotFound
	}
	return fiber.StatusBadRequest
}

func fail(c *fiber.Ctx, err error) error {
	return c.Status(errorStatus(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func success(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"success": true})
}
