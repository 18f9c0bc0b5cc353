package handler

import (
	"github.com/gofiber/fiber/v2"

	"atsapi/internal/service"
)

// SeedDemoData loads the demo fixtures. Safe to call repeatedly; collections
// that already hold data are left alone.
func SeedDemoData(svc service.Seeder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Seed(c.UserContext()); err != nil {
			return writeStoreError(c, err)
		}
		return c.JSON(fiber.Map{"status": "ok"})
	}
}
