package handler

import (
	"github.com/gofiber/fiber/v2"

	"atsapi/internal/service"
)

// GetMetrics returns the dashboard headline numbers.
func GetMetrics(svc service.MetricsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		m, err := svc.Metrics(c.UserContext())
		if err != nil {
			return writeStoreError(c, err)
		}
		return c.JSON(m)
	}
}

// GetAnalytics returns the live funnel plus the demo placeholder stats.
func GetAnalytics(svc service.MetricsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		a, err := svc.Analytics(c.UserContext())
		if err != nil {
			return writeStoreError(c, err)
		}
		return c.JSON(a)
	}
}
