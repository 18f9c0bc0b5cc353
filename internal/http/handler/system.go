package handler

import (
	"context"
	"database/sql"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"

	"atsapi/internal/docstore"
	"atsapi/internal/model"
)

// Root identifies the service.
func Root() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"name": "LevelUp ATS API", "status": "ok"})
	}
}

// Hello is a trivial smoke endpoint for frontend connectivity checks.
func Hello() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Hello from LevelUp ATS backend!"})
	}
}

// TestDiagnostics reports backend/database connectivity in one glance. db may
// be nil when the service runs without a store.
func TestDiagnostics(db *sql.DB, store docstore.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res := fiber.Map{
			"backend":           "running",
			"database":          "not available",
			"database_url":      envIndicator("DATABASE_URL"),
			"database_name":     envIndicator("DATABASE_NAME"),
			"connection_status": "not connected",
			"collections":       []string{},
		}

		if db == nil {
			return c.JSON(res)
		}

		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			res["database"] = "available but not responding"
			return c.JSON(res)
		}

		res["database"] = "connected"
		res["connection_status"] = "connected"
		if cols, err := store.Collections(ctx); err == nil {
			res["collections"] = cols
		}
		return c.JSON(res)
	}
}

func envIndicator(key string) string {
	if os.Getenv(key) == "" {
		return "not set"
	}
	return "set"
}

// SchemaInfo lists the known collection names. Static by construction; the
// model package is the single source of truth.
func SchemaInfo() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"collections": model.Collections()})
	}
}

// HealthCheck reports readiness by pinging the database.
func HealthCheck(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if db == nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe answers as long as the process serves requests.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}
