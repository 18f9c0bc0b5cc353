package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"atsapi/internal/docstore"
)

// writeStoreError maps adapter sentinel errors onto the error taxonomy.
func writeStoreError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, docstore.ErrUnavailable):
		return writeError(c, fiber.StatusInternalServerError, "STORE_UNAVAILABLE", "document store not available")
	case errors.Is(err, docstore.ErrNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "resource not found")
	default:
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}
