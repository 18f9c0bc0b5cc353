package handler

import (
	"github.com/gofiber/fiber/v2"

	"atsapi/internal/model"
	"atsapi/internal/service"
	"atsapi/internal/validation"
)

// CreateMessage validates and inserts a message, returning `{id}`.
func CreateMessage(svc service.MessageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.MessageIn
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "malformed request body")
		}
		if fields := validation.Struct(in); fields != nil {
			return writeValidationError(c, fields)
		}

		id, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return writeStoreError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
	}
}

// ListMessages returns every message verbatim.
func ListMessages(svc service.MessageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		docs, err := svc.List(c.UserContext())
		if err != nil {
			return writeStoreError(c, err)
		}
		return c.JSON(docs)
	}
}
