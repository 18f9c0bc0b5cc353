package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"atsapi/internal/model"
	"atsapi/internal/service"
	"atsapi/internal/validation"
)

// CreateOffer validates and inserts an offer, returning `{id}`.
func CreateOffer(svc service.OfferService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.OfferIn
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

// ListOffers returns every offer verbatim.
func ListOffers(svc service.OfferService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		docs, err := svc.List(c.UserContext())
		if err != nil {
			return writeStoreError(c, err)
		}
		return c.JSON(docs)
	}
}

// UpdateOfferStatus moves an offer to a new status. The value is checked
// against the enum before any store call.
func UpdateOfferStatus(svc service.OfferService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		var in model.OfferStatusUpdate
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "malformed request body")
		}
		if fields := validation.Struct(in); fields != nil {
			return writeValidationError(c, fields)
		}

		if err := svc.UpdateStatus(c.UserContext(), id, in.Status); err != nil {
			return writeStoreError(c, err)
		}
		return c.JSON(fiber.Map{"status": "ok"})
	}
}
