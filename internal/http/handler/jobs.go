package handler

import (
	"github.com/gofiber/fiber/v2"

	"atsapi/internal/model"
	"atsapi/internal/service"
	"atsapi/internal/validation"
)

// CreateJob validates and inserts a job posting, returning `{id}`.
func CreateJob(svc service.JobService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.JobIn
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

// ListJobs returns every job posting verbatim.
func ListJobs(svc service.JobService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		docs, err := svc.List(c.UserContext())
		if err != nil {
			return writeStoreError(c, err)
		}
		return c.JSON(docs)
	}
}
