package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"atsapi/internal/model"
	"atsapi/internal/service"
	"atsapi/internal/validation"
)

// CreateInterview validates and inserts an interview, returning `{id}`.
func CreateInterview(svc service.InterviewService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.InterviewIn
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

// ListInterviews returns every interview verbatim.
func ListInterviews(svc service.InterviewService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		docs, err := svc.List(c.UserContext())
		if err != nil {
			return writeStoreError(c, err)
		}
		return c.JSON(docs)
	}
}

// CreateInterviewFeedback records feedback for the interview named in the
// path; the path id wins over any interview_id carried in the body.
func CreateInterviewFeedback(svc service.InterviewService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		var in model.FeedbackIn
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "malformed request body")
		}
		if fields := validation.Struct(in); fields != nil {
			return writeValidationError(c, fields)
		}

		fbID, err := svc.AddFeedback(c.UserContext(), id, in)
		if err != nil {
			return writeStoreError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": fbID})
	}
}
