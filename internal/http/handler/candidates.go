package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"atsapi/internal/model"
	"atsapi/internal/service"
	"atsapi/internal/validation"
)

// CreateCandidate validates and inserts a candidate, returning `{id}`.
func CreateCandidate(svc service.CandidateService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.CandidateIn
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

// ListCandidates returns every candidate verbatim.
func ListCandidates(svc service.CandidateService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		docs, err := svc.List(c.UserContext())
		if err != nil {
			return writeStoreError(c, err)
		}
		return c.JSON(docs)
	}
}

// UpdateCandidateStage moves a candidate to a new pipeline stage. The stage
// value is checked against the enum before any store call.
func UpdateCandidateStage(svc service.CandidateService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		var in model.StageUpdate
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "malformed request body")
		}
		if fields := validation.Struct(in); fields != nil {
			return writeValidationError(c, fields)
		}

		if err := svc.UpdateStage(c.UserContext(), id, in.Stage); err != nil {
			return writeStoreError(c, err)
		}
		return c.JSON(fiber.Map{"status": "ok"})
	}
}

// UploadResume stores a resume file (multipart field: file) and records it on
// the candidate document.
func UploadResume(svc service.CandidateService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}
		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}

		if err := svc.AttachResume(c.UserContext(), id, f, fh.Filename, ct, fh.Size); err != nil {
			if errors.Is(err, service.ErrStorageDisabled) {
				return writeError(c, fiber.StatusServiceUnavailable, "STORAGE_UNAVAILABLE", "resume storage not configured")
			}
			return writeStoreError(c, err)
		}
		return c.JSON(fiber.Map{
			"status":     "ok",
			"resume_url": "/api/candidates/" + id + "/resume",
		})
	}
}

// DownloadResume redirects to a short-lived presigned URL for the candidate's
// stored resume.
func DownloadResume(svc service.CandidateService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		url, err := svc.ResumeURL(c.UserContext(), id)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrStorageDisabled):
				return writeError(c, fiber.StatusServiceUnavailable, "STORAGE_UNAVAILABLE", "resume storage not configured")
			case errors.Is(err, service.ErrNoResume):
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "candidate has no resume on file")
			default:
				return writeStoreError(c, err)
			}
		}
		return c.Redirect(url, fiber.StatusFound)
	}
}
