package handlers

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/helpinghands/site-backend/internal/dto"
	"github.com/helpinghands/site-backend/internal/services"
)

type ContentHandler struct {
	contentService *services.ContentService
}

func NewContentHandler(contentService *services.ContentService) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

// GetAll handles GET /api/content - the whole-document read used by the
// public site on load.
func (h *ContentHandler) GetAll(c *fiber.Ctx) error {
	content, err := h.contentService.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch content",
		})
	}
	return c.JSON(content)
}

// PutAll handles POST /api/content - whole-document replace from the admin
// dashboard.
func (h *ContentHandler) PutAll(c *fiber.Ctx) error {
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(c.Body(), &payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	content, err := h.contentService.PutAll(payload)
	if err != nil {
		if errors.Is(err, services.ErrUnknownSection) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Unknown content section in payload",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to save content",
		})
	}
	return c.JSON(content)
}

// GetSection handles GET /api/content/:section.
func (h *ContentHandler) GetSection(c *fiber.Ctx) error {
	section, err := h.contentService.GetSection(c.Params("section"))
	if err != nil {
		if errors.Is(err, services.ErrUnknownSection) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Unknown content section",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch section",
		})
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(section)
}

// PutSection handles POST /api/content/:section.
func (h *ContentHandler) PutSection(c *fiber.Ctx) error {
	body := c.Body()
	if !json.Valid(body) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	section, err := h.contentService.PutSection(c.Params("section"), json.RawMessage(body))
	if err != nil {
		if errors.Is(err, services.ErrUnknownSection) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Unknown content section",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to save section",
		})
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(section)
}
