package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/helpinghands/site-backend/internal/dto"
	"github.com/helpinghands/site-backend/internal/services"
)

type MediaHandler struct {
	mediaService *services.MediaService
}

func NewMediaHandler(mediaService *services.MediaService) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

// Upload handles POST /api/image/upload with multipart form field "image".
func (h *MediaHandler) Upload(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Image file is required",
		})
	}

	url, err := h.mediaService.Upload(c.Context(), file)
	if err != nil {
		if strings.Contains(err.Error(), "image size") || strings.Contains(err.Error(), "invalid image format") {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to upload image",
		})
	}

	return c.JSON(dto.UploadResponse{URL: url})
}

// ListImages handles GET /api/images.
func (h *MediaHandler) ListImages(c *fiber.Ctx) error {
	urls, err := h.mediaService.ListImages()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list images",
		})
	}
	return c.JSON(urls)
}
