package handlers

import (
	"os"
	"path"
	"path/filepath"

	"github.com/gofiber/fiber/v2"

	"github.com/example/corpweb/internal/config"
	"github.com/example/corpweb/internal/utils"
)

// UploadHandler stores admin image uploads on local disk under the public
// upload directory.
type UploadHandler struct {
	cfg *config.Config
}

// NewUploadHandler constructs UploadHandler.
func NewUploadHandler(cfg *config.Config) *UploadHandler {
	return &UploadHandler{cfg: cfg}
}

// Upload accepts a single multipart file, validates its declared type
// against the image allowlist and the configured size ceiling, and
// returns the public URL path of the stored file.
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "file is required")
	}

	contentType := file.Header.Get("Content-Type")
	if _, ok := utils.AllowedImageTypes[contentType]; !ok {
		return fiber.NewError(fiber.StatusBadRequest, "unsupported file type")
	}

	if file.Size > h.cfg.MaxUploadBytes {
		return fiber.NewError(fiber.StatusBadRequest, "file too large")
	}

	name, err := utils.GenerateUploadName(file.Filename, contentType)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to generate filename")
	}

	if err := os.MkdirAll(h.cfg.UploadDir, 0o755); err != nil {
		return err
	}

	if err := c.SaveFile(file, filepath.Join(h.cfg.UploadDir, name)); err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"url": path.Join(h.cfg.PublicUploadPath, name),
		},
	})
}
