package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meetapp/meetapp-backend/internal/apperr"
	"github.com/meetapp/meetapp-backend/internal/models"
	"github.com/meetapp/meetapp-backend/internal/service"
	"github.com/meetapp/meetapp-backend/pkg/utils"
)

type FileHandler struct {
	fileService *service.FileService
	validator   *utils.Validator
}

func NewFileHandler(fileService *service.FileService, validator *utils.Validator) *FileHandler {
	return &FileHandler{
		fileService: fileService,
		validator:   validator,
	}
}

// Store handles POST /files: a multipart banner upload.
func (h *FileHandler) Store(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.NewError("Validation failed"))
	}

	upload := models.FileUploadRequest{
		MimeType: fileHeader.Header.Get("Content-Type"),
	}
	if err := h.validator.Struct(upload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.NewError("Unsupported file type"))
	}

	file, err := h.fileService.Upload(fileHeader)
	if err != nil {
		return c.Status(apperr.HTTPStatus(err)).JSON(models.NewError(err.Error()))
	}

	return c.Status(fiber.StatusCreated).JSON(file)
}
