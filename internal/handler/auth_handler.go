package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meetapp/meetapp-backend/internal/apperr"
	"github.com/meetapp/meetapp-backend/internal/models"
	"github.com/meetapp/meetapp-backend/internal/service"
	"github.com/meetapp/meetapp-backend/pkg/utils"
)

type AuthHandler struct {
	authService *service.AuthService
	validator   *utils.Validator
}

func NewAuthHandler(authService *service.AuthService, validator *utils.Validator) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validator:   validator,
	}
}

// Register handles POST /users.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req models.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.NewError("Validation failed"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.NewError("Validation failed"))
	}

	resp, err := h.authService.Register(req)
	if err != nil {
		return c.Status(apperr.HTTPStatus(err)).JSON(models.NewError(err.Error()))
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Login handles POST /sessions.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.NewError("Validation failed"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.NewError("Validation failed"))
	}

	resp, err := h.authService.Login(req)
	if err != nil {
		return c.Status(apperr.HTTPStatus(err)).JSON(models.NewError(err.Error()))
	}

	return c.JSON(resp)
}
