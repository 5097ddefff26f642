package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meetapp/meetapp-backend/internal/apperr"
	"github.com/meetapp/meetapp-backend/internal/models"
	"github.com/meetapp/meetapp-backend/internal/service"
	"github.com/meetapp/meetapp-backend/pkg/utils"
)

type UserHandler struct {
	userService *service.UserService
	validator   *utils.Validator
}

func NewUserHandler(userService *service.UserService, validator *utils.Validator) *UserHandler {
	return &UserHandler{
		userService: userService,
		validator:   validator,
	}
}

// Update handles PUT /users.
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var req models.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.NewError("Validation failed"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.NewError("Validation failed"))
	}

	userID := c.Locals("userID").(uint)

	user, err := h.userService.UpdateProfile(userID, req)
	if err != nil {
		return c.Status(apperr.HTTPStatus(err)).JSON(models.NewError(err.Error()))
	}

	return c.JSON(user)
}
