package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/meetapp/meetapp-backend/internal/apperr"
	"github.com/meetapp/meetapp-backend/internal/models"
	"github.com/meetapp/meetapp-backend/internal/service"
	"github.com/meetapp/meetapp-backend/pkg/utils"
)

type AttendanceHandler struct {
	attendanceService *service.AttendanceService
	validator         *utils.Validator
}

func NewAttendanceHandler(attendanceService *service.AttendanceService, validator *utils.Validator) *AttendanceHandler {
	return &AttendanceHandler{
		attendanceService: attendanceService,
		validator:         validator,
	}
}

// Store handles POST /attendances.
func (h *AttendanceHandler) Store(c *fiber.Ctx) error {
	var req models.AttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.NewError("Validation failed"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.NewError("Validation failed"))
	}

	userID := c.Locals("userID").(uint)

	attendance, err := h.attendanceService.Register(userID, req.MeetupID)
	if err != nil {
		return c.Status(apperr.HTTPStatus(err)).JSON(models.NewError(err.Error()))
	}

	return c.JSON(attendance)
}

// Index handles GET /attendances.
func (h *AttendanceHandler) Index(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	meetups, err := h.attendanceService.ListAttendedMeetups(userID)
	if err != nil {
		return c.Status(apperr.HTTPStatus(err)).JSON(models.NewError(err.Error()))
	}

	return c.JSON(meetups)
}

// Delete handles DELETE /attendances/:id.
func (h *AttendanceHandler) Delete(c *fiber.Ctx) error {
	attendanceID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.NewError("Validation failed"))
	}

	userID := c.Locals("userID").(uint)

	if err := h.attendanceService.Cancel(userID, uint(attendanceID)); err != nil {
		return c.Status(apperr.HTTPStatus(err)).JSON(models.NewError(err.Error()))
	}

	return c.JSON(models.NewMessage("Attendance canceled"))
}
