package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/meetapp/meetapp-backend/internal/apperr"
	"github.com/meetapp/meetapp-backend/internal/models"
	"github.com/meetapp/meetapp-backend/internal/service"
	"github.com/meetapp/meetapp-backend/pkg/qrcode"
	"github.com/meetapp/meetapp-backend/pkg/utils"
)

type MeetupHandler struct {
	meetupService *service.MeetupService
	qrService     *qrcode.QRService
	validator     *utils.Validator
}

func NewMeetupHandler(meetupService *service.MeetupService, qrService *qrcode.QRService, validator *utils.Validator) *MeetupHandler {
	return &MeetupHandler{
		meetupService: meetupService,
		qrService:     qrService,
		validator:     validator,
	}
}

// Store handles POST /meetups.
func (h *MeetupHandler) Store(c *fiber.Ctx) error {
	var req models.MeetupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.NewError("Validation failed"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.NewError("Validation failed"))
	}

	userID := c.Locals("userID").(uint)

	meetup, err := h.meetupService.CreateMeetup(userID, req)
	if err != nil {
		return c.Status(apperr.HTTPStatus(err)).JSON(models.NewError(err.Error()))
	}

	return c.Status(fiber.StatusCreated).JSON(meetup)
}

// Index handles GET /meetups: the organizer's own meetups.
func (h *MeetupHandler) Index(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	meetups, err := h.meetupService.GetUserMeetups(userID)
	if err != nil {
		return c.Status(apperr.HTTPStatus(err)).JSON(models.NewError(err.Error()))
	}

	return c.JSON(meetups)
}

// Show handles GET /meetups/:id.
func (h *MeetupHandler) Show(c *fiber.Ctx) error {
	meetupID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.NewError("Validation failed"))
	}

	userID := c.Locals("userID").(uint)

	meetup, err := h.meetupService.GetMeetup(uint(meetupID), userID)
	if err != nil {
		return c.Status(apperr.HTTPStatus(err)).JSON(models.NewError(err.Error()))
	}

	return c.JSON(meetup)
}

// Update handles PUT /meetups/:id.
func (h *MeetupHandler) Update(c *fiber.Ctx) error {
	meetupID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.NewError("Validation failed"))
	}

	var req models.UpdateMeetupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.NewError("Validation failed"))
	}

	userID := c.Locals("userID").(uint)

	meetup, err := h.meetupService.UpdateMeetup(uint(meetupID), userID, req)
	if err != nil {
		return c.Status(apperr.HTTPStatus(err)).JSON(models.NewError(err.Error()))
	}

	return c.JSON(meetup)
}

// Delete handles DELETE /meetups/:id.
func (h *MeetupHandler) Delete(c *fiber.Ctx) error {
	meetupID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.NewError("Validation failed"))
	}

	userID := c.Locals("userID").(uint)

	if err := h.meetupService.DeleteMeetup(uint(meetupID), userID); err != nil {
		return c.Status(apperr.HTTPStatus(err)).JSON(models.NewError(err.Error()))
	}

	return c.JSON(models.NewMessage("Meetup deleted"))
}

// QRCode handles GET /meetups/:id/qrcode with a PNG response.
func (h *MeetupHandler) QRCode(c *fiber.Ctx) error {
	meetupID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.NewError("Validation failed"))
	}

	userID := c.Locals("userID").(uint)

	if _, err := h.meetupService.GetMeetup(uint(meetupID), userID); err != nil {
		return c.Status(apperr.HTTPStatus(err)).JSON(models.NewError(err.Error()))
	}

	png, err := h.qrService.GenerateMeetupQR(uint(meetupID), 256)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.NewError(err.Error()))
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}
