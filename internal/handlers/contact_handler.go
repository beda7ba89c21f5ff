package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/stayfinder/stayfinder-api/internal/dto"
	"github.com/stayfinder/stayfinder-api/internal/services"
)

type ContactHandler struct {
	contactService *services.ContactService
}

func NewContactHandler(contactService *services.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

func (h *ContactHandler) Create(c *fiber.Ctx) error {
	var req dto.ContactCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid JSON")
	}

	request, err := h.contactService.Create(req.Name, req.Phone, req.PropertyID)
	if err != nil {
		if errors.Is(err, services.ErrMissingContactFields) || errors.Is(err, services.ErrInvalidPropertyID) {
			return badRequest(c, err.Error())
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(dto.ContactCreateResponse{
		Message: "Contact request submitted",
		Data:    *request,
	})
}

func (h *ContactHandler) List(c *fiber.Ctx) error {
	requests, err := h.contactService.List()
	if err != nil {
		return err
	}

	return c.JSON(dto.ContactListResponse{Total: len(requests), Data: requests})
}
