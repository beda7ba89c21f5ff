package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/stayfinder/stayfinder-api/internal/dto"
	"github.com/stayfinder/stayfinder-api/internal/services"
)

type PropertyHandler struct {
	propertyService *services.PropertyService
}

func NewPropertyHandler(propertyService *services.PropertyService) *PropertyHandler {
	return &PropertyHandler{propertyService: propertyService}
}

// List supports ?bhk= (exact type match) and ?maxPrice= (inclusive upper
// bound). A non-numeric or non-positive maxPrice is ignored, matching the
// lenient query handling of the public listing page.
func (h *PropertyHandler) List(c *fiber.Ctx) error {
	bhk := c.Query("bhk")
	maxPrice, err := strconv.Atoi(c.Query("maxPrice"))
	if err != nil {
		maxPrice = 0
	}

	properties, err := h.propertyService.List(bhk, maxPrice)
	if err != nil {
		return err
	}

	return c.JSON(dto.PropertyListResponse{Total: len(properties), Data: properties})
}

func (h *PropertyHandler) Get(c *fiber.Ctx) error {
	property, err := h.propertyService.Get(c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrPropertyNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: err.Error()})
		}
		return err
	}

	return c.JSON(property)
}
