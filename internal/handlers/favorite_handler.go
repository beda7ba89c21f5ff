package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/stayfinder/stayfinder-api/internal/dto"
	"github.com/stayfinder/stayfinder-api/internal/middleware"
	"github.com/stayfinder/stayfinder-api/internal/services"
)

type FavoriteHandler struct {
	favoriteService *services.FavoriteService
}

func NewFavoriteHandler(favoriteService *services.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

func (h *FavoriteHandler) List(c *fiber.Ctx) error {
	user := middleware.UserFromCtx(c)

	properties, err := h.favoriteService.List(user.ID)
	if err != nil {
		return err
	}

	return c.JSON(dto.PropertyListResponse{Total: len(properties), Data: properties})
}

func (h *FavoriteHandler) Add(c *fiber.Ctx) error {
	user := middleware.UserFromCtx(c)

	var req dto.FavoriteAddRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid JSON")
	}
	if req.PropertyID == "" {
		return badRequest(c, "propertyId is required")
	}

	if err := h.favoriteService.Add(user.ID, req.PropertyID); err != nil {
		if errors.Is(err, services.ErrInvalidPropertyID) {
			return badRequest(c, err.Error())
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(dto.FavoriteMutationResponse{
		Message:    "Added to favorites",
		PropertyID: req.PropertyID,
	})
}

func (h *FavoriteHandler) Remove(c *fiber.Ctx) error {
	user := middleware.UserFromCtx(c)
	propertyID := c.Params("propertyId")

	if err := h.favoriteService.Remove(user.ID, propertyID); err != nil {
		return err
	}

	return c.JSON(dto.FavoriteMutationResponse{
		Message:    "Removed from favorites",
		PropertyID: propertyID,
	})
}
