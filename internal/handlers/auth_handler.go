package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/stayfinder/stayfinder-api/internal/dto"
	"github.com/stayfinder/stayfinder-api/internal/middleware"
	"github.com/stayfinder/stayfinder-api/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid JSON")
	}

	resp, err := h.authService.Register(&req)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: err.Error()})
		}
		if errors.Is(err, services.ErrMissingFields) || errors.Is(err, services.ErrPasswordTooShort) {
			return badRequest(c, err.Error())
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid JSON")
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		if errors.Is(err, services.ErrMissingCredentials) {
			return badRequest(c, err.Error())
		}
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: err.Error()})
		}
		return err
	}

	return c.JSON(resp)
}

// Me returns the user resolved by the auth guard.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user := middleware.UserFromCtx(c)
	return c.JSON(dto.MeResponse{
		User: dto.UserResponse{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		},
	})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: message})
}
