package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/stayfinder/stayfinder-api/internal/dto"
	"github.com/stayfinder/stayfinder-api/internal/models"
	"github.com/stayfinder/stayfinder-api/internal/store"
	"github.com/stayfinder/stayfinder-api/internal/token"
)

const bearerPrefix = "Bearer "

const userLocalKey = "authUser"

// Protected extracts the bearer token, verifies it and resolves the subject
// to a user record, which is stored in the request locals. Every failure is
// a 401; the three messages distinguish a missing credential, a bad token
// and a token whose subject no longer exists.
func Protected(issuer *token.Issuer, users store.UserStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, bearerPrefix) {
			return unauthorized(c, "Missing bearer token")
		}
		raw := strings.TrimSpace(header[len(bearerPrefix):])
		if raw == "" {
			return unauthorized(c, "Missing bearer token")
		}

		claims, err := issuer.Verify(raw)
		if err != nil {
			return unauthorized(c, "Invalid or expired token")
		}

		user, err := users.GetByID(claims.Subject)
		if err != nil {
			return unauthorized(c, "User not found")
		}

		c.Locals(userLocalKey, user)
		return c.Next()
	}
}

// UserFromCtx returns the user resolved by Protected. It is only valid on
// routes behind that middleware.
func UserFromCtx(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(userLocalKey).(*models.User)
	return user
}

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: message})
}
