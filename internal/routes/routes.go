package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stayfinder/stayfinder-api/internal/handlers"
	"github.com/stayfinder/stayfinder-api/internal/middleware"
	"github.com/stayfinder/stayfinder-api/internal/store"
	"github.com/stayfinder/stayfinder-api/internal/token"
)

func Setup(
	app *fiber.App,
	issuer *token.Issuer,
	users store.UserStore,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	propertyHandler *handlers.PropertyHandler,
	favoriteHandler *handlers.FavoriteHandler,
	contactHandler *handlers.ContactHandler,
) {
	protected := middleware.Protected(issuer, users)

	api := app.Group("/api")

	api.Get("/health", healthHandler.Check)

	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Get("/me", protected, authHandler.Me)

	api.Get("/properties", propertyHandler.List)
	api.Get("/properties/:id", propertyHandler.Get)

	api.Get("/favorites", protected, favoriteHandler.List)
	api.Post("/favorites", protected, favoriteHandler.Add)
	api.Delete("/favorites/:propertyId", protected, favoriteHandler.Remove)

	api.Post("/contact-request", contactHandler.Create)
	api.Get("/contact-request", contactHandler.List)
}
