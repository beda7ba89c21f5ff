package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/stayfinder/stayfinder-api/internal/config"
	"github.com/stayfinder/stayfinder-api/internal/database"
	"github.com/stayfinder/stayfinder-api/internal/dto"
	"github.com/stayfinder/stayfinder-api/internal/handlers"
	"github.com/stayfinder/stayfinder-api/internal/logging"
	"github.com/stayfinder/stayfinder-api/internal/metrics"
	"github.com/stayfinder/stayfinder-api/internal/middleware"
	"github.com/stayfinder/stayfinder-api/internal/routes"
	"github.com/stayfinder/stayfinder-api/internal/services"
	"github.com/stayfinder/stayfinder-api/internal/store"
	"github.com/stayfinder/stayfinder-api/internal/token"
)

func main() {
	// Structured logging (JSON to stdout)
	logging.Setup()

	cfg := config.Load()

	if cfg.JWTSecret == config.DefaultJWTSecret {
		slog.Warn("JWT_SECRET not set, using the insecure default; do not run this in production")
	}

	// Database — single shared handle, established once, fatal on failure
	db, err := database.Connect(cfg)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	if err := database.Migrate(db); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	if err := database.Seed(db, cfg); err != nil {
		slog.Error("seeding failed", "error", err)
		os.Exit(1)
	}

	// PostgreSQL log handler (ERROR+ async batch)
	pgLogHandler := logging.NewPGHandler(db)
	slog.SetDefault(slog.New(logging.NewMultiHandler(
		slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		pgLogHandler,
	)))

	// Log cleanup (30-day retention)
	cleanupDone := make(chan struct{})
	logging.StartCleanup(db, cleanupDone)

	// Stores
	users := store.NewGormUserStore(db)
	properties := store.NewGormPropertyStore(db)
	favorites := store.NewGormFavoriteStore(db)
	contacts := store.NewGormContactStore(db)

	// Services
	issuer := token.NewIssuer(cfg.JWTSecret, cfg.JWTExpiry)
	authService := services.NewAuthService(users, issuer)
	propertyService := services.NewPropertyService(properties)
	favoriteService := services.NewFavoriteService(favorites, properties)
	contactService := services.NewContactService(contacts, properties)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	healthHandler := handlers.NewHealthHandler(cfg.DBName, func() error { return database.Ping(db) })
	propertyHandler := handlers.NewPropertyHandler(propertyService)
	favoriteHandler := handlers.NewFavoriteHandler(favoriteService)
	contactHandler := handlers.NewContactHandler(contactService)

	// Sentry error tracking
	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              dsn,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      os.Getenv("APP_ENV"),
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit:    1024 * 1024,
		ErrorHandler: errorHandler,
	})

	// Sentry middleware
	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
	}))
	app.Use(middleware.CORS(cfg))

	collector := metrics.NewCollector()
	app.Use(collector.Middleware())
	app.Get("/metrics", collector.Handler())

	// Routes
	routes.Setup(app, issuer, users, authHandler, healthHandler, propertyHandler, favoriteHandler, contactHandler)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	close(cleanupDone)
	pgLogHandler.Stop()
	sentry.Flush(2 * time.Second)

	if err := app.Shutdown(); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			slog.Error("database close error", "error", err)
		}
	}

	slog.Info("server stopped")
}

// errorHandler converts uncaught handler errors into a 400 with the error's
// message. Explicit fiber errors (404 route not found, 413 body too large)
// keep their status code.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusBadRequest
	message := err.Error()
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	if code >= 500 {
		slog.Error("unhandled server error", "method", c.Method(), "path", c.Path(), "error", err.Error())
		message = "Internal server error"
	}

	return c.Status(code).JSON(dto.ErrorResponse{Error: message})
}
