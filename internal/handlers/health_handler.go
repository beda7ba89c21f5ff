package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/stayfinder/stayfinder-api/internal/dto"
)

type HealthHandler struct {
	dbName string
	ping   func() error
}

func NewHealthHandler(dbName string, ping func() error) *HealthHandler {
	return &HealthHandler{dbName: dbName, ping: ping}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	db := h.dbName
	if err := h.ping(); err != nil {
		db = "unhealthy: " + err.Error()
	}

	return c.JSON(dto.HealthResponse{
		OK:      true,
		Service: "StayFinder API",
		DB:      db,
		Time:    time.Now().UTC().Format(time.RFC3339),
	})
}
