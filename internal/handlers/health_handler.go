package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/raghavenderreddy1707/Labour-Hub/internal/dto"
	"github.com/raghavenderreddy1707/Labour-Hub/internal/storage"
)

type HealthHandler struct {
	kv     storage.KV
	driver string
}

func NewHealthHandler(kv storage.KV, driver string) *HealthHandler {
	return &HealthHandler{kv: kv, driver: driver}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	storageStatus := "ok"
	if err := h.kv.Ping(ctx); err != nil {
		storageStatus = "unhealthy: " + err.Error()
	}

	return c.JSON(dto.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Storage:   storageStatus,
		Driver:    h.driver,
	})
}
