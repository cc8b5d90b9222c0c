package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/MTomala-IT/storeapi/internal/logger"
)

const pingTimeout = 2 * time.Second

// Pinger reports whether a backing dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Health struct {
	pinger Pinger
	logger *logger.Logger
}

// NewHealth creates a health handler. A nil pinger makes the check always pass.
func NewHealth(pinger Pinger, logger *logger.Logger) *Health {
	return &Health{pinger: pinger, logger: logger}
}

func (h *Health) Check(c *fiber.Ctx) error {
	if h.pinger != nil {
		ctx, cancel := context.WithTimeout(c.UserContext(), pingTimeout)
		defer cancel()

		if err := h.pinger.Ping(ctx); err != nil {
			h.logger.Ctx(ctx).Warn("Health handler: database unreachable", "error", err.Error())
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
		}
	}

	return c.JSON(fiber.Map{"status": "ok"})
}
