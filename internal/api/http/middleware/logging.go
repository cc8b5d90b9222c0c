package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/MTomala-IT/storeapi/internal/logger"
)

// Logging logs every request with a correlation id derived from the request id.
type Logging struct {
	logger              *logger.Logger
	correlationIDLength int
}

// NewLogging creates a new Logging middleware. Correlation ids are the request id
// cut to correlationIDLength characters; zero keeps the full id.
func NewLogging(logger *logger.Logger, correlationIDLength int) *Logging {
	return &Logging{logger: logger, correlationIDLength: correlationIDLength}
}

// Handle binds a request scoped logger to the user context, runs the chain and logs the result.
// Chain errors are rendered here so that the logged status matches the response.
func (l *Logging) Handle(c *fiber.Ctx) error {
	start := time.Now()

	reqLogger := l.logger.With("correlation_id", l.correlationID(c))
	c.SetUserContext(logger.WithContext(c.UserContext(), reqLogger))

	reqLogger.Info("HTTP request started",
		"method", c.Method(),
		"path", c.Path())

	if chainErr := c.Next(); chainErr != nil {
		if err := c.App().ErrorHandler(c, chainErr); err != nil {
			_ = c.SendStatus(fiber.StatusInternalServerError)
		}
	}

	reqLogger.Info("HTTP request completed",
		"method", c.Method(),
		"path", c.Path(),
		"status", c.Response().StatusCode(),
		"duration_ms", time.Since(start).Milliseconds())

	return nil
}

func (l *Logging) correlationID(c *fiber.Ctx) string {
	id := c.GetRespHeader(fiber.HeaderXRequestID)
	if id == "" {
		id = c.Get(fiber.HeaderXRequestID)
	}
	if l.correlationIDLength > 0 && len(id) > l.correlationIDLength {
		id = id[:l.correlationIDLength]
	}
	return id
}
