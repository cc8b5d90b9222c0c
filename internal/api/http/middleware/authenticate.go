package middleware

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/MTomala-IT/storeapi/internal/logger"
	"github.com/MTomala-IT/storeapi/internal/model"
)

const bearerPrefix = "Bearer "

// UserResolver returns the user an access token was issued for.
type UserResolver interface {
	Resolve(ctx context.Context, token string) (model.User, error)
}

// Authenticate validates bearer tokens and stores the current user on the request context.
type Authenticate struct {
	resolver       UserResolver
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(resolver UserResolver, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{resolver: resolver, contextManager: contextManager, logger: logger}
}

// Handle rejects the request unless the Authorization header carries a valid access token.
// Errors are left to the application error handler.
func (m *Authenticate) Handle(c *fiber.Ctx) error {
	ctx := c.UserContext()

	header := c.Get(fiber.HeaderAuthorization)
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return model.NewInvalidCredentialsError("Not authenticated")
	}

	tokenString := strings.TrimSpace(header[len(bearerPrefix):])
	if tokenString == "" {
		return model.NewInvalidCredentialsError("Not authenticated")
	}

	user, err := m.resolver.Resolve(ctx, tokenString)
	if err != nil {
		m.logger.Ctx(ctx).Debug("Authenticate middleware: token rejected", "error", err.Error())
		return err
	}

	c.SetUserContext(m.contextManager.SetUserToContext(ctx, user))
	return c.Next()
}
