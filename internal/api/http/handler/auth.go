package handler

import (
	"context"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/gofiber/fiber/v2"

	"github.com/MTomala-IT/storeapi/internal/logger"
	"github.com/MTomala-IT/storeapi/internal/model"
)

// bcrypt ignores everything past 72 bytes.
const maxPasswordLength = 72

// AuthService defines registration, login and email confirmation.
type AuthService interface {
	Register(ctx context.Context, email, password string) (model.Registration, error)
	Login(ctx context.Context, email, password string) (string, error)
	Confirm(ctx context.Context, token string) (string, error)
}

// Notifier delivers the confirmation link to a newly registered user.
type Notifier interface {
	SendRegistrationEmail(email, confirmationURL string) error
}

// Credentials is the body of /register and /token.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks the email format and password length.
func (r Credentials) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required, validation.Length(1, maxPasswordLength)),
	)
}

// TokenResponse is returned by a successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Auth handles the user endpoints.
type Auth struct {
	authService AuthService
	notifier    Notifier
	baseURL     string
	logger      *logger.Logger
}

// NewAuth creates a new Auth handler. Confirmation links are built on baseURL,
// or on the URL of the incoming request when baseURL is empty.
func NewAuth(authService AuthService, notifier Notifier, baseURL string, logger *logger.Logger) *Auth {
	return &Auth{
		authService: authService,
		notifier:    notifier,
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		logger:      logger,
	}
}

// Register creates an unconfirmed account and queues the confirmation email.
func (h *Auth) Register(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req Credentials
	if err := c.BodyParser(&req); err != nil {
		return errBadBody
	}
	if err := req.Validate(); err != nil {
		return err
	}

	h.logger.Ctx(ctx).Debug("Auth handler: processing registration request", "email", req.Email)

	registration, err := h.authService.Register(ctx, req.Email, req.Password)
	if err != nil {
		return err
	}

	confirmationURL := h.confirmationURL(c, registration.ConfirmationToken)
	if err := h.notifier.SendRegistrationEmail(registration.User.Email, confirmationURL); err != nil {
		h.logger.Ctx(ctx).Error("Auth handler: failed to queue registration email",
			"email", registration.User.Email,
			"error", err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"detail": "User Created. Please confirm your email.",
	})
}

// Token exchanges credentials of a confirmed account for an access token.
func (h *Auth) Token(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req Credentials
	if err := c.BodyParser(&req); err != nil {
		return errBadBody
	}
	if err := req.Validate(); err != nil {
		return err
	}

	accessToken, err := h.authService.Login(ctx, req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(TokenResponse{AccessToken: accessToken, TokenType: "bearer"})
}

// Confirm marks the account named by a confirmation token as confirmed.
func (h *Auth) Confirm(c *fiber.Ctx) error {
	if _, err := h.authService.Confirm(c.UserContext(), c.Params("token")); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"detail": "User confirmed"})
}

func (h *Auth) confirmationURL(c *fiber.Ctx, token string) string {
	base := h.baseURL
	if base == "" {
		base = c.BaseURL()
	}
	return base + "/confirm/" + token
}
