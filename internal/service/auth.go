package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MTomala-IT/storeapi/internal/logger"
	"github.com/MTomala-IT/storeapi/internal/model"
)

type Auth struct {
	userStore    model.UserStore
	hasher       model.PasswordHasher
	tokenService *TokenService
	logger       *logger.Logger
}

func NewAuth(
	userStore model.UserStore,
	hasher model.PasswordHasher,
	tokenService *TokenService,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:    userStore,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

// Register creates an unconfirmed user and issues the token that confirms it.
func (a *Auth) Register(ctx context.Context, email, password string) (model.Registration, error) {
	log := a.logger.Ctx(ctx)
	log.Debug("Auth service: starting user registration", "email", email)

	_, err := a.userStore.GetByEmail(ctx, email)
	if err == nil {
		log.Info("Auth service: user already exists", "email", email)
		return model.Registration{}, model.ErrDuplicateUser
	}
	if !errors.Is(err, model.ErrNotFound) {
		log.Error("Auth service: failed to get user by email", "email", email, "error", err.Error())
		return model.Registration{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	hash, err := a.hasher.Hash(ctx, password)
	if err != nil {
		return model.Registration{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := a.userStore.Create(ctx, model.User{Email: email, PasswordHash: hash})
	if err != nil {
		if errors.Is(err, model.ErrDuplicateUser) {
			return model.Registration{}, model.ErrDuplicateUser
		}
		log.Error("Auth service: failed to create user", "email", email, "error", err.Error())
		return model.Registration{}, fmt.Errorf("failed to create user: %w", err)
	}

	confirmation, err := a.tokenService.ConfirmationToken(user.Email)
	if err != nil {
		return model.Registration{}, fmt.Errorf("failed to issue confirmation token: %w", err)
	}

	log.Info("Auth service: user registered", "email", email, "user_id", user.ID)

	return model.Registration{User: user, ConfirmationToken: confirmation}, nil
}

// Authenticate checks credentials. An unknown email and a wrong password
// produce the same error.
func (a *Auth) Authenticate(ctx context.Context, email, password string) (model.User, error) {
	log := a.logger.Ctx(ctx)
	log.Debug("Auth service: authenticating user", "email", email)

	user, err := a.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, model.ErrInvalidCredentials
		}
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if !a.hasher.Verify(ctx, password, user.PasswordHash) {
		return model.User{}, model.ErrInvalidCredentials
	}

	if !user.Confirmed {
		log.Info("Auth service: login attempt before confirmation", "email", email)
		return model.User{}, model.ErrUnconfirmedAccount
	}

	return user, nil
}

// Login authenticates the user and issues an access token.
func (a *Auth) Login(ctx context.Context, email, password string) (string, error) {
	user, err := a.Authenticate(ctx, email, password)
	if err != nil {
		return "", err
	}

	access, err := a.tokenService.AccessToken(user.Email)
	if err != nil {
		return "", fmt.Errorf("failed to issue access token: %w", err)
	}

	return access, nil
}

// Confirm marks the token's user as confirmed and returns their email.
// Confirming an already confirmed user succeeds.
func (a *Auth) Confirm(ctx context.Context, token string) (string, error) {
	email, err := a.tokenService.Subject(token, model.TokenPurposeConfirmation)
	if err != nil {
		return "", err
	}

	if err := a.userStore.SetConfirmed(ctx, email); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return "", model.NewInvalidCredentialsError("Could not find user for this token")
		}
		return "", fmt.Errorf("failed to confirm user: %w", err)
	}

	a.logger.Ctx(ctx).Info("Auth service: user confirmed", "email", email)

	return email, nil
}

// Resolve returns the user an access token belongs to.
func (a *Auth) Resolve(ctx context.Context, token string) (model.User, error) {
	email, err := a.tokenService.Subject(token, model.TokenPurposeAccess)
	if err != nil {
		return model.User{}, err
	}

	user, err := a.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, model.NewInvalidCredentialsError("Could not find user for this token")
		}
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}
