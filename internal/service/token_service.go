package service

import (
	"fmt"
	"time"

	"github.com/MTomala-IT/storeapi/internal/logger"
	"github.com/MTomala-IT/storeapi/internal/model"
)

// TokenService binds the configured lifetimes to the token manager so that
// callers only pick the purpose.
type TokenService struct {
	manager         model.TokenManager
	accessTTL       time.Duration
	confirmationTTL time.Duration
	logger          *logger.Logger
}

func NewTokenService(manager model.TokenManager, accessTTL, confirmationTTL time.Duration, logger *logger.Logger) *TokenService {
	return &TokenService{
		manager:         manager,
		accessTTL:       accessTTL,
		confirmationTTL: confirmationTTL,
		logger:          logger,
	}
}

func (s *TokenService) AccessToken(email string) (string, error) {
	tok, err := s.manager.Issue(email, model.TokenPurposeAccess, s.accessTTL)
	if err != nil {
		return "", fmt.Errorf("issue access: %w", err)
	}
	return tok, nil
}

func (s *TokenService) ConfirmationToken(email string) (string, error) {
	tok, err := s.manager.Issue(email, model.TokenPurposeConfirmation, s.confirmationTTL)
	if err != nil {
		return "", fmt.Errorf("issue confirmation: %w", err)
	}
	return tok, nil
}

// Subject returns the email a token was issued for, provided the token has the expected purpose.
func (s *TokenService) Subject(token string, purpose model.TokenPurpose) (string, error) {
	return s.manager.ExtractSubject(token, purpose)
}
