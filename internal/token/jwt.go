package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MTomala-IT/storeapi/internal/model"
)

// ErrMissingSecret is returned when the manager is built without a signing key.
var ErrMissingSecret = errors.New("jwt secret key is not configured")

var _ model.TokenManager = (*JWT)(nil)

// Claims represents JWT claims with the token purpose.
type Claims struct {
	jwt.RegisteredClaims
	Type string `json:"type"`
}

// JWT implements TokenManager backed by symmetric HMAC-SHA256.
type JWT struct {
	secretKey []byte
	now       func() time.Time
}

// NewJWT creates a new JWT token manager with the provided secret key.
func NewJWT(secretKey string) (*JWT, error) {
	if secretKey == "" {
		return nil, ErrMissingSecret
	}
	return &JWT{secretKey: []byte(secretKey), now: time.Now}, nil
}

// Issue signs a token for subject that expires ttl from now.
func (j *JWT) Issue(subject string, purpose model.TokenPurpose, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(j.now().Add(ttl)),
		},
		Type: string(purpose),
	})

	tokenString, err := token.SignedString(j.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign %s token: %w", purpose, err)
	}

	return tokenString, nil
}

// ExtractSubject validates the signature, expiry and purpose of tokenString
// and returns its subject.
func (j *JWT) ExtractSubject(tokenString string, expected model.TokenPurpose) (string, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return j.secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", model.ErrExpiredToken
		}
		return "", model.NewInvalidTokenError("Invalid token")
	}

	if claims.Subject == "" {
		return "", model.NewInvalidTokenError("Token is missing 'sub' field")
	}
	if claims.Type != string(expected) {
		return "", model.NewInvalidTokenError(fmt.Sprintf("Token has incorrect type, expected '%s'", expected))
	}

	return claims.Subject, nil
}
