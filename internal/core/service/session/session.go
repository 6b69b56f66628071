package session

import (
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/Vittal-Dev1/Tentacao/internal/config"
	"github.com/Vittal-Dev1/Tentacao/internal/core/domain"
	"github.com/Vittal-Dev1/Tentacao/internal/core/port"

	"github.com/golang-jwt/jwt/v5"
)

type sessionService struct {
	cfg config.AuthConfig
}

// NewSessionService creates a new session service. Sessions are signed HS256
// tokens rather than a static cookie value; behavior stays binary
// authenticated/not.
func NewSessionService(cfg config.AuthConfig) port.SessionService {
	return &sessionService{cfg: cfg}
}

// Login checks the shared admin password and mints a session token
func (s *sessionService) Login(password string) (string, error) {

	if subtle.ConstantTimeCompare([]byte(password), []byte(s.cfg.AdminPassword)) != 1 {
		return "", domain.ErrInvalidCredentials
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   "admin",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.SessionTTL)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.SessionSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return token, nil
}

// Verify reports whether token is a valid, unexpired session token
func (s *sessionService) Verify(token string) error {

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		return []byte(s.cfg.SessionSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil || !parsed.Valid {
		return domain.ErrInvalidCredentials
	}

	return nil
}
