package auth

import (
	"log/slog"

	"github.com/Vittal-Dev1/Tentacao/internal/config"
	"github.com/Vittal-Dev1/Tentacao/internal/core/port"

	"github.com/go-chi/chi/v5"
)

// HandlerV1 is the handler for v1 auth routes
type HandlerV1 struct {
	sessions port.SessionService
	cfg      config.AuthConfig
	secure   bool
	logger   *slog.Logger
}

// NewAuthHandlerV1 creates HandlerV1. secure marks the session cookie
// Secure, set outside local development.
func NewAuthHandlerV1(sessions port.SessionService, cfg config.AuthConfig, secure bool, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		sessions: sessions,
		cfg:      cfg,
		secure:   secure,
		logger:   logger,
	}
}

// Routes exposes routes
func (h *HandlerV1) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/login", h.LoginV1)

	return router
}
