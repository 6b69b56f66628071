package cron

import (
	"crypto/subtle"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Vittal-Dev1/Tentacao/internal/core/port"

	"github.com/go-chi/chi/v5"
)

// HandlerV1 is the handler for v1 cron routes
type HandlerV1 struct {
	cleanupService port.CleanupService
	// secret authenticates external schedulers via a bearer token; when
	// empty the route falls back to the admin session.
	secret string
	logger *slog.Logger
}

// NewCronHandlerV1 creates HandlerV1
func NewCronHandlerV1(service port.CleanupService, secret string, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		cleanupService: service,
		secret:         secret,
		logger:         logger,
	}
}

// Routes exposes routes
func (h *HandlerV1) Routes(requireSession func(http.Handler) http.Handler) chi.Router {
	router := chi.NewRouter()

	if h.secret != "" {
		router.Use(h.bearerAuth)
	} else {
		router.Use(requireSession)
	}
	router.Get("/cleanup", h.CleanupV1)

	return router
}

func (h *HandlerV1) bearerAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if subtle.ConstantTimeCompare([]byte(token), []byte(h.secret)) != 1 {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// V1CleanupResponse is the body response for Cleanup
type V1CleanupResponse struct {
	Message string `json:"message"`
	Deleted int    `json:"deleted"`
}

// CleanupV1 purges the promotional combo images
func (h *HandlerV1) CleanupV1(w http.ResponseWriter, r *http.Request) {

	deleted, err := h.cleanupService.PurgeCombos(r.Context())
	if err != nil {
		h.logger.Error("error purging combos", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := V1CleanupResponse{Deleted: deleted}
	if deleted == 0 {
		resp.Message = "no combos to delete"
	} else {
		resp.Message = "combos deleted"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}
