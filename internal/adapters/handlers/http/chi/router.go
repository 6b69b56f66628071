package chi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/Vittal-Dev1/Tentacao/internal/adapters/handlers/http/chi/v1/auth"
	"github.com/Vittal-Dev1/Tentacao/internal/adapters/handlers/http/chi/v1/cron"
	"github.com/Vittal-Dev1/Tentacao/internal/adapters/handlers/http/chi/v1/media"
	"github.com/Vittal-Dev1/Tentacao/internal/core/port"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter builds http.Handler with chi. uploadsDir, when set, is served
// under uploadsPrefix so the fs blob driver's URLs resolve.
func NewRouter(logger *slog.Logger, sessions port.SessionService, cookieName string, authHandler *auth.HandlerV1, mediaHandler *media.HandlerV1, cronHandler *cron.HandlerV1, env, uploadsPrefix, uploadsDir string) http.Handler {
	r := chi.NewRouter()

	//handle requestID to facilitate debug (X-Request-ID)
	//It fetches from request if exists, or creates it
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(LoggerMiddleware(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middleware.RequestSize(10 << 20)) //10mb, image uploads

	if env != "prod" {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	requireSession := SessionAuth(sessions, cookieName)

	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/auth", authHandler.Routes())
		r.Mount("/media", mediaHandler.Routes(requireSession))
		r.Mount("/cron", cronHandler.Routes(requireSession))
	})

	if uploadsDir != "" {
		prefix := "/" + strings.Trim(uploadsPrefix, "/")
		fileServer := http.StripPrefix(prefix, http.FileServer(http.Dir(uploadsDir)))
		r.Get(prefix+"/*", func(w http.ResponseWriter, r *http.Request) {
			fileServer.ServeHTTP(w, r)
		})
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		resp := HealthResponse{
			Status:    "ok",
			Timestamp: time.Now(),
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	})

	return r
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}
