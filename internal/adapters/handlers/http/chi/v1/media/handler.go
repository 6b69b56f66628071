package media

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/Vittal-Dev1/Tentacao/internal/core/domain"
	"github.com/Vittal-Dev1/Tentacao/internal/core/port"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// HandlerV1 is the handler for v1 media routes
type HandlerV1 struct {
	mediaService port.MediaService
	logger       *slog.Logger
}

// NewMediaHandlerV1 creates HandlerV1
func NewMediaHandlerV1(service port.MediaService, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		mediaService: service,
		logger:       logger,
	}
}

// Routes exposes routes; requireSession gates the admin mutations
func (h *HandlerV1) Routes(requireSession func(http.Handler) http.Handler) chi.Router {
	router := chi.NewRouter()

	router.Get("/", h.ListMediaV1)
	router.Get("/latest/{type}", h.LatestMediaV1)

	router.Group(func(r chi.Router) {
		r.Use(requireSession)
		r.Post("/", h.UploadMediaV1)
		r.Patch("/{id}", h.UpdateMediaV1)
		r.Delete("/{id}", h.DeleteMediaV1)
	})

	return router
}

// V1MediaItemResponse is the wire shape of one media item. ImagePath and
// PublicURL duplicate ImageURL for older gallery clients.
type V1MediaItemResponse struct {
	ID          uuid.UUID       `json:"id"`
	Category    domain.Category `json:"category"`
	Description string          `json:"description,omitempty"`
	ImageURL    string          `json:"image_url"`
	ImagePath   string          `json:"image_path"`
	PublicURL   string          `json:"public_url"`
	CreatedAt   time.Time       `json:"created_at"`
}

func toV1MediaItem(item domain.MediaItem) V1MediaItemResponse {
	return V1MediaItemResponse{
		ID:          item.ID,
		Category:    item.Category,
		Description: item.Description,
		ImageURL:    item.ImageURL,
		ImagePath:   item.ImageURL,
		PublicURL:   item.ImageURL,
		CreatedAt:   item.CreatedAt,
	}
}
