package media

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Vittal-Dev1/Tentacao/internal/core/domain"
)

// ListMediaV1 is the handler for the public media listing
func (h *HandlerV1) ListMediaV1(w http.ResponseWriter, r *http.Request) {

	var categoryFilter *domain.Category
	if param := r.URL.Query().Get("category"); param != "" {
		category, err := domain.ParseCategory(param)
		if err != nil {
			http.Error(w, "invalid category", http.StatusBadRequest)
			return
		}
		categoryFilter = &category
	}

	// Out-of-range or missing limits are clamped by the service.
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	items, err := h.mediaService.List(r.Context(), categoryFilter, limit)
	if err != nil {
		h.logger.Error("error listing media", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := make([]V1MediaItemResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, toV1MediaItem(item))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}
