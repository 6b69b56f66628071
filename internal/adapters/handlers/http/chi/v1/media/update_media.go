package media

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Vittal-Dev1/Tentacao/internal/core/domain"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// V1UpdateMediaRequest is the body request for Update. Description is a
// pointer so that a missing field can be told apart from an empty string.
type V1UpdateMediaRequest struct {
	Description *string `json:"description"`
}

// V1UpdateMediaResponse is the body response for Update
type V1UpdateMediaResponse struct {
	Message string              `json:"message"`
	Data    V1MediaItemResponse `json:"data"`
}

// UpdateMediaV1 is the handler for the description edit
func (h *HandlerV1) UpdateMediaV1(w http.ResponseWriter, r *http.Request) {

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req V1UpdateMediaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	if req.Description == nil {
		http.Error(w, "invalid description", http.StatusBadRequest)
		return
	}

	item, err := h.mediaService.UpdateDescription(r.Context(), id, *req.Description)
	switch {
	case errors.Is(err, domain.ErrMediaNotFound):
		http.Error(w, "item not found", http.StatusNotFound)
		return
	case err != nil:
		h.logger.Error("error updating media", "id", id, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	resp := V1UpdateMediaResponse{Message: "item updated", Data: toV1MediaItem(*item)}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}
