package media

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Vittal-Dev1/Tentacao/internal/core/domain"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// V1DeleteMediaResponse is the body response for Delete
type V1DeleteMediaResponse struct {
	Message string `json:"message"`
}

// DeleteMediaV1 is the handler for the admin delete
func (h *HandlerV1) DeleteMediaV1(w http.ResponseWriter, r *http.Request) {

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	err = h.mediaService.Delete(r.Context(), id)
	switch {
	case errors.Is(err, domain.ErrMediaNotFound):
		http.Error(w, "item not found", http.StatusNotFound)
		return
	case err != nil:
		h.logger.Error("error deleting media", "id", id, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(V1DeleteMediaResponse{Message: "item deleted"}); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}
