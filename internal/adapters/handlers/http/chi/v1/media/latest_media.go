package media

import (
	"errors"
	"net/http"

	"github.com/Vittal-Dev1/Tentacao/internal/core/domain"

	"github.com/go-chi/chi/v5"
)

// LatestMediaV1 redirects to the newest image of a category. The path
// parameter uses the public short names: cardapio, dia, tarde.
func (h *HandlerV1) LatestMediaV1(w http.ResponseWriter, r *http.Request) {

	category, err := domain.ResolveCategory(chi.URLParam(r, "type"))
	if err != nil {
		http.Error(w, "invalid type, use: cardapio, dia or tarde", http.StatusBadRequest)
		return
	}

	item, err := h.mediaService.Latest(r.Context(), category)
	switch {
	case errors.Is(err, domain.ErrMediaNotFound):
		http.Error(w, "no image found for this category", http.StatusNotFound)
		return
	case err != nil:
		h.logger.Error("error fetching latest media", "category", category, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, item.ImageURL, http.StatusFound)
}
