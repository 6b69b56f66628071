package media

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Vittal-Dev1/Tentacao/internal/core/domain"
	"github.com/Vittal-Dev1/Tentacao/internal/core/port"
)

// V1UploadResponse is the body response for Upload
type V1UploadResponse struct {
	Message string              `json:"message"`
	Data    V1MediaItemResponse `json:"data"`
}

// UploadMediaV1 is the handler for the admin image upload
func (h *HandlerV1) UploadMediaV1(w http.ResponseWriter, r *http.Request) {

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "no file sent", http.StatusBadRequest)
		return
	}
	defer file.Close()

	category, err := domain.ParseCategory(r.FormValue("category"))
	if err != nil {
		http.Error(w, "invalid category", http.StatusBadRequest)
		return
	}

	item, err := h.mediaService.Upload(r.Context(), port.UploadRequest{
		File:        file,
		Filename:    header.Filename,
		Size:        header.Size,
		ContentType: header.Header.Get("Content-Type"),
		Category:    category,
		Description: r.FormValue("description"),
	})

	switch {
	case errors.Is(err, domain.ErrInvalidCategory), errors.Is(err, domain.ErrMissingFile):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		h.logger.Error("error uploading media", "error", err)
		http.Error(w, "failed to upload image", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	resp := V1UploadResponse{Message: "upload complete", Data: toV1MediaItem(*item)}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}
