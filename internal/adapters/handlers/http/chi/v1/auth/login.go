package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Vittal-Dev1/Tentacao/internal/core/domain"
)

// V1LoginRequest is the body request for Login
type V1LoginRequest struct {
	Password   string `json:"password"`
	RedirectTo string `json:"redirectTo"`
}

// V1LoginResponse is the body response for Login
type V1LoginResponse struct {
	OK         bool   `json:"ok"`
	RedirectTo string `json:"redirectTo"`
}

// LoginV1 checks the admin password and sets the session cookie
func (h *HandlerV1) LoginV1(w http.ResponseWriter, r *http.Request) {

	var req V1LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	if req.Password == "" {
		http.Error(w, "password required", http.StatusBadRequest)
		return
	}

	token, err := h.sessions.Login(req.Password)
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		http.Error(w, "invalid password", http.StatusUnauthorized)
		return
	case err != nil:
		h.logger.Error("error creating session", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	redirectTo := req.RedirectTo
	if redirectTo == "" {
		redirectTo = "/admin"
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cfg.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.cfg.SessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(V1LoginResponse{OK: true, RedirectTo: redirectTo}); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}
