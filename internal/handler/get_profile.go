package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RedirectProfile перенаправляет /profile/{slug} на страницу обзора профиля
func (h *Handler) RedirectProfile(w http.ResponseWriter, req *http.Request) {
	slug := chi.URLParam(req, "slug")

	if _, err := h.usecase.ResolveProfileID(req.Context(), slug); err != nil {
		h.handleError(w, err)
		return
	}

	http.Redirect(w, req, "/profile/"+slug+"/overview", http.StatusTemporaryRedirect)
}

// GetProfileOverview возвращает карточку консультанта по slug
func (h *Handler) GetProfileOverview(w http.ResponseWriter, req *http.Request) {
	slug := chi.URLParam(req, "slug")

	profile, err := h.usecase.GetProfile(req.Context(), slug)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, profile)
}
