package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// GetCounselorSlug возвращает slug и ссылку на профиль консультанта по его идентификатору
func (h *Handler) GetCounselorSlug(w http.ResponseWriter, req *http.Request) {
	id := chi.URLParam(req, "id")

	link, err := h.usecase.GetCounselorLink(req.Context(), id)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, link)
}
