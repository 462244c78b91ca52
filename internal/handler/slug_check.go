package handler

import "net/http"

// SlugCheck отдает отчет самопроверки slug. Маршрут регистрируется только вне production.
func (h *Handler) SlugCheck(w http.ResponseWriter, req *http.Request) {
	report, err := h.usecase.SlugSelfCheck(req.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, report)
}
