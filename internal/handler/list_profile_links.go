package handler

import (
	"net/http"

	"github.com/avc-dev/counselor-profiles/internal/middleware"
	"go.uber.org/zap"
)

// ListProfileLinks возвращает ссылки на профили всех консультантов. Только для администраторов.
func (h *Handler) ListProfileLinks(w http.ResponseWriter, req *http.Request) {
	links, err := h.usecase.ListProfileLinks(req.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	subject, _ := middleware.AdminSubjectFromContext(req.Context())
	h.logger.Info("profile links generated",
		zap.Int("count", len(links)),
		zap.String("admin", subject),
	)

	h.writeJSON(w, http.StatusOK, links)
}
