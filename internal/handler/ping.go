package handler

import (
	"net/http"

	"go.uber.org/zap"
)

// Ping проверяет доступность справочника консультантов
func (h *Handler) Ping(w http.ResponseWriter, req *http.Request) {
	if h.db == nil {
		h.logger.Error("directory is not configured")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := h.db.Ping(req.Context()); err != nil {
		h.logger.Error("directory ping failed", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}
