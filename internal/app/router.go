package app

import (
	"github.com/avc-dev/counselor-profiles/internal/config"
	"github.com/avc-dev/counselor-profiles/internal/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// newRouter создает и настраивает роутер приложения
func newRouter(deps *dependencies, logger *zap.Logger, cfg *config.Config) *chi.Mux {
	h := deps.handler
	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Logger(logger))
	r.Use(chimiddleware.Timeout(cfg.RequestTimeout))
	r.Use(middleware.Gzip(logger))

	// Public routes
	r.Get("/ping", h.Ping)
	r.Get("/profile/{slug}", h.RedirectProfile)
	r.Get("/profile/{slug}/overview", h.GetProfileOverview)
	r.Get("/api/counselors/{id}/slug", h.GetCounselorSlug)

	// Admin routes - требуют Bearer токен с ролью admin
	r.With(middleware.AdminAuth(deps.auth, logger)).Get("/api/admin/profile-links", h.ListProfileLinks)

	// Самопроверка slug не публикуется в production
	if !cfg.IsProduction() {
		r.Get("/api/debug/slug-check", h.SlugCheck)
	}

	return r
}
