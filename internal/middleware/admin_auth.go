package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/avc-dev/counselor-profiles/internal/service"
	"go.uber.org/zap"
)

type adminSubjectKey struct{}

// TokenValidator проверяет административный токен и возвращает его subject
type TokenValidator interface {
	ValidateAdminToken(token string) (string, error)
}

// AdminAuth пропускает только запросы с валидным Bearer токеном роли admin
func AdminAuth(validator TokenValidator, logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				w.Header().Set("WWW-Authenticate", `Bearer realm="admin"`)
				http.Error(w, "Authorization required", http.StatusUnauthorized)
				return
			}

			subject, err := validator.ValidateAdminToken(token)
			switch {
			case err == nil:
			case errors.Is(err, service.ErrAuthDisabled):
				logger.Warn("admin route requested but ADMIN_JWT_SECRET is not set",
					zap.String("uri", r.RequestURI),
				)
				http.Error(w, "Admin access is disabled", http.StatusForbidden)
				return
			case errors.Is(err, service.ErrNotAdmin):
				logger.Warn("non-admin token on admin route", zap.String("uri", r.RequestURI))
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			default:
				logger.Debug("admin token rejected", zap.Error(err))
				w.Header().Set("WWW-Authenticate", `Bearer realm="admin", error="invalid_token"`)
				http.Error(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), adminSubjectKey{}, subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	scheme, token, found := strings.Cut(r.Header.Get("Authorization"), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)
	return token, token != ""
}

// AdminSubjectFromContext возвращает subject проверенного административного токена
func AdminSubjectFromContext(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(adminSubjectKey{}).(string)
	return subject, ok
}
