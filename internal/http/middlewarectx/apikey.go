// Package middlewarectx содержит HTTP middleware функции анализа:
// проверку ключа в заголовке Authorization и ограничение частоты запросов.
package middlewarectx

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/lowmaxapp/lowmax/internal/http/response"
)

// APIKeyMiddleware возвращает middleware, проверяющий ключ функции анализа
// в заголовке Authorization: Bearer <key>. Пустой настроенный ключ
// отключает проверку: локальный запуск без секретов.
func APIKeyMiddleware(key string, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.APIKeyMiddleware"

			if key == "" {
				next.ServeHTTP(w, r)
				return
			}

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				log.Error("missing or invalid authorization header")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("missing or invalid authorization header"))
				return
			}
			got := strings.TrimPrefix(authHeader, "Bearer ")
			if subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
				log.Error("invalid api key")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid api key"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
