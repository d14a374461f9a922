package middlewarectx

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"golang.org/x/time/rate"

	"github.com/lowmaxapp/lowmax/internal/http/response"
)

// RateLimitMiddleware ограничивает частоту запросов к функции анализа:
// limit запросов в секунду со всплеском burst. Клиент при 429 показывает
// пользователю предложение повторить позже.
func RateLimitMiddleware(limit rate.Limit, burst int, log *slog.Logger) func(http.Handler) http.Handler {
	limiter := rate.NewLimiter(limit, burst)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				log.Warn("too many requests")
				w.WriteHeader(http.StatusTooManyRequests)
				render.JSON(w, r, response.Error("too many requests"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
