package analyzeface

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/lowmaxapp/lowmax/internal/http/handlers/face/analyze"
	"github.com/lowmaxapp/lowmax/internal/http/middlewarectx"
)

// Ограничение частоты запросов к функции: один запрос в секунду
// со всплеском до трёх.
const (
	rateLimit = rate.Limit(1)
	rateBurst = 3
)

// RegisterRoutes регистрирует маршруты функции анализа.
func RegisterRoutes(r chi.Router, logger *slog.Logger, handler *analyze.Handler, serveKey string) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
	)

	r.Route("/functions/v1", func(r chi.Router) {
		r.Use(middlewarectx.APIKeyMiddleware(serveKey, logger))
		r.Use(middlewarectx.RateLimitMiddleware(rateLimit, rateBurst, logger))
		r.Post("/analyze-face", handler.ServeHTTP)
	})

	r.Handle("/metrics", promhttp.Handler())
}
