package lowmax

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/lowmaxapp/lowmax/internal/http/handlers/analysis/run"
	"github.com/lowmaxapp/lowmax/internal/http/handlers/analysis/status"
	"github.com/lowmaxapp/lowmax/internal/http/handlers/auth/login"
	"github.com/lowmaxapp/lowmax/internal/http/handlers/auth/logout"
	"github.com/lowmaxapp/lowmax/internal/http/handlers/checkin/save"
	"github.com/lowmaxapp/lowmax/internal/http/handlers/checkin/summary"
	"github.com/lowmaxapp/lowmax/internal/http/handlers/content/goals"
	"github.com/lowmaxapp/lowmax/internal/http/handlers/content/guides"
	"github.com/lowmaxapp/lowmax/internal/http/handlers/content/habits"
	"github.com/lowmaxapp/lowmax/internal/http/handlers/content/recommendations"
	"github.com/lowmaxapp/lowmax/internal/http/handlers/evolution/add"
	"github.com/lowmaxapp/lowmax/internal/http/handlers/evolution/list"
	"github.com/lowmaxapp/lowmax/internal/http/handlers/profile/get"
	"github.com/lowmaxapp/lowmax/internal/http/handlers/profile/goal"
	"github.com/lowmaxapp/lowmax/internal/http/handlers/profile/photo"
	"github.com/lowmaxapp/lowmax/internal/http/handlers/profile/resetphotos"
	analysisservice "github.com/lowmaxapp/lowmax/internal/services/analysis"
	checkinservice "github.com/lowmaxapp/lowmax/internal/services/checkin"
	profileservice "github.com/lowmaxapp/lowmax/internal/services/profile"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, profileService *profileservice.Service, checkinService *checkinservice.Service, analysisService *analysisservice.Service) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", login.New(logger, profileService).ServeHTTP)
		r.Post("/auth/logout", logout.New(logger, profileService).ServeHTTP)

		r.Get("/profile", get.New(logger, profileService).ServeHTTP)
		r.Put("/profile/goal", goal.New(logger, profileService).ServeHTTP)
		r.Put("/profile/photo", photo.New(logger, profileService).ServeHTTP)
		r.Post("/profile/photos/reset", resetphotos.New(logger, profileService).ServeHTTP)

		r.Post("/checkins", save.New(logger, profileService).ServeHTTP)
		r.Get("/checkins/summary", summary.New(logger, checkinService).ServeHTTP)

		r.Post("/evolution", add.New(logger, profileService).ServeHTTP)
		r.Get("/evolution", list.New(logger, profileService).ServeHTTP)

		r.Post("/analysis", run.New(logger, analysisService).ServeHTTP)
		r.Get("/analysis/status", status.New(logger, analysisService).ServeHTTP)

		r.Get("/content/goals", goals.New(logger).ServeHTTP)
		r.Get("/content/habits", habits.New(logger).ServeHTTP)
		r.Get("/content/guides", guides.New(logger).ServeHTTP)
		r.Get("/content/guides/{id}", guides.New(logger).ByID)
		r.Get("/content/recommendations", recommendations.New(logger, profileService).ServeHTTP)
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
