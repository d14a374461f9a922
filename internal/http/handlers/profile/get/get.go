// Package get реализует HTTP-обработчик чтения профиля пользователя.
package get

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/lowmaxapp/lowmax/internal/http/response"
	"github.com/lowmaxapp/lowmax/internal/models"
)

// Handler управляет HTTP-запросами на чтение профиля.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс контейнера состояния профиля.
type Service interface {
	Get() *models.UserProfile
	IsLoggedIn() bool
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Прочитать профиль
// @Description Возвращает текущий профиль пользователя вместе с флагом входа.
// @Tags Profile
// @Produce json
// @Success 200 {object} response.Response "Профиль пользователя"
// @Router /profile [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.profile.get"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	profile := h.service.Get()
	log.Info("profile loaded", slog.String("goal", profile.Goal))

	render.JSON(w, r, response.OKWithData(map[string]any{
		"profile":  profile,
		"loggedIn": h.service.IsLoggedIn(),
	}))
}
