// Package resetphotos реализует HTTP-обработчик очистки всех фотографий профиля.
package resetphotos

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/lowmaxapp/lowmax/internal/http/response"
)

// Handler управляет HTTP-запросами на очистку фотографий.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс сервиса профиля для очистки фотографий.
type Service interface {
	ResetPhotos()
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Очистить фотографии профиля
// @Description Убирает ссылки на фотографии из всех трёх слотов.
// @Tags Profile
// @Produce json
// @Success 200 {object} response.Response "Фотографии очищены"
// @Router /profile/photos/reset [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.profile.resetphotos"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	h.service.ResetPhotos()
	log.Info("photos reset")

	render.JSON(w, r, response.OK())
}
