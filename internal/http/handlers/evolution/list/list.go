// Package list реализует HTTP-обработчик чтения записей эволюции.
package list

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/lowmaxapp/lowmax/internal/http/response"
	"github.com/lowmaxapp/lowmax/internal/models"
)

// Handler управляет HTTP-запросами на чтение записей эволюции.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс контейнера состояния профиля.
type Service interface {
	Get() *models.UserProfile
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список записей эволюции
// @Description Возвращает записи эволюции, новые первыми.
// @Tags Evolution
// @Produce json
// @Success 200 {object} response.Response "Записи эволюции"
// @Router /evolution [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.evolution.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	entries := h.service.Get().Evolution
	log.Info("evolution listed", slog.Int("count", len(entries)))

	render.JSON(w, r, response.OKWithData(map[string]any{
		"evolution": entries,
	}))
}
