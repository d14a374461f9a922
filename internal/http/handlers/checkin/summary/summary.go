// Package summary реализует HTTP-обработчик сводки чек-инов.
package summary

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/lowmaxapp/lowmax/internal/http/response"
	"github.com/lowmaxapp/lowmax/internal/services/checkin"
)

// Handler управляет HTTP-запросами на сводку чек-инов.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс сервиса метрик чек-инов.
type Service interface {
	Summary(now time.Time) checkin.Summary
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Сводка чек-инов
// @Description Возвращает серию дней, отметки сегодняшнего дня, процент выполнения и последние 7 дней.
// @Tags Checkins
// @Produce json
// @Success 200 {object} response.Response "Сводка чек-инов"
// @Router /checkins/summary [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.checkin.summary"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	sum := h.service.Summary(time.Now())
	log.Info("summary computed", slog.Int("streak", sum.Streak))

	render.JSON(w, r, response.OKWithData(sum))
}
