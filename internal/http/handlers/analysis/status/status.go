// Package status реализует HTTP-обработчик статуса квоты анализов.
package status

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/lowmaxapp/lowmax/internal/http/response"
)

// Handler управляет HTTP-запросами на статус квоты.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс оркестратора анализа для статуса квоты.
type Service interface {
	Status(now time.Time) (bool, int)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Статус квоты анализов
// @Description Сообщает, доступен ли новый анализ, и остаток квоты в текущем окне.
// @Tags Analysis
// @Produce json
// @Success 200 {object} response.Response "Статус квоты"
// @Router /analysis/status [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.analysis.status"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	can, remaining := h.service.Status(time.Now())
	log.Info("quota status", slog.Bool("can_analyze", can), slog.Int("remaining", remaining))

	render.JSON(w, r, response.OKWithData(map[string]any{
		"canAnalyze": can,
		"remaining":  remaining,
	}))
}
