// Package recommendations реализует HTTP-обработчик персональных рекомендаций.
//
// Рекомендации строятся по оценкам последнего анализа: каждая частная
// оценка ниже порога включает свой тематический блок.
package recommendations

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/lowmaxapp/lowmax/internal/content"
	"github.com/lowmaxapp/lowmax/internal/http/response"
	"github.com/lowmaxapp/lowmax/internal/models"
)

// Handler управляет HTTP-запросами на рекомендации.
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
// @Summary Персональные рекомендации
// @Description Возвращает блоки рекомендаций по оценкам последнего анализа. Список никогда не пуст.
// @Tags Content
// @Produce json
// @Success 200 {object} response.Response "Блоки рекомендаций"
// @Router /content/recommendations [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.content.recommendations"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	recs := content.Recommendations(h.service.Get().Scores)
	log.Info("recommendations built", slog.Int("blocks", len(recs)))

	render.JSON(w, r, response.OKWithData(map[string]any{
		"recommendations": recs,
	}))
}
