// Package guides реализует HTTP-обработчики каталога гайдов:
// список всех гайдов и чтение одного по идентификатору в URL.
package guides

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/lowmaxapp/lowmax/internal/content"
	"github.com/lowmaxapp/lowmax/internal/http/response"
)

// Handler отдает каталог гайдов.
type Handler struct {
	log *slog.Logger
}

// New создает новый Handler.
func New(log *slog.Logger) *Handler {
	return &Handler{log: log}
}

// ServeHTTP godoc
// @Summary Каталог гайдов
// @Description Возвращает все обучающие гайды.
// @Tags Content
// @Produce json
// @Success 200 {object} response.Response "Каталог гайдов"
// @Router /content/guides [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, response.OKWithData(map[string]any{
		"guides": content.Guides(),
	}))
}

// ByID godoc
// @Summary Прочитать гайд
// @Description Возвращает один гайд по идентификатору.
// @Tags Content
// @Produce json
// @Param id path string true "Идентификатор гайда"
// @Success 200 {object} response.Response "Гайд"
// @Failure 404 {object} response.ErrorResponse "Гайд не найден"
// @Router /content/guides/{id} [get]
func (h *Handler) ByID(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.content.guides"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")
	guide, ok := content.GuideByID(id)
	if !ok {
		log.Info("guide not found", slog.String("id", id))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("guide not found"))
		return
	}

	render.JSON(w, r, response.OKWithData(guide))
}
