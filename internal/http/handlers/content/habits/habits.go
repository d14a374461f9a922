// Package habits реализует HTTP-обработчик каталога привычек чек-ина.
package habits

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/lowmaxapp/lowmax/internal/content"
	"github.com/lowmaxapp/lowmax/internal/http/response"
)

// Handler отдает каталог привычек.
type Handler struct {
	log *slog.Logger
}

// New создает новый Handler.
func New(log *slog.Logger) *Handler {
	return &Handler{log: log}
}

// ServeHTTP godoc
// @Summary Каталог привычек
// @Description Возвращает привычки ежедневного чек-ина.
// @Tags Content
// @Produce json
// @Success 200 {object} response.Response "Каталог привычек"
// @Router /content/habits [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, response.OKWithData(map[string]any{
		"habits": content.Habits(),
	}))
}
