// Package goals реализует HTTP-обработчик каталога целей онбординга.
package goals

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/lowmaxapp/lowmax/internal/content"
	"github.com/lowmaxapp/lowmax/internal/http/response"
)

// Handler отдает каталог целей.
type Handler struct {
	log *slog.Logger
}

// New создает новый Handler.
func New(log *slog.Logger) *Handler {
	return &Handler{log: log}
}

// ServeHTTP godoc
// @Summary Каталог целей
// @Description Возвращает цели эволюции, доступные на онбординге.
// @Tags Content
// @Produce json
// @Success 200 {object} response.Response "Каталог целей"
// @Router /content/goals [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, response.OKWithData(map[string]any{
		"goals": content.Goals(),
	}))
}
