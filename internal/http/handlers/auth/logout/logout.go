// Package logout реализует HTTP-обработчик выхода из приложения.
package logout

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/lowmaxapp/lowmax/internal/http/response"
)

// Handler управляет HTTP-запросами на выход.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс сервиса профиля для флага входа.
type Service interface {
	SetLoggedIn(loggedIn bool)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Выйти из приложения
// @Description Сбрасывает персистентный флаг входа. Данные профиля не трогаются.
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Response "Выход выполнен"
// @Router /auth/logout [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.logout"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	h.service.SetLoggedIn(false)
	log.Info("user logged out")

	render.JSON(w, r, response.OKWithData(map[string]any{
		"loggedIn": false,
	}))
}
