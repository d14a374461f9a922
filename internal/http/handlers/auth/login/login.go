// Package login реализует HTTP-обработчик симулированного входа.
//
// Handler проверяет только форму данных: адрес почты и непустой пароль.
// Учётные данные никуда не отправляются и не сохраняются, успех лишь
// взводит персистентный флаг входа.
package login

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/lowmaxapp/lowmax/internal/http/response"
	"github.com/lowmaxapp/lowmax/internal/lib/sl"
)

// Request — тело запроса входа.
type Request struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Handler управляет HTTP-запросами на вход.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс сервиса профиля для флага входа.
type Service interface {
	SetLoggedIn(loggedIn bool)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Войти в приложение
// @Description Симулированный вход: проверяется только форма почты и пароля, затем взводится флаг входа.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body Request true "Почта и пароль"
// @Success 200 {object} response.Response "Вход выполнен"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Router /auth/login [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.login"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	h.service.SetLoggedIn(true)
	log.Info("user logged in")

	render.JSON(w, r, response.OKWithData(map[string]any{
		"loggedIn": true,
	}))
}
