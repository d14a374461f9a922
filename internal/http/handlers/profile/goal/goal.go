// Package goal реализует HTTP-обработчик смены цели эволюции.
//
// Handler принимает JSON-запрос с идентификатором цели, валидирует его
// по каталогу целей и сохраняет через сервис профиля.
package goal

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

// Request — тело запроса смены цели. Пустая цель сбрасывает выбор.
type Request struct {
	Goal string `json:"goal"`
}

// Handler управляет HTTP-запросами на смену цели.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс сервиса профиля для смены цели.
type Service interface {
	SetGoal(goal string) error
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
// @Summary Установить цель эволюции
// @Description Сохраняет выбранную цель пользователя: face, skin, posture или general.
// @Tags Profile
// @Accept json
// @Produce json
// @Param request body Request true "Идентификатор цели"
// @Success 200 {object} response.Response "Цель сохранена"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 422 {object} response.ErrorResponse "Неизвестная цель"
// @Router /profile/goal [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.profile.goal"
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

	if err := h.service.SetGoal(req.Goal); err != nil {
		log.Error("failed to set goal", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.Error("unknown goal"))
		return
	}

	log.Info("goal updated", slog.String("goal", req.Goal))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"goal": req.Goal,
	}))
}
