// Package save реализует HTTP-обработчик сохранения чек-ина.
//
// Handler принимает дату и список привычек, валидирует их и перезаписывает
// отметки дня через сервис профиля. Пустой список очищает день.
package save

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/lowmaxapp/lowmax/internal/http/response"
	"github.com/lowmaxapp/lowmax/internal/lib/sl"
	"github.com/lowmaxapp/lowmax/internal/models"
)

// Handler управляет HTTP-запросами на сохранение чек-ина.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс сервиса профиля для записи чек-ина.
type Service interface {
	AddCheckin(date string, habitIDs []string) error
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
// @Summary Сохранить чек-ин
// @Description Перезаписывает отметки привычек за день. Пустой список очищает день.
// @Tags Checkins
// @Accept json
// @Produce json
// @Param request body models.DummyCheckin true "Дата и привычки"
// @Success 200 {object} response.Response "Чек-ин сохранён"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации или неизвестная привычка"
// @Router /checkins [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.checkin.save"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyCheckin
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

	if err := h.service.AddCheckin(req.Date, req.Habits); err != nil {
		log.Error("failed to save checkin", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.Error("unknown habit"))
		return
	}

	log.Info("checkin saved", slog.String("date", req.Date))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"date":   req.Date,
		"habits": req.Habits,
	}))
}
