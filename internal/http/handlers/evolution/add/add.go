// Package add реализует HTTP-обработчик добавления записи эволюции.
//
// Handler принимает пару фотографий "до/после" с подписью периода,
// валидирует её и сохраняет через сервис профиля. Фотографии записи
// в хранилище не попадают.
package add

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

// Handler управляет HTTP-запросами на добавление записи эволюции.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс сервиса профиля для записей эволюции.
type Service interface {
	AddEvolution(req models.DummyEvolutionEntry) models.EvolutionEntry
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
// @Summary Добавить запись эволюции
// @Description Сохраняет пару фотографий "до/после" с подписью периода. Возвращает созданную запись.
// @Tags Evolution
// @Accept json
// @Produce json
// @Param request body models.DummyEvolutionEntry true "Пара фотографий и период"
// @Success 200 {object} response.Response "Созданная запись"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Router /evolution [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.evolution.add"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyEvolutionEntry
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

	entry := h.service.AddEvolution(req)
	log.Info("evolution entry added", slog.String("id", entry.ID))

	render.JSON(w, r, response.OKWithData(entry))
}
