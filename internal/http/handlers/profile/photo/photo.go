// Package photo реализует HTTP-обработчик записи фотографии профиля.
//
// Handler принимает слот и ссылку на фотографию (data-URL). Null в поле
// photo очищает слот. Фотографии живут только в памяти процесса:
// в хранилище профиля они не попадают.
package photo

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

// Request — тело запроса записи фотографии.
type Request struct {
	Slot  string  `json:"slot" validate:"required,oneof=front leftProfile rightProfile"`
	Photo *string `json:"photo"`
}

// Handler управляет HTTP-запросами на запись фотографий.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс сервиса профиля для записи фотографии.
type Service interface {
	SetPhoto(slot string, photo *string) error
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
// @Summary Записать фотографию профиля
// @Description Сохраняет ссылку на фотографию в слот front, leftProfile или rightProfile. Null очищает слот.
// @Tags Profile
// @Accept json
// @Produce json
// @Param request body Request true "Слот и фотография"
// @Success 200 {object} response.Response "Фотография записана"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Router /profile/photo [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.profile.photo"
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

	if err := h.service.SetPhoto(req.Slot, req.Photo); err != nil {
		log.Error("failed to set photo", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.Error("unknown photo slot"))
		return
	}

	log.Info("photo updated", slog.String("slot", req.Slot), slog.Bool("cleared", req.Photo == nil))
	render.JSON(w, r, response.OK())
}
