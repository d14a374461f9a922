// Package run реализует HTTP-обработчик проведения анализа внешности.
//
// Handler принимает фотографии, запускает оркестрацию анализа и
// переводит ожидаемые отказы в различимые HTTP-статусы: исчерпанную
// квоту, повторную фотографию и отказы AI-шлюза.
package run

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/lowmaxapp/lowmax/internal/http/response"
	"github.com/lowmaxapp/lowmax/internal/lib/sl"
	"github.com/lowmaxapp/lowmax/internal/scoring"
	"github.com/lowmaxapp/lowmax/internal/services/analysis"
)

// Request — тело запроса анализа. Фронтальная фотография обязательна.
type Request struct {
	Front        string `json:"front" validate:"required"`
	LeftProfile  string `json:"leftProfile"`
	RightProfile string `json:"rightProfile"`
}

// Handler управляет HTTP-запросами на проведение анализа.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс оркестратора анализа.
type Service interface {
	Run(ctx context.Context, req analysis.Request, now time.Time) (*analysis.Result, error)
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
// @Summary Провести анализ внешности
// @Description Запускает анализ по фотографиям. Возвращает оценки и остаток недельной квоты.
// @Tags Analysis
// @Accept json
// @Produce json
// @Param request body Request true "Фотографии для анализа"
// @Success 200 {object} response.Response "Результат анализа"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 402 {object} response.ErrorResponse "Кредиты AI-шлюза исчерпаны"
// @Failure 409 {object} response.ErrorResponse "Фотография уже анализировалась"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 429 {object} response.ErrorResponse "Квота анализов исчерпана"
// @Failure 502 {object} response.ErrorResponse "Ошибка AI-шлюза"
// @Router /analysis [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.analysis.run"
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

	result, err := h.service.Run(r.Context(), analysis.Request{
		Front:        req.Front,
		LeftProfile:  req.LeftProfile,
		RightProfile: req.RightProfile,
	}, time.Now())
	if err != nil {
		h.renderError(w, r, log, err)
		return
	}

	log.Info("analysis completed", slog.Int("remaining", result.Remaining))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"scores":    result.Scores,
		"remaining": result.Remaining,
	}))
}

// renderError переводит ошибку оркестрации в HTTP-статус и сообщение.
func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, analysis.ErrQuotaExceeded):
		log.Info("analysis quota exceeded")
		w.WriteHeader(http.StatusTooManyRequests)
		render.JSON(w, r, response.Error("weekly analysis limit reached"))
	case errors.Is(err, analysis.ErrDuplicatePhoto):
		log.Info("duplicate photo")
		w.WriteHeader(http.StatusConflict)
		render.JSON(w, r, response.Error("photo already analyzed, upload a new one"))
	case errors.Is(err, analysis.ErrNoPhoto):
		log.Info("front photo missing")
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.Error("front photo is required"))
	case errors.Is(err, scoring.ErrRateLimited):
		log.Warn("gateway rate limited")
		w.WriteHeader(http.StatusTooManyRequests)
		render.JSON(w, r, response.Error("too many requests, try again later"))
	case errors.Is(err, scoring.ErrCreditsExhausted):
		log.Warn("gateway credits exhausted")
		w.WriteHeader(http.StatusPaymentRequired)
		render.JSON(w, r, response.Error("ai credits exhausted"))
	default:
		log.Error("analysis failed", sl.Err(err))
		w.WriteHeader(http.StatusBadGateway)
		render.JSON(w, r, response.Error("could not analyze photos"))
	}
}
