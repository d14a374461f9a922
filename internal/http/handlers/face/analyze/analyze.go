// Package analyze реализует HTTP-обработчик функции анализа лица.
//
// Функция без состояния: принимает фотографию в base64, пересылает её
// AI-шлюзу и возвращает сырые оценки как есть. Ответы шлюза кешируются
// по перцептивному хэшу фотографии, кеш опционален.
package analyze

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

	"github.com/lowmaxapp/lowmax/internal/cache"
	"github.com/lowmaxapp/lowmax/internal/gateway"
	"github.com/lowmaxapp/lowmax/internal/http/response"
	"github.com/lowmaxapp/lowmax/internal/imagehash"
	"github.com/lowmaxapp/lowmax/internal/lib/sl"
	"github.com/lowmaxapp/lowmax/internal/scoring"
)

// cacheTTL — время жизни закешированного ответа шлюза.
const cacheTTL = 24 * time.Hour

// Request — тело запроса функции анализа.
type Request struct {
	ImageBase64 string `json:"imageBase64" validate:"required"`
}

// Gateway описывает интерфейс клиента AI-шлюза.
type Gateway interface {
	Analyze(ctx context.Context, imageBase64 string) (scoring.RawResult, error)
}

// Cache описывает методы кеширования ответов шлюза.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
}

// Handler управляет HTTP-запросами функции анализа.
type Handler struct {
	log      *slog.Logger
	gateway  Gateway
	cache    Cache // nil отключает кеширование
	hasher   imagehash.Hasher
	validate *validator.Validate
}

// New создает новый Handler. Nil вместо кеша допустим.
func New(log *slog.Logger, gw Gateway, cache Cache, hasher imagehash.Hasher) *Handler {
	return &Handler{
		log:      log,
		gateway:  gw,
		cache:    cache,
		hasher:   hasher,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Проанализировать фотографию лица
// @Description Пересылает фотографию AI-шлюзу и возвращает сырые оценки внешности.
// @Tags Face
// @Accept json
// @Produce json
// @Param request body Request true "Фотография в base64"
// @Success 200 {object} scoring.RawResult "Сырые оценки"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 402 {object} response.ErrorResponse "Кредиты шлюза исчерпаны"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 429 {object} response.ErrorResponse "Шлюз ограничил частоту запросов"
// @Failure 502 {object} response.ErrorResponse "Ошибка шлюза"
// @Router /analyze-face [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.face.analyze"
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

	cacheKey := h.cacheKey(req.ImageBase64, log)
	if cacheKey != "" {
		var cached scoring.RawResult
		found, err := h.cache.Get(cacheKey, &cached)
		if err != nil {
			log.Warn("cache lookup failed", sl.Err(err))
		}
		if found {
			log.Info("cache hit", slog.String("key", cacheKey))
			render.JSON(w, r, cached)
			return
		}
	}

	raw, err := h.gateway.Analyze(r.Context(), req.ImageBase64)
	if err != nil {
		h.renderError(w, r, log, err)
		return
	}

	if cacheKey != "" {
		if err := h.cache.Set(cacheKey, raw, cacheTTL); err != nil {
			log.Warn("failed to cache result", slog.String("key", cacheKey), sl.Err(err))
		}
	}

	log.Info("analysis forwarded")
	render.JSON(w, r, raw)
}

// cacheKey считает ключ кеша по перцептивному хэшу фотографии.
// Возвращает пустую строку, если кеш выключен или фотография нечитаема.
func (h *Handler) cacheKey(imageBase64 string, log *slog.Logger) string {
	if h.cache == nil {
		return ""
	}
	hash, err := h.hasher.Hash(imageBase64)
	if err != nil {
		log.Warn("failed to hash image, skipping cache", sl.Err(err))
		return ""
	}
	return cache.AnalysisKey(hash)
}

// renderError переводит ошибку шлюза в HTTP-статус и сообщение.
func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, gateway.ErrRateLimited):
		log.Warn("gateway rate limited")
		w.WriteHeader(http.StatusTooManyRequests)
		render.JSON(w, r, response.Error("rate limited, try again later"))
	case errors.Is(err, gateway.ErrCreditsExhausted):
		log.Warn("gateway credits exhausted")
		w.WriteHeader(http.StatusPaymentRequired)
		render.JSON(w, r, response.Error("ai credits exhausted"))
	default:
		log.Error("gateway call failed", sl.Err(err))
		w.WriteHeader(http.StatusBadGateway)
		render.JSON(w, r, response.Error("could not analyze image"))
	}
}
