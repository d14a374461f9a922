// Package scoring реализует стратегии получения результата анализа внешности.
//
// Стратегия — граница подмены: эвристическая таблица по цели пользователя
// и удалённый вызов AI-шлюза взаимозаменяемы и выбираются конфигурацией.
// Любая стратегия обязана возвращать результат, прошедший Normalize.
package scoring

import (
	"context"
	"errors"

	"github.com/lowmaxapp/lowmax/internal/models"
)

// Границы нормализованных оценок.
const (
	MinScore     = 30  // Нижняя граница частных оценок и Overall
	MaxScore     = 100 // Верхняя граница всех оценок
	MinPotential = 90  // Нижняя граница Potential
)

// RationaleCount — фиксированное число сильных и слабых сторон в результате.
const RationaleCount = 3

// Ошибки удалённой стратегии, различимые для пользовательских сообщений.
var (
	// ErrRateLimited — шлюз ответил 429: предложить повторить позже.
	ErrRateLimited = errors.New("scoring: rate limited, try again later")
	// ErrCreditsExhausted — шлюз ответил 402: кредиты исчерпаны.
	ErrCreditsExhausted = errors.New("scoring: credits exhausted")
)

// ScoreRequest — вход стратегии: цель пользователя и фотография.
// Image — raw base64 или data-URL; эвристической стратегии не требуется.
type ScoreRequest struct {
	Goal  string
	Image string
}

// Strategy вычисляет нормализованный результат анализа.
type Strategy interface {
	Score(ctx context.Context, req ScoreRequest) (*models.AnalysisResult, error)
}
