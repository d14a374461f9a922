package scoring

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/lowmaxapp/lowmax/internal/models"
)

// Remote — основная стратегия: вызывает функцию analyze-face по HTTP,
// передавая фотографию в base64, и нормализует полученный JSON.
// При сбое вызова результат не возвращается вовсе: частичные оценки
// в профиль не попадают.
type Remote struct {
	apiURL     string
	apiKey     string
	httpClient *http.Client
}

// NewRemote создаёт удалённую стратегию анализа.
func NewRemote(apiURL, apiKey string, timeout time.Duration) *Remote {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Remote{
		apiURL:     apiURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type analyzeRequest struct {
	ImageBase64 string `json:"imageBase64"`
}

// Score отправляет фотографию функции analyze-face и возвращает
// нормализованный результат. Ответы 429 и 402 транслируются в
// ErrRateLimited и ErrCreditsExhausted для пользовательских сообщений.
func (s *Remote) Score(ctx context.Context, req ScoreRequest) (*models.AnalysisResult, error) {
	const op = "scoring.Remote.Score"

	body, err := json.Marshal(analyzeRequest{ImageBase64: req.Image})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+s.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, ErrRateLimited
	case resp.StatusCode == http.StatusPaymentRequired:
		return nil, ErrCreditsExhausted
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, fmt.Errorf("%s: unexpected status: %s", op, resp.Status)
	}

	// Отсутствующие поля ответа получают значения по умолчанию в Normalize;
	// полностью нечитаемый JSON — повторяемая ошибка без мутации состояния.
	var raw RawResult
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%s: decode response: %w", op, err)
	}
	return Normalize(raw), nil
}
