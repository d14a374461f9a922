// Package gateway реализует клиент внешнего AI-шлюза для анализа фотографий.
// Шлюз — непрозрачный внешний коллаборатор: один запрос с фотографией,
// в ответе — JSON с оценками, возможно обёрнутый в markdown.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/lowmaxapp/lowmax/internal/scoring"
)

// Ошибки шлюза, транслируемые функцией analyze-face в HTTP-статусы.
var (
	// ErrRateLimited — шлюз ответил 429.
	ErrRateLimited = errors.New("gateway: rate limited")
	// ErrCreditsExhausted — шлюз ответил 402.
	ErrCreditsExhausted = errors.New("gateway: credits exhausted")
	// ErrEmptyResponse — в ответе шлюза нет содержимого.
	ErrEmptyResponse = errors.New("gateway: empty response")
)

// Client — клиент chat-completions API шлюза.
type Client struct {
	apiURL     string
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewClient создаёт клиент шлюза.
func NewClient(apiURL, apiKey, model string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		apiURL:     apiURL,
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Analyze отправляет фотографию шлюзу и возвращает сырые оценки.
// Принимает как raw base64, так и data-URL. Ответ шлюза может быть
// обёрнут в markdown: из содержимого извлекается первый JSON-объект.
func (c *Client) Analyze(ctx context.Context, imageBase64 string) (scoring.RawResult, error) {
	const op = "gateway.Analyze"

	imageDataURL := imageBase64
	if !strings.HasPrefix(imageDataURL, "data:") {
		imageDataURL = "data:image/jpeg;base64," + imageBase64
	}

	payload := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: []contentPart{
				{Type: "text", Text: userPrompt},
				{Type: "image_url", ImageURL: &imageURL{URL: imageDataURL}},
			}},
		},
		Temperature: 0.7,
		MaxTokens:   1024,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return scoring.RawResult{}, fmt.Errorf("%s: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return scoring.RawResult{}, fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return scoring.RawResult{}, fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return scoring.RawResult{}, ErrRateLimited
	case resp.StatusCode == http.StatusPaymentRequired:
		return scoring.RawResult{}, ErrCreditsExhausted
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		errText, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return scoring.RawResult{}, fmt.Errorf("%s: unexpected status %s: %s", op, resp.Status, errText)
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return scoring.RawResult{}, fmt.Errorf("%s: decode response: %w", op, err)
	}
	if len(chatResp.Choices) == 0 || chatResp.Choices[0].Message.Content == "" {
		return scoring.RawResult{}, ErrEmptyResponse
	}

	raw, err := extractJSON(chatResp.Choices[0].Message.Content)
	if err != nil {
		return scoring.RawResult{}, fmt.Errorf("%s: %w", op, err)
	}
	return raw, nil
}

// extractJSON разбирает JSON-объект из содержимого ответа модели,
// срезая возможную markdown-обёртку вокруг первого объекта.
func extractJSON(content string) (scoring.RawResult, error) {
	var raw scoring.RawResult

	candidate := content
	if start, end := strings.Index(content, "{"), strings.LastIndex(content, "}"); start >= 0 && end > start {
		candidate = content[start : end+1]
	}
	if err := json.Unmarshal([]byte(candidate), &raw); err != nil {
		return scoring.RawResult{}, fmt.Errorf("parse model content: %w", err)
	}
	return raw, nil
}
