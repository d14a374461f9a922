package middlewarectx

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAPIKeyMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		key            string
		authHeader     string
		expectedStatus int
	}{
		{
			name:           "валидный ключ",
			key:            "secret",
			authHeader:     "Bearer secret",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "неверный ключ",
			key:            "secret",
			authHeader:     "Bearer wrong",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "нет заголовка",
			key:            "secret",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "пустой ключ отключает проверку",
			key:            "",
			authHeader:     "",
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := APIKeyMiddleware(tt.key, testLogger())(okHandler())

			req := httptest.NewRequest(http.MethodPost, "/analyze-face", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	handler := RateLimitMiddleware(rate.Limit(1), 2, testLogger())(okHandler())

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/analyze-face", nil))
		codes = append(codes, rr.Code)
	}

	assert.Equal(t, http.StatusOK, codes[0])
	assert.Equal(t, http.StatusOK, codes[1])
	assert.Equal(t, http.StatusTooManyRequests, codes[2])
}
