package run

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/lowmaxapp/lowmax/internal/models"
	"github.com/lowmaxapp/lowmax/internal/scoring"
	"github.com/lowmaxapp/lowmax/internal/services/analysis"
)

// MockService реализует интерфейс run.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Run(ctx context.Context, req analysis.Request, now time.Time) (*analysis.Result, error) {
	args := m.Called(ctx, req, now)
	if res := args.Get(0); res != nil {
		return res.(*analysis.Result), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestRunHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешный анализ",
			body: `{"front":"data:image/png;base64,AAAA"}`,
			setupMock: func(m *MockService) {
				result := &analysis.Result{
					Scores:    &models.AnalysisResult{Overall: 78, Potential: 95},
					Remaining: 2,
				}
				m.On("Run", mock.Anything, mock.Anything, mock.Anything).Return(result, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"remaining":2`,
		},
		{
			name:           "нет фронтальной фотографии",
			body:           `{"leftProfile":"data:image/png;base64,AAAA"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field Front is a required field`,
		},
		{
			name: "квота исчерпана",
			body: `{"front":"data:image/png;base64,AAAA"}`,
			setupMock: func(m *MockService) {
				m.On("Run", mock.Anything, mock.Anything, mock.Anything).Return(nil, analysis.ErrQuotaExceeded)
			},
			expectedStatus: http.StatusTooManyRequests,
			expectedBody:   `"error":"weekly analysis limit reached"`,
		},
		{
			name: "повторная фотография",
			body: `{"front":"data:image/png;base64,AAAA"}`,
			setupMock: func(m *MockService) {
				m.On("Run", mock.Anything, mock.Anything, mock.Anything).Return(nil, analysis.ErrDuplicatePhoto)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `"error":"photo already analyzed, upload a new one"`,
		},
		{
			name: "кредиты шлюза исчерпаны",
			body: `{"front":"data:image/png;base64,AAAA"}`,
			setupMock: func(m *MockService) {
				m.On("Run", mock.Anything, mock.Anything, mock.Anything).Return(nil, scoring.ErrCreditsExhausted)
			},
			expectedStatus: http.StatusPaymentRequired,
			expectedBody:   `"error":"ai credits exhausted"`,
		},
		{
			name: "прочая ошибка шлюза",
			body: `{"front":"data:image/png;base64,AAAA"}`,
			setupMock: func(m *MockService) {
				m.On("Run", mock.Anything, mock.Anything, mock.Anything).Return(nil, assert.AnError)
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `"error":"could not analyze photos"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/analysis", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.expectedBody)
			mockService.AssertExpectations(t)
		})
	}
}
