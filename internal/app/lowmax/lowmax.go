// Package lowmax собирает локальное приложение: хранилище профиля,
// политику квоты, стратегию анализа и HTTP-сервер с маршрутами.
package lowmax

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/lowmaxapp/lowmax/internal/config"
	"github.com/lowmaxapp/lowmax/internal/imagehash"
	"github.com/lowmaxapp/lowmax/internal/quota"
	"github.com/lowmaxapp/lowmax/internal/scoring"
	analysisservice "github.com/lowmaxapp/lowmax/internal/services/analysis"
	checkinservice "github.com/lowmaxapp/lowmax/internal/services/checkin"
	profileservice "github.com/lowmaxapp/lowmax/internal/services/profile"
	"github.com/lowmaxapp/lowmax/internal/storage/profilestore"
)

// App — локальное приложение LowMax.
type App struct {
	server *http.Server
	logger *slog.Logger
}

// New строит приложение по конфигурации.
func New(_ context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	store, err := profilestore.New(cfg.Storage.DataDir, logger)
	if err != nil {
		return nil, fmt.Errorf("init profile store: %w", err)
	}

	policy, err := buildPolicy(cfg.Quota)
	if err != nil {
		return nil, err
	}
	strategy, err := buildStrategy(cfg.Scoring)
	if err != nil {
		return nil, err
	}

	profileService := profileservice.New(store, policy, logger)
	checkinService := checkinservice.New(profileService)
	analysisService := analysisservice.New(profileService, strategy, imagehash.AverageHasher{}, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, profileService, checkinService, analysisService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
	}, nil
}

// Run запускает HTTP-сервер и гасит его по отмене контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		return a.server.Shutdown(timeoutCtx)
	}
}

// buildPolicy выбирает политику квоты по конфигурации.
func buildPolicy(cfg config.Quota) (quota.Policy, error) {
	switch cfg.Policy {
	case "rolling", "":
		return quota.NewRollingWindow(cfg.Limit, cfg.Window()), nil
	case "calendar_week":
		return quota.CalendarWeek{Limit: cfg.Limit}, nil
	default:
		return nil, fmt.Errorf("unknown quota policy: %s", cfg.Policy)
	}
}

// buildStrategy выбирает стратегию анализа по конфигурации.
func buildStrategy(cfg config.Scoring) (scoring.Strategy, error) {
	switch cfg.Strategy {
	case "remote", "":
		return scoring.NewRemote(cfg.AnalyzeURL, cfg.AnalyzeKey, cfg.AnalyzeTimeout), nil
	case "heuristic":
		return scoring.Heuristic{}, nil
	default:
		return nil, fmt.Errorf("unknown scoring strategy: %s", cfg.Strategy)
	}
}
