// Package analyzeface собирает сервер функции анализа лица:
// клиент AI-шлюза, опциональный кеш ответов и HTTP-сервер с маршрутами.
package analyzeface

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/lowmaxapp/lowmax/internal/cache"
	"github.com/lowmaxapp/lowmax/internal/config"
	"github.com/lowmaxapp/lowmax/internal/gateway"
	"github.com/lowmaxapp/lowmax/internal/http/handlers/face/analyze"
	"github.com/lowmaxapp/lowmax/internal/imagehash"
)

// App — сервер функции анализа лица.
type App struct {
	server *http.Server
	logger *slog.Logger
}

// New строит сервер функции по конфигурации. Пустой адрес Redis
// отключает кеширование ответов шлюза.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	gatewayClient := gateway.NewClient(cfg.Gateway.URL, cfg.Gateway.APIKey, cfg.Gateway.Model, cfg.Gateway.TimeoutGW)

	var responseCache analyze.Cache
	if cfg.RedisConnection.AddressRedis != "" {
		cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
		if err != nil {
			return nil, fmt.Errorf("init cache: %w", err)
		}
		responseCache = cacheRedis
	}

	handler := analyze.New(logger, gatewayClient, responseCache, imagehash.AverageHasher{})

	router := chi.NewRouter()
	RegisterRoutes(router, logger, handler, cfg.Gateway.ServeKey)

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
