package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/avc/quickflip-dashboard/internal/config"
	"github.com/avc/quickflip-dashboard/internal/storage"
	"github.com/avc/quickflip-dashboard/internal/worker"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App представляет приложение
type App struct {
	config     *config.Config
	logger     *zap.Logger
	bridge     storage.Bridge
	router     *chi.Mux
	workerPool *worker.Pool
	server     *http.Server
}

// NewApp создает новое приложение
func NewApp() (*App, error) {
	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Инициализация логгера
	logger, err := initLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	// Инициализация локального хранилища состояния
	bridge, err := storage.OpenSQLite(cfg.StoragePath, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}
	logger.Info("storage opened", zap.String("path", cfg.StoragePath))

	// Инициализация зависимостей
	deps, err := initDependencies(cfg, bridge, logger)
	if err != nil {
		bridge.Close()
		return nil, err
	}

	// Настройка роутера
	router := setupRouter(deps, logger)

	// Создание HTTP сервера
	server := createServer(cfg.RunAddress, router)

	return &App{
		config:     cfg,
		logger:     logger,
		bridge:     bridge,
		router:     router,
		workerPool: deps.workerPool,
		server:     server,
	}, nil
}

// Run запускает приложение
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск worker pool
	a.workerPool.Start(ctx)
	a.logger.Info("worker pool started")

	// Запуск HTTP сервера и ожидание сигнала завершения
	if err := a.runServer(ctx); err != nil {
		return err
	}

	// Graceful shutdown
	a.shutdown(cancel)

	return nil
}
