package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config содержит конфигурацию приложения
type Config struct {
	RunAddress     string        // Адрес и порт запуска сервиса
	StoragePath    string        // Путь к файлу локального хранилища состояния
	GatewayAddress string        // Базовый адрес удалённого API QuickFlip
	GatewayAuthKey string        // Статический ключ authkey для запросов к шлюзу
	TokenSecret    string        // Секретный ключ локальных API-токенов
	TokenTTL       time.Duration // Время жизни локального API-токена
	LogLevel       string        // Уровень логирования
	LoginTimeout   time.Duration // Таймаут запроса входа к шлюзу
	SeedDemoData   bool          // Заполнять ли демо-данные при пустом хранилище

	// Конфигурация фонового пересчета показателей
	StatsWorkers      int           // Количество воркеров
	StatsQueueSize    int           // Размер очереди запросов пересчета
	StatsScanInterval time.Duration // Интервал планового пересчета
}

// Load загружает конфигурацию из переменных окружения и флагов
// Приоритет: env переменные > флаги > дефолтные значения
func Load() (*Config, error) {
	cfg := &Config{
		TokenTTL:          24 * time.Hour,
		LogLevel:          "info",
		LoginTimeout:      30 * time.Second,
		SeedDemoData:      true,
		StatsWorkers:      2,
		StatsQueueSize:    16,
		StatsScanInterval: 30 * time.Second,
	}

	// Определяем флаги
	flag.StringVar(&cfg.RunAddress, "a", ":8080", "address and port to run server")
	flag.StringVar(&cfg.StoragePath, "s", "", "path to local state storage file")
	flag.StringVar(&cfg.GatewayAddress, "g", "", "remote gateway base address")
	flag.Parse()

	// Переменные окружения имеют приоритет над флагами
	if envRunAddr, ok := os.LookupEnv("RUN_ADDRESS"); ok {
		cfg.RunAddress = envRunAddr
	}

	if envStoragePath, ok := os.LookupEnv("STORAGE_PATH"); ok {
		cfg.StoragePath = envStoragePath
	}

	if envGatewayAddr, ok := os.LookupEnv("GATEWAY_ADDRESS"); ok {
		cfg.GatewayAddress = envGatewayAddr
	}

	// Ключи безопасности только из env, не из флагов
	if envAuthKey, ok := os.LookupEnv("GATEWAY_AUTH_KEY"); ok {
		cfg.GatewayAuthKey = envAuthKey
	}

	if envTokenSecret, ok := os.LookupEnv("TOKEN_SECRET"); ok {
		cfg.TokenSecret = envTokenSecret
	} else {
		cfg.TokenSecret = "default-secret-key-change-in-production"
	}

	// Уровень логирования
	if envLogLevel, ok := os.LookupEnv("LOG_LEVEL"); ok {
		cfg.LogLevel = envLogLevel
	}

	if envLoginTimeout, ok := os.LookupEnv("LOGIN_TIMEOUT"); ok {
		if timeout, err := time.ParseDuration(envLoginTimeout); err == nil && timeout > 0 {
			cfg.LoginTimeout = timeout
		}
	}

	// Демо-данные заполняются явно и отключаются через окружение
	if envSeed, ok := os.LookupEnv("SEED_DEMO_DATA"); ok {
		if seed, err := strconv.ParseBool(envSeed); err == nil {
			cfg.SeedDemoData = seed
		}
	}

	// Конфигурация пересчета показателей из env
	if envStatsWorkers, ok := os.LookupEnv("STATS_POOL_SIZE"); ok {
		if size, err := strconv.Atoi(envStatsWorkers); err == nil && size > 0 {
			cfg.StatsWorkers = size
		}
	}

	if envStatsQueue, ok := os.LookupEnv("STATS_QUEUE_SIZE"); ok {
		if size, err := strconv.Atoi(envStatsQueue); err == nil && size > 0 {
			cfg.StatsQueueSize = size
		}
	}

	if envScanInterval, ok := os.LookupEnv("STATS_SCAN_INTERVAL"); ok {
		if interval, err := time.ParseDuration(envScanInterval); err == nil && interval > 0 {
			cfg.StatsScanInterval = interval
		}
	}

	// Валидация обязательных параметров
	if cfg.StoragePath == "" {
		return nil, fmt.Errorf("storage path is required (use -s flag or STORAGE_PATH env)")
	}

	if cfg.GatewayAddress == "" {
		return nil, fmt.Errorf("gateway address is required (use -g flag or GATEWAY_ADDRESS env)")
	}

	return cfg, nil
}
