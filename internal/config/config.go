// Package config предоставляет структуры и функцию для парсинга и загрузки конфига.
package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config — общая структура для хранения настроек обоих сервисов.
type Config struct {
	Env             string `yaml:"env" env-default:"local"`
	HTTPServer      `yaml:"http_server"`
	Storage         `yaml:"storage"`
	Quota           `yaml:"quota"`
	Scoring         `yaml:"scoring"`
	Gateway         `yaml:"gateway"`
	RedisConnection `yaml:"redis_connection"`
}

// HTTPServer — структура для настройки сервера.
type HTTPServer struct {
	AddressHTTP string        `yaml:"addresshttp" env-default:"localhost:8080"`
	TimeoutHTTP time.Duration `yaml:"timeouthttp" env-default:"90s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// Storage — настройки локального key-value хранилища профиля.
type Storage struct {
	DataDir string `yaml:"data_dir" env-default:"./data"`
}

// Quota — настройки политики ограничения анализов.
// Policy: rolling — скользящее окно (основная), calendar_week — устаревший
// счётчик календарной недели.
type Quota struct {
	Policy     string `yaml:"policy" env-default:"rolling"`
	Limit      int    `yaml:"limit" env-default:"3"`
	WindowDays int    `yaml:"window_days" env-default:"7"`
}

// Scoring — выбор и настройки стратегии анализа.
// Strategy: remote — функция analyze-face (основная), heuristic — таблица по цели.
type Scoring struct {
	Strategy       string        `yaml:"strategy" env-default:"remote"`
	AnalyzeURL     string        `yaml:"analyze_url" env-default:"http://localhost:8081/functions/v1/analyze-face"`
	AnalyzeKey     string        `yaml:"analyze_key" env:"ANALYZE_FUNCTION_KEY"`
	AnalyzeTimeout time.Duration `yaml:"analyze_timeout" env-default:"60s"`
}

// Gateway — настройки подключения функции analyze-face к внешнему AI-шлюзу.
type Gateway struct {
	URL       string        `yaml:"url" env-default:"https://ai.gateway.lovable.dev/v1/chat/completions"`
	APIKey    string        `yaml:"api_key" env:"GATEWAY_API_KEY"`
	Model     string        `yaml:"model" env-default:"google/gemini-2.5-flash"`
	TimeoutGW time.Duration `yaml:"timeoutgw" env-default:"60s"`
	ServeKey  string        `yaml:"serve_key" env:"ANALYZE_FUNCTION_KEY"`
}

// RedisConnection — структура для настройки подключения к redis.
// Пустой адрес отключает кеш ответов функции analyze-face.
type RedisConnection struct {
	AddressRedis string        `yaml:"addressredis"`
	Password     string        `yaml:"password"`
	User         string        `yaml:"user"`
	DB           int           `yaml:"db"`
	MaxRetries   int           `yaml:"max_retries" env-default:"3"`
	DialTimeout  time.Duration `yaml:"dial_timeout" env-default:"5s"`
	TimeoutRedis time.Duration `yaml:"timeoutredis" env-default:"3s"`
}

// MustLoad загружает конфиг по пути из CONFIG_PATH и завершает процесс при ошибке.
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("file: %s - does not exist", configPath)
	}
	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return &cfg
}

// Window возвращает ширину скользящего окна квоты.
func (q Quota) Window() time.Duration {
	return time.Duration(q.WindowDays) * 24 * time.Hour
}
