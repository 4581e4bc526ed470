package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// RemoteConfig: параметры удалённой БД. Читаются из env один раз при старте.
type RemoteConfig struct {
	URL             string
	Key             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifeTime int // минут
}

type Config struct {
	Remote RemoteConfig

	// Корень деплоя, статические данные лежат в BasePath/data.
	BasePath string
	// Сюда уходит весь массив услуг, когда удалённой БД нет.
	// Пусто: ничего не сохраняем.
	WriteEndpoint string

	HTTPAddr string
	GRPCAddr string

	AutoMigrate    bool
	SeedFromStatic bool

	LogLevel  slog.Level
	LogFormat string
}

func Load() (*Config, error) {
	cfg := &Config{
		Remote: RemoteConfig{
			URL:             strings.TrimSpace(os.Getenv("CATALOG_DB_URL")),
			Key:             strings.TrimSpace(os.Getenv("CATALOG_DB_KEY")),
			MaxOpenConns:    getEnvInt("CATALOG_DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getEnvInt("CATALOG_DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifeTime: getEnvInt("CATALOG_DB_CONN_MAX_LIFETIME_MIN", 30),
		},
		BasePath:       getEnv("CATALOG_BASE_PATH", "."),
		WriteEndpoint:  getEnv("CATALOG_WRITE_ENDPOINT", ""),
		HTTPAddr:       getEnv("CATALOG_HTTP_ADDR", ":8080"),
		GRPCAddr:       getEnv("CATALOG_GRPC_ADDR", ":50051"),
		AutoMigrate:    getEnvBool("CATALOG_AUTO_MIGRATE", false),
		SeedFromStatic: getEnvBool("CATALOG_SEED_FROM_STATIC", false),
		LogFormat:      getEnv("CATALOG_LOG_FORMAT", "json"),
	}

	level, err := parseLevel(getEnv("CATALOG_LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = level

	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("invalid config: http address must not be empty")
	}
	if cfg.LogFormat != "json" && cfg.LogFormat != "text" {
		return nil, fmt.Errorf("invalid config: log format %q (want json or text)", cfg.LogFormat)
	}

	return cfg, nil
}

// NewLogger собирает логгер процесса по cfg.
func (c *Config) NewLogger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.LogLevel}
	if c.LogFormat == "text" {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid config: log level %q: %w", s, err)
	}
	return l, nil
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}
