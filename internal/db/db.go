package db

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Leganyst/wellness-catalog/internal/config"
)

var (
	ErrMissingURL = errors.New("database url is not set")
	ErrMissingKey = errors.New("database key is not set")
	ErrInsecure   = errors.New("database url must use a postgres scheme with TLS")
)

var secureSSLModes = map[string]bool{
	"require":     true,
	"verify-ca":   true,
	"verify-full": true,
}

// DSN проверяет настройки и собирает строку подключения, ключ идёт
// паролем. Без sslmode ставим "require".
func DSN(cfg config.RemoteConfig) (string, error) {
	if cfg.URL == "" {
		return "", ErrMissingURL
	}
	if cfg.Key == "" {
		return "", ErrMissingKey
	}

	u, err := url.Parse(cfg.URL)
	if err != nil {
		return "", fmt.Errorf("parse database url: %w", err)
	}
	if (u.Scheme != "postgres" && u.Scheme != "postgresql") || u.Host == "" {
		return "", ErrInsecure
	}

	q := u.Query()
	switch mode := q.Get("sslmode"); {
	case mode == "":
		q.Set("sslmode", "require")
	case !secureSSLModes[mode]:
		return "", fmt.Errorf("%w: sslmode=%s", ErrInsecure, mode)
	}
	u.RawQuery = q.Encode()

	user := "postgres"
	if u.User != nil && u.User.Username() != "" {
		user = u.User.Username()
	}
	u.User = url.UserPassword(user, cfg.Key)

	return u.String(), nil
}

func NewGormDB(cfg config.RemoteConfig) (*gorm.DB, error) {
	dsn, err := DSN(cfg)
	if err != nil {
		return nil, err
	}

	// Без ping: настроенная БД может быть недоступна, чтение деградирует по вызову.
	gormCfg := &gorm.Config{
		Logger:               gormlogger.Default.LogMode(gormlogger.Warn),
		DisableAutomaticPing: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(dsn), gormCfg)
	if err != nil {
		return nil, fmt.Errorf("gorm open: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("db.DB(): %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifeTime > 0 {
		sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifeTime) * time.Minute)
	}

	return db, nil
}
