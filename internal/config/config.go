package config

import (
	"os"
	"time"
)

type Config struct {
	DBPath    string
	HTTPAddr  string
	LogLevel  string
	Env       string // dev|prod
	SentryDSN string
	Location  *time.Location
}

// Load читает конфигурацию из окружения. Обязательных переменных нет:
// инструмент должен запускаться «из коробки» на пустой машине.
func Load() (*Config, error) {
	tz := getenv("TZ", "Asia/Shanghai")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		loc = time.Local
	}

	cfg := &Config{
		DBPath:    getenv("CLASSTRACK_DB", "./data/classtrack.db"),
		HTTPAddr:  getenv("HTTP_ADDR", ":8080"),
		LogLevel:  getenv("LOG_LEVEL", "info"),
		Env:       getenv("ENV", "dev"),
		SentryDSN: os.Getenv("SENTRY_DSN"),
		Location:  loc,
	}
	return cfg, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
