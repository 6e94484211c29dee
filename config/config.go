// Package config загружает настройки логирования из переменных окружения.
// Используется envconfig для маппинга переменных окружения на поля структуры.
//
// Пакет period сам окружение не читает: вызывающий код решает,
// загружать ли конфигурацию.
//
// Пример:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	period.SetLogger(cfg.NewLogger())
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	log "github.com/sirupsen/logrus"
)

// Prefix — префикс переменных окружения: DATEINTERVAL_LOG_LEVEL и т.д.
const Prefix = "DATEINTERVAL"

// Форматы логов
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config содержит настройки логирования.
type Config struct {
	LogLevel  string `envconfig:"LOG_LEVEL" default:"warn"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`
}

// Validate проверяет значения настроек.
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%s_LOG_LEVEL: %w", Prefix, err)
	}
	switch strings.ToLower(c.LogFormat) {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("%s_LOG_FORMAT должен быть %q или %q, получено %q", Prefix, FormatText, FormatJSON, c.LogFormat)
	}
	return nil
}

// NewLogger создаёт логгер по настройкам.
// Уровень и формат должны пройти Validate; иначе берутся warn и text.
func (c *Config) NewLogger() *log.Logger {
	l := log.New()
	l.SetOutput(os.Stdout)

	if strings.ToLower(c.LogFormat) == FormatJSON {
		l.SetFormatter(&log.JSONFormatter{TimestampFormat: "2006-01-02 15:04:05"})
	} else {
		l.SetFormatter(&log.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		level = log.WarnLevel
	}
	l.SetLevel(level)
	return l
}

// Load читает переменные окружения и заполняет структуру Config.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("не удалось загрузить конфигурацию: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
