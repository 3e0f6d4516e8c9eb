package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// LoggerConfig holds configuration for the logger.
type LoggerConfig struct {
	Level  string `env:"TANUCFG_LOG_LEVEL"`
	Format string `env:"TANUCFG_LOG_FORMAT"`
}

// ConfigFromEnv reads LoggerConfig from TANUCFG_LOG_LEVEL and TANUCFG_LOG_FORMAT.
// Unset variables leave the fields empty, which select the defaults.
func ConfigFromEnv() (LoggerConfig, error) {
	var config LoggerConfig

	err := env.Parse(&config)
	if err != nil {
		return LoggerConfig{}, fmt.Errorf("error getting logger env configs: %w", err)
	}

	return config, nil
}

// NewLogger creates a new slog.Logger writing to w.
// Format "text" selects a text handler, anything else JSON.
// The level is parsed from the config; defaults to INFO if invalid or empty.
func NewLogger(config LoggerConfig, w io.Writer) *slog.Logger {
	options := &slog.HandlerOptions{
		AddSource:   false,
		Level:       parseLevel(config.Level),
		ReplaceAttr: nil,
	}

	if strings.EqualFold(config.Format, "text") {
		return slog.New(slog.NewTextHandler(w, options))
	}

	return slog.New(slog.NewJSONHandler(w, options))
}

func parseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
