package server

import (
	"io"
	"log/slog"
	"strings"
)

// ParseLogLevel переводит уровень из конфигурации в slog.Level.
// Неизвестное значение дает INFO.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// SetupLogging устанавливает текстовый slog логгер по умолчанию
func SetupLogging(w io.Writer, level string) *slog.Logger {
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: ParseLogLevel(level),
	}))
	slog.SetDefault(logger)
	return logger
}
