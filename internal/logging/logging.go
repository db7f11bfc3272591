// internal/logging/logging.go
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"wheel-overlay/internal/config"
)

// Setup настраивает глобальный логгер zerolog: консоль в stderr и, если задан
// cfg.File, JSON-строки в этот файл. Возвращённый closer закрывается при выходе.
func Setup(cfg config.LogConfig) (io.Closer, error) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return nopCloser{}, fmt.Errorf("bad log level %q: %w", cfg.Level, err)
	}
	if level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339Nano

	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05.000"}
	if cfg.File == "" {
		log.Logger = zerolog.New(console).With().Timestamp().Logger()
		return nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
		return nopCloser{}, fmt.Errorf("failed to create log dir: %w", err)
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nopCloser{}, fmt.Errorf("failed to open log file: %w", err)
	}
	log.Logger = zerolog.New(zerolog.MultiLevelWriter(console, f)).With().Timestamp().Logger()
	return f, nil
}

// Module возвращает дочерний логгер с полем module=name.
func Module(name string) zerolog.Logger {
	return log.With().Str("module", name).Logger()
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
