package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/sysu-ecnc-dev/holiday-planner/backend/internal/config"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New builds the process logger. When LOG_FILE is set, records also go to a
// rotating file; the returned closer releases it.
func New(cfg *config.Config) (*slog.Logger, io.Closer) {
	var w io.Writer = os.Stdout
	var closer io.Closer = nopCloser{}

	if cfg.Log.File != "" {
		logFile := &lumberjack.Logger{
			Filename:   cfg.Log.File,
			MaxSize:    cfg.Log.MaxSize,
			MaxBackups: cfg.Log.MaxBackups,
			MaxAge:     cfg.Log.MaxAge,
			Compress:   true,
		}
		w = io.MultiWriter(os.Stdout, logFile)
		closer = logFile
	}

	return slog.New(newHandler(w, cfg)), closer
}

func newHandler(w io.Writer, cfg *config.Config) slog.Handler {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Log.Level)}

	format := cfg.Log.Format
	if format == "" && strings.EqualFold(cfg.Environment, "production") {
		format = "json"
	}

	if strings.EqualFold(format, "json") {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
