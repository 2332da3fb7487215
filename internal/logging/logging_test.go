package logging

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sysu-ecnc-dev/holiday-planner/backend/internal/config"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, parseLevel("WARN"))
	assert.Equal(t, slog.LevelInfo, parseLevel("chatty"))
}

func TestNew_WritesJSONToRotatingFile(t *testing.T) {
	cfg := &config.Config{}
	cfg.Log.Level = "info"
	cfg.Log.Format = "json"
	cfg.Log.File = filepath.Join(t.TempDir(), "holiday-planner.log")
	cfg.Log.MaxSize = 1

	logger, closer := New(cfg)
	logger.Debug("hidden")
	logger.Info("plan created", "id", "p1")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(cfg.Log.File)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var record map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &record))
	assert.Equal(t, "plan created", record["msg"])
	assert.Equal(t, "p1", record["id"])
}

func TestNew_WithoutFile(t *testing.T) {
	logger, closer := New(&config.Config{})

	assert.NotNil(t, logger)
	assert.NoError(t, closer.Close())
}

func TestNewHandler_FormatFollowsEnvironment(t *testing.T) {
	cfg := &config.Config{Environment: "production"}
	assert.IsType(t, &slog.JSONHandler{}, newHandler(io.Discard, cfg))

	cfg.Log.Format = "text"
	assert.IsType(t, &slog.TextHandler{}, newHandler(io.Discard, cfg))

	cfg = &config.Config{Environment: "development"}
	assert.IsType(t, &slog.TextHandler{}, newHandler(io.Discard, cfg))
}
