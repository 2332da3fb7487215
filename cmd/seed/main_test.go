package main

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/sysu-ecnc-dev/holiday-planner/backend/internal/config"
)

func TestRun_Errors(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.Storage.Driver = "memory"

	assert.Error(t, run(cfg, logger, 0, 5))
	assert.Error(t, run(cfg, logger, 1, 0))
	assert.Error(t, run(cfg, logger, 9, 5))
	assert.NoError(t, run(cfg, logger, 1, 3))

	cfg.Storage.Driver = "floppy"
	assert.Error(t, run(cfg, logger, 2, 0))
}
