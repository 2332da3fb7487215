package main

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/sysu-ecnc-dev/holiday-planner/backend/internal/config"
)

func TestRun_StorageFailureIsReturned(t *testing.T) {
	cfg := &config.Config{}
	cfg.Storage.Driver = "floppy"

	err := run(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))

	assert.ErrorContains(t, err, "failed to open floppy storage")
}
