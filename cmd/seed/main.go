package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/sysu-ecnc-dev/holiday-planner/backend/internal/config"
	"github.com/sysu-ecnc-dev/holiday-planner/backend/internal/logging"
	"github.com/sysu-ecnc-dev/holiday-planner/backend/internal/repository"
	"github.com/sysu-ecnc-dev/holiday-planner/backend/internal/seed"
	"github.com/sysu-ecnc-dev/holiday-planner/backend/internal/storage"
)

func main() {
	var op int
	var n int

	flag.IntVar(&op, "op", 0, "operation to run (1: insert random plans, 2: insert the demo plan, 3: delete all plans)")
	flag.IntVar(&n, "n", 5, "number of plans to insert")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger, logCloser := logging.New(cfg)
	slog.SetDefault(logger)

	if err := run(cfg, logger, op, n); err != nil {
		logger.Error("seed failed", slog.String("error", err.Error()))
		logCloser.Close()
		os.Exit(1)
	}
	logCloser.Close()
}

func run(cfg *config.Config, logger *slog.Logger, op, n int) error {
	backend, err := storage.Open(cfg)
	if err != nil {
		return fmt.Errorf("failed to open %s storage: %w", cfg.Storage.Driver, err)
	}
	defer backend.Close()

	repo := repository.NewRepository(cfg, backend, logger)

	switch op {
	case 0:
		return errors.New("no operation given")
	case 1:
		if n <= 0 {
			return errors.New("the number of plans must be positive")
		}
		cnt := seed.SeedRandomPlans(repo, n, time.Now())
		logger.Info("inserted holiday plans", slog.Int("count", cnt))
	case 2:
		if err := seed.SeedDemoData(repo, time.Now()); err != nil {
			return fmt.Errorf("failed to insert demo plan: %w", err)
		}
	case 3:
		cnt := seed.ClearAll(repo)
		logger.Info("deleted holiday plans", slog.Int("count", cnt))
	default:
		return fmt.Errorf("unknown operation %d", op)
	}
	return nil
}
