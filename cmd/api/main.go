package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sysu-ecnc-dev/holiday-planner/backend/internal/config"
	"github.com/sysu-ecnc-dev/holiday-planner/backend/internal/handler"
	"github.com/sysu-ecnc-dev/holiday-planner/backend/internal/logging"
	"github.com/sysu-ecnc-dev/holiday-planner/backend/internal/repository"
	"github.com/sysu-ecnc-dev/holiday-planner/backend/internal/storage"
)

func main() {
	/**********************************************
	 * Load config
	 **********************************************/
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	/**********************************************
	 * Create logger
	 **********************************************/
	logger, logCloser := logging.New(cfg)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server exited with error", "error", err)
		logCloser.Close()
		os.Exit(1)
	}
	logCloser.Close()
}

func run(cfg *config.Config, logger *slog.Logger) error {
	/**********************************************
	 * Open storage medium
	 **********************************************/
	backend, err := storage.Open(cfg)
	if err != nil {
		return fmt.Errorf("failed to open %s storage: %w", cfg.Storage.Driver, err)
	}
	defer backend.Close()

	/**********************************************
	 * Create repository and handler
	 **********************************************/
	repo := repository.NewRepository(cfg, backend, logger)

	handler, err := handler.NewHandler(cfg, repo, logger)
	if err != nil {
		return fmt.Errorf("failed to create handler: %w", err)
	}
	handler.RegisterRoutes()

	/**********************************************
	 * Start HTTP server
	 **********************************************/
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      handler.Mux,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("starting server", "port", cfg.Server.Port, "storage", cfg.Storage.Driver)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("server failed: %w", err)
	case <-quit:
	}
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	logger.Info("server stopped")
	return nil
}
