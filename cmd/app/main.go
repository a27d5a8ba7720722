package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"customerorder/cmd"
	"customerorder/internal/pkg/logging"

	"github.com/labstack/gommon/log"
)

const shutdownTimeout = 10 * time.Second

func main() {
	config, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger, logCloser, err := logging.New(logging.Options{Level: config.LogLevel, File: config.LogFile})
	if err != nil {
		log.Fatalf("Error configuring logging: %v", err)
	}
	defer logCloser.Close()
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, config, logger); err != nil {
		logger.Error("Service stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, config cmd.Config, logger *slog.Logger) error {
	app, err := cmd.NewCompositionRoot(ctx, config, logger)
	if err != nil {
		return fmt.Errorf("compose application: %w", err)
	}

	e, err := app.CreateRouter()
	if err != nil {
		return errors.Join(err, app.Close(context.Background()))
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		return errors.Join(err, app.Close(context.Background()))
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Starting web server", "port", config.HTTPPort)
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		logger.Info("Shutting down")
	case runErr = <-serveErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		runErr = errors.Join(runErr, fmt.Errorf("shutdown web server: %w", err))
	}
	jobManager.StopAll()
	if err := app.Close(shutdownCtx); err != nil {
		runErr = errors.Join(runErr, fmt.Errorf("close store: %w", err))
	}
	return runErr
}
