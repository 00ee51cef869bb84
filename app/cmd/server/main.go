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

	"github.com/joho/godotenv"

	"session-manager/app/config"
	"session-manager/app/di"
	"session-manager/app/port"
	"session-manager/app/utils/logger"
)

func main() {
	// Load environment variables from .env file if it exists
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("Could not load .env file", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	appLogger, err := logger.New(cfg.LogLevel)
	if err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		os.Exit(1)
	}

	appLogger.Info("Starting Session Manager",
		"version", getVersion(),
		"port", cfg.Port,
		"log_level", cfg.LogLevel)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// The reload channel is the process-level stand-in for a client page
	// reload: the session manager asks for it when local credential state
	// is unrecoverable, and main answers by rebuilding the whole container.
	reloadCh := make(chan struct{}, 1)
	reloader := port.ReloadFunc(func(ctx context.Context) error {
		select {
		case reloadCh <- struct{}{}:
		default:
		}
		return nil
	})

	for {
		restart, err := run(cfg, appLogger, reloader, reloadCh, quit)
		if err != nil {
			appLogger.Error("Server run failed", "error", err)
			os.Exit(1)
		}
		if !restart {
			break
		}
		appLogger.Warn("Reinitializing after credential reset")
	}

	appLogger.Info("Server exited")
}

// run builds a container and serves until shutdown or a requested reload.
// It returns true when the caller should rebuild and run again.
func run(cfg *config.Config, appLogger *slog.Logger, reloader port.Reloader, reloadCh <-chan struct{}, quit <-chan os.Signal) (bool, error) {
	container, err := di.NewContainer(cfg, appLogger, reloader)
	if err != nil {
		return false, fmt.Errorf("failed to initialize dependency container: %w", err)
	}
	defer container.Close()

	watchCtx, cancelWatch := context.WithCancel(context.Background())
	defer cancelWatch()
	container.Start(watchCtx)

	e := container.CreateRouter()

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Handler:      e,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("Server starting", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	restart := false
	select {
	case err := <-serverErr:
		return false, err
	case <-reloadCh:
		appLogger.Warn("Reload requested, shutting down for reinitialization")
		restart = true
	case <-quit:
		appLogger.Info("Server shutting down...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return false, fmt.Errorf("server forced to shutdown: %w", err)
	}

	return restart, nil
}

// getVersion returns the application version
func getVersion() string {
	if version := os.Getenv("VERSION"); version != "" {
		return version
	}
	return "dev"
}
