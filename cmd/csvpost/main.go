package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/JonMunkholm/csvpost/internal/cli"
	"github.com/JonMunkholm/csvpost/internal/config"
	"github.com/JonMunkholm/csvpost/internal/logging"
)

func main() {
	// Load .env file if it exists; real environment variables take precedence
	envErr := godotenv.Load()

	// Load and validate configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(cli.ExitFailure)
	}

	// Logs go to stderr, stdout carries response bodies
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format, os.Stderr)

	if envErr != nil {
		slog.Debug("no .env file found, using environment variables")
	}
	slog.Debug("configuration loaded",
		"dispatch_timeout", cfg.Dispatch.Timeout,
		"dispatch_wait", cfg.Dispatch.Wait,
		"drain_timeout", cfg.Dispatch.DrainTimeout,
	)

	// Cancel in-flight requests on interrupt
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	code := cli.Execute(ctx, filepath.Base(os.Args[0]), os.Args[1:], cfg, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
