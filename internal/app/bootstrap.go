package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ferdiebergado/goexpress"
	"github.com/ferdiebergado/gopherkit/env"
	"github.com/maxburleigh/portfolio/internal/config"
	"github.com/maxburleigh/portfolio/internal/middleware"
	"github.com/maxburleigh/portfolio/internal/pkg/logging"
	"github.com/maxburleigh/portfolio/internal/platform/validation"
)

const envFile = ".env"

func Run(baseCtx context.Context) error {
	slog.Info("Initializing...")

	signalCtx, stop := signal.NotifyContext(baseCtx, os.Interrupt, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if err := loadEnvFile(); err != nil {
		return err
	}

	cfgFile := config.DefaultConfigFile
	if f, ok := os.LookupEnv(config.EnvConfigFile); ok {
		cfgFile = f
	}

	validator := validation.NewGoPlaygroundValidator()
	opts, err := config.Load(cfgFile, validator)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logging.SetDefault(opts.App, os.Stdout)

	site, err := New(opts, newProvider(), Middlewares())
	if err != nil {
		return fmt.Errorf("new app: %w", err)
	}

	if err := site.Start(signalCtx); err != nil {
		return fmt.Errorf("start server: %w", err)
	}

	return site.Shutdown()
}

// Middlewares returns the global middleware chain, outermost first.
func Middlewares() []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		middleware.ContextGuard,
		middleware.RecordResponse,
		goexpress.RecoverFromPanic,
		middleware.LogRequest,
	}
}

// loadEnvFile loads .env outside production. A missing file is not an error.
func loadEnvFile() error {
	if os.Getenv(config.EnvApp) == "production" {
		return nil
	}

	if _, err := os.Stat(envFile); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("stat env file: %w", err)
	}

	if err := env.Load(envFile); err != nil {
		return fmt.Errorf("load env: %w", err)
	}
	return nil
}
