// Command schemagen serves the JSON Schema generator over HTTP.
//
// Configuration is via environment variables (a .env file is loaded if
// present) and an optional YAML file named by SCHEMAGEN_CONFIG:
//
//	SCHEMAGEN_PORT        - Server port (default: 5000)
//	SCHEMAGEN_LOG_LEVEL   - debug, info, warn or error (default: info)
//	SCHEMAGEN_PROVIDER    - openai, anthropic or google (default: openai)
//	SCHEMAGEN_API_KEY     - API key (falls back to the provider's usual variable)
//	SCHEMAGEN_BASE_URL    - OpenAI-compatible endpoint root
//	SCHEMAGEN_MODEL       - Model identifier
//	SCHEMAGEN_TEMPERATURE - Sampling temperature (default: 0.1)
//	SCHEMAGEN_MAX_TOKENS  - Completion token limit (default: 2000)
//	SCHEMAGEN_TIMEOUT     - Request timeout (default: 15s)
//
// Usage:
//
//	SCHEMAGEN_API_KEY=... go run ./cmd/schemagen
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spetersoncode/schemagen/internal/app"
	"github.com/spetersoncode/schemagen/internal/config"
	"github.com/spetersoncode/schemagen/internal/logging"
	"github.com/spetersoncode/schemagen/model"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	logger := logging.Setup(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	wf, err := app.NewWorkflow(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to create workflow", "error", err)
		os.Exit(1)
	}

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      NewServer(wf, logger).Routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.Timeout + 10*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		<-ctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown error", "error", err)
		}
	}()

	logger.Info("starting API schema generator",
		"addr", cfg.Addr(),
		"provider", cfg.Provider,
		"model", cfg.Model,
		"available_models", strings.Join(model.IDs(), ", "),
	)

	if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
