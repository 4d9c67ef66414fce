// Package app wires configuration into a ready-to-use schema workflow.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spetersoncode/schemagen"
	"github.com/spetersoncode/schemagen/client"
	"github.com/spetersoncode/schemagen/internal/config"
	"github.com/spetersoncode/schemagen/prompt"
	"github.com/spetersoncode/schemagen/workflow"
)

// NewWorkflow builds the completion client and workflow described by cfg.
// Client events are logged at debug level until ctx is done.
func NewWorkflow(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*workflow.Workflow, error) {
	events := make(chan client.Event, 32)
	c, err := client.New(client.Config{
		Provider: schemagen.Provider(cfg.Provider),
		APIKey:   cfg.APIKey,
		BaseURL:  cfg.BaseURL,
		Timeout:  cfg.Timeout,
		Events:   events,
	})
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}
	go logEvents(ctx, logger, events)

	composer := prompt.New(
		prompt.WithModel(cfg.Model),
		prompt.WithTemperature(cfg.Temperature),
		prompt.WithMaxTokens(cfg.MaxTokens),
	)

	return workflow.New(c,
		workflow.WithComposer(composer),
		workflow.WithLogger(logger),
	), nil
}

func logEvents(ctx context.Context, logger *slog.Logger, events <-chan client.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case e := <-events:
			attrs := []any{
				"provider", e.Provider,
				"model", e.Model,
			}
			switch e.Type {
			case client.EventRequestStart:
				logger.Debug("completion request started", attrs...)
			case client.EventRequestComplete:
				attrs = append(attrs, "duration_ms", e.Duration.Milliseconds())
				if e.Usage != nil {
					attrs = append(attrs, "input_tokens", e.Usage.InputTokens, "output_tokens", e.Usage.OutputTokens)
				}
				logger.Debug("completion request finished", attrs...)
			case client.EventRequestError:
				attrs = append(attrs, "duration_ms", e.Duration.Milliseconds(), "error", e.Error)
				logger.Debug("completion request failed", attrs...)
			}
		}
	}
}
