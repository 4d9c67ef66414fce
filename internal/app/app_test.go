package app

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/spetersoncode/schemagen/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWorkflow(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := &config.Config{
		Provider:    "openai",
		APIKey:      "k",
		BaseURL:     "http://localhost:1/v1",
		Model:       "gemma-3-27b-it",
		Temperature: 0.2,
		MaxTokens:   100,
		Timeout:     time.Second,
	}
	wf, err := NewWorkflow(ctx, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	assert.Equal(t, "gemma-3-27b-it", wf.Model())
	assert.Empty(t, wf.IntegrationSteps())
}

func TestNewWorkflowRejectsUnknownProvider(t *testing.T) {
	cfg := &config.Config{Provider: "vertex", APIKey: "k"}
	_, err := NewWorkflow(context.Background(), cfg, slog.Default())
	assert.Error(t, err)
}
