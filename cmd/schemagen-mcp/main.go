// Command schemagen-mcp serves the JSON Schema generator as MCP tools over
// stdio. It reads the same configuration as the schemagen HTTP server.
//
// Configuration for an MCP client:
//
//	{
//	    "mcpServers": {
//	        "schemagen": {
//	            "command": "schemagen-mcp",
//	            "env": {"SCHEMAGEN_API_KEY": "..."}
//	        }
//	    }
//	}
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spetersoncode/schemagen/internal/app"
	"github.com/spetersoncode/schemagen/internal/config"
	"github.com/spetersoncode/schemagen/internal/logging"
	"github.com/spetersoncode/schemagen/mcp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	logger := logging.Setup(cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	wf, err := app.NewWorkflow(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to create workflow", "error", err)
		os.Exit(1)
	}

	logger.Info("serving MCP over stdio", "provider", cfg.Provider, "model", cfg.Model)
	if err := mcp.ServeStdio(wf,
		mcp.WithName("schemagen"),
		mcp.WithVersion("1.0.0"),
	); err != nil {
		logger.Error("mcp server error", "error", err)
		os.Exit(1)
	}
}
