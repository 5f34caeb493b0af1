package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/smhteam/huddle-mcp/internal/config"
	"github.com/smhteam/huddle-mcp/internal/huddle"
	"github.com/smhteam/huddle-mcp/internal/logger"
	"github.com/smhteam/huddle-mcp/internal/tools"
	"github.com/smhteam/huddle-mcp/internal/version"
)

func main() {
	// Hosts usually pass credentials via the environment; a local .env is a
	// convenience for development.
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("HUDDLE_CONFIG"))
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	level := cfg.Log.Level
	if cfg.API.Debug {
		level = "debug"
	}
	logger.Init(level, cfg.Log.Format)

	client, err := huddle.NewClient(logger.L, huddle.Config{
		BaseURL:       cfg.API.BaseURL,
		APIKey:        cfg.API.APIKey,
		Debug:         cfg.API.Debug,
		Timeout:       cfg.API.Timeout(),
		MaxAttempts:   cfg.API.MaxAttempts,
		RatePerMinute: cfg.API.RateLimitPerMinute,
	})
	if err != nil {
		logger.Error("client init failed", slog.Any("error", err))
		os.Exit(1)
	}

	server := gomcp.NewServer(
		&gomcp.Implementation{Name: "huddle-recordings", Version: version.String()},
		nil,
	)
	tools.Register(server, client, logger.L)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("huddle recordings mcp server starting",
		slog.String("version", version.String()),
		slog.String("base_url", cfg.API.BaseURL),
	)
	if err := server.Run(ctx, &gomcp.StdioTransport{}); err != nil {
		logger.Error("mcp server failed", slog.Any("error", err))
		os.Exit(1)
	}
}
