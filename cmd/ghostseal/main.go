package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/ghostgate/ghostseal/internal/config"
	"github.com/ghostgate/ghostseal/internal/secrets"
	"github.com/ghostgate/ghostseal/internal/server"
	"github.com/ghostgate/ghostseal/internal/snapshot"
	"github.com/ghostgate/ghostseal/internal/telemetry"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file (optional)")
	flag.Parse()

	// Load .env file if it exists
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Initialize OpenTelemetry
	shutdown, err := telemetry.InitTracer("ghostseal", logger)
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			logger.Error("failed to shutdown tracer", slog.String("error", err.Error()))
		}
	}()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	resolver := secrets.NewResolver(cfg.Audit.Secrets)
	logger.Info("audit keys loaded",
		slog.String("versions", strings.Join(resolver.Versions(), ",")),
		slog.String("current", secrets.CurrentKeyVersion),
	)
	logger.Info("configuration snapshot",
		slog.String("ghost_config_version", snapshot.Current.GhostConfigVersion),
		slog.String("gate_definitions_version", snapshot.Current.GateDefinitionsVersion),
		slog.String("hash", snapshot.Digest(snapshot.Canonicalize(snapshot.Current))),
	)

	srv := server.New(cfg.Server.Port, cfg.Audit.TemplateVersion, resolver, logger)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	// Wait for shutdown signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errChan:
		log.Fatalf("Server failed: %v", err)
	case <-sigChan:
	}

	logger.Info("shutdown signal received, stopping server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("server shutdown complete")
}
