// Package main is the entry point for Minesweeper.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/samdwyer/minesweeper/internal/config"
	"github.com/samdwyer/minesweeper/internal/game"
	"github.com/samdwyer/minesweeper/internal/logging"
	"github.com/samdwyer/minesweeper/internal/telemetry"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	preset := flag.String("preset", "", "board preset: beginner, intermediate or expert")
	rows := flag.Int("rows", 0, "board rows")
	cols := flag.Int("cols", 0, "board columns")
	mines := flag.Int("mines", 0, "number of mines")
	seed := flag.Int64("seed", 0, "seed for mine placement (0 picks one)")
	dev := flag.Bool("dev", false, "development mode: debug logging")
	flag.Parse()

	// Load .env file for local development
	// This makes MINESWEEPER_* and HONEYCOMB_MINESWEEPER_API_KEY available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Flags win over everything, but only the ones actually given.
	var flagErr error
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "preset":
			if err := cfg.ApplyPreset(*preset); err != nil && flagErr == nil {
				flagErr = err
			}
		case "rows":
			cfg.Rows = *rows
		case "cols":
			cfg.Cols = *cols
		case "mines":
			cfg.Mines = *mines
		case "seed":
			cfg.Seed = *seed
		case "dev":
			cfg.Development = *dev
		}
	})
	if flagErr != nil {
		log.Fatalf("Invalid flags: %v", flagErr)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	logger, err := logging.New(cfg)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}

	// Set up OTEL environment variables from our .env variables
	setupOTelEnv()

	ctx := context.Background()

	// Initialize telemetry only when there is somewhere to send it
	if telemetry.Enabled() {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			logger.WithError(err).Warn("telemetry setup failed, running without observability")
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					logger.WithError(err).Error("error shutting down telemetry")
				}
			}()
		}
	}

	// Create and run game
	g, err := game.New(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	if err := g.Run(ctx); err != nil {
		g.Close()
		logger.WithError(err).Error("game error")
		fmt.Fprintf(os.Stderr, "Game error: %v\n", err)
		os.Exit(1)
	}
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
// Nothing is set without an API key, which leaves telemetry disabled.
func setupOTelEnv() {
	apiKey := os.Getenv("HONEYCOMB_MINESWEEPER_API_KEY")
	if apiKey == "" {
		return
	}

	dataset := os.Getenv("HONEYCOMB_MINESWEEPER_DATASET")
	if dataset == "" {
		dataset = "minesweeper" // default dataset name
	}

	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}
	// The .env file may have an unexpanded variable reference that doesn't
	// work, so we construct the headers here
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}
