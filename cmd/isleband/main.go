// Package main is the entry point for IsleBand.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/isleband/internal/game"
	"github.com/samdwyer/isleband/internal/telemetry"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file (default $ISLEBAND_CONFIG)")
	flag.Parse()

	// Load .env file for local development
	// This makes HONEYCOMB_ISLEBAND_API_KEY and ISLEBAND_* overrides available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := game.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Set up OTEL environment variables from our .env variables
	telemetryEnabled := setupOTelEnv()

	ctx := context.Background()

	var tracer trace.Tracer = telemetry.NoopTracer()
	if telemetryEnabled {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
			log.Printf("Game will run without observability")
		} else {
			tracer = telemetry.Tracer("game")
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.Printf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	}

	// Create and run game
	g, err := game.New(cfg, tracer)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	if err := g.Run(ctx); err != nil {
		log.Fatalf("Game error: %v", err)
	}
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
// It reports whether an API key was found.
func setupOTelEnv() bool {
	apiKey := os.Getenv("HONEYCOMB_ISLEBAND_API_KEY")
	if apiKey == "" {
		return false
	}

	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	dataset := os.Getenv("HONEYCOMB_ISLEBAND_DATASET")
	if dataset == "" {
		dataset = "isleband" // default dataset name
	}
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	return true
}
