// Package main provides the tide prediction HTTP server.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/jonboulle/clockwork"

	"github.com/ngtrthanh/tide-app/internal/adapter/store"
	storecsv "github.com/ngtrthanh/tide-app/internal/adapter/store/csv"
	"github.com/ngtrthanh/tide-app/internal/config"
	"github.com/ngtrthanh/tide-app/internal/domain"
	httpHandler "github.com/ngtrthanh/tide-app/internal/http"
	"github.com/ngtrthanh/tide-app/internal/observability"
	"github.com/ngtrthanh/tide-app/internal/usecase"
)

const version = "2.0.0"

func main() {
	// Parse command-line flags.
	showHelp := flag.Bool("help", false, "Show usage information")
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showHelp {
		printUsage()
		return
	}

	if *showVersion {
		fmt.Printf("tide-app version %s\n", version)
		return
	}

	// Load configuration from environment.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting tide prediction server...")
	log.Printf("Port: %s", cfg.Port)
	log.Printf("Station: %s", cfg.Station)

	// Station calibration: bundled defaults, constituents optionally
	// overridden from a CSV table in DATA_DIR.
	station := store.HonDau()
	if cfg.DataDir != "" {
		var loader store.Loader = storecsv.NewConstituentStore(cfg.DataDir)
		params, err := loader.LoadStation(cfg.Station)
		if err != nil {
			log.Fatalf("Failed to load constituents from %s: %v", cfg.DataDir, err)
		}
		log.Printf("Loaded %d constituents from CSV for station %s", len(params), cfg.Station)
		station.Constituents = params
	}

	// Build the model once; it is read-only for the process lifetime.
	model, err := domain.NewModel(station.MeanLevelCm, station.Epoch, station.Constituents)
	if err != nil {
		log.Fatalf("Failed to build tidal model: %v", err)
	}
	log.Printf("Tidal model ready: %d constituents, mean level %.0f cm, epoch %s",
		len(model.Constituents), model.MeanLevel, model.Epoch.Format("2006-01-02"))

	// Initialize metrics and use case.
	metrics := observability.NewMetrics()
	tideUC := usecase.NewTideUseCase(model, station, clockwork.NewRealClock(), metrics)

	// Setup router.
	router := httpHandler.SetupRouter(tideUC, cfg, metrics)

	// Start server.
	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Server listening on %s", addr)
	log.Printf("Health check: http://localhost:%s/health", cfg.Port)
	log.Printf("API endpoints:")
	log.Printf("  - GET /v1/tide/current")
	log.Printf("  - GET /v1/tide/extremes")
	log.Printf("  - GET /v1/tide/forecast")
	log.Printf("  - GET /v1/tide/chart")
	log.Printf("  - GET /v1/tide/validate")
	log.Printf("  - GET /v1/constituents")

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// printUsage prints usage information.
func printUsage() {
	fmt.Printf("Tide Prediction Server v%s\n\n", version)
	fmt.Println("USAGE:")
	fmt.Println("  tide-app [flags]")
	fmt.Println()
	fmt.Println("FLAGS:")
	fmt.Println("  -help          Show this help message")
	fmt.Println("  -version       Show version information")
	fmt.Println()
	fmt.Println("ENVIRONMENT VARIABLES:")
	fmt.Println("  PORT                    Server port (default: 8080)")
	fmt.Println("  STATION                 Station ID to serve (default: hondau)")
	fmt.Println("  DATA_DIR                Optional directory with <station>_constituents.csv overrides")
	fmt.Println("  CORS_ALLOWED_ORIGINS    Comma-separated list of allowed origins (default: all origins)")
	fmt.Println()
	fmt.Println("EXAMPLES:")
	fmt.Println("  # Start server with the bundled Hòn Dấu calibration")
	fmt.Println("  tide-app")
	fmt.Println()
	fmt.Println("  # Start server on custom port")
	fmt.Println("  PORT=3000 tide-app")
	fmt.Println()
	fmt.Println("API ENDPOINTS:")
	fmt.Println("  GET /health                    Health check")
	fmt.Println("  GET /metrics                   Prometheus metrics")
	fmt.Println("  GET /v1/constituents           List tidal constituents")
	fmt.Println("  GET /v1/tide/current           Current predicted level")
	fmt.Println("  GET /v1/tide/extremes          Today's high and low tides")
	fmt.Println("  GET /v1/tide/forecast          Hourly forecast (?days=N)")
	fmt.Println("  GET /v1/tide/chart             Forecast chart page (?days=N)")
	fmt.Println("  GET /v1/tide/validate          Accuracy report (POST for custom observations)")
	fmt.Println()
}
