package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"megaraid-exporter/internal/collector"
	"megaraid-exporter/internal/config"
	"megaraid-exporter/internal/health"
	"megaraid-exporter/internal/logging"
	"megaraid-exporter/internal/metrics"
	"megaraid-exporter/pkg/megacli"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Build-time variables (set via -ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Infow("starting megaraid exporter", "version", version, "commit", commit, "build_time", buildTime)

	client, err := megacli.New(cfg.MegaCliPath)
	if err != nil {
		log.Fatalw("locating megacli binary", "error", err)
	}
	log.Infow("using megacli binary", "path", client.Path())

	ctx := context.Background()

	toolVersion, err := client.Version(ctx)
	if err != nil {
		log.Warnw("querying megacli version", "error", err)
	}

	m := metrics.New()
	c := collector.New(client, m, log, cfg.CollectInterval)
	healthService := health.New(c, version, toolVersion)

	// Start metrics collection in background
	go c.Start(ctx)

	setupHTTPHandlers(cfg, healthService, toolVersion)

	log.Infow("starting http server", "port", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, nil); err != nil {
		log.Fatalw("http server failed", "error", err)
	}
}

// setupHTTPHandlers configures HTTP routes
func setupHTTPHandlers(cfg *config.Config, healthService *health.Service, toolVersion string) {
	// Metrics endpoint
	http.Handle(cfg.MetricsPath, promhttp.Handler())
	ver := fmt.Sprintf("v%s (%s)", version, commit)

	// Root endpoint with basic info
	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprintf(w, `
		<html>
		<head><title>MegaRAID Exporter</title></head>
		<body>
		<h1>MegaRAID Prometheus Exporter</h1>
		<p><a href="%s">Metrics</a></p>
		<p><a href="/health">Health Check</a></p>
		<p><a href="/health/json">Health JSON</a></p>
		<p>Version: %s</p>
		<p>Collect Interval: %s</p>
		<p>MegaCli Version: %s</p>
		</body>
		</html>
		`, cfg.MetricsPath, ver, cfg.CollectInterval, toolVersion)
	})

	// Basic health check endpoint
	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"status":"ok","service":"megaraid-exporter"}`)
	})

	// Detailed JSON health endpoint
	http.HandleFunc("/health/json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		healthData := healthService.GetHealthData()

		jsonData, err := json.MarshalIndent(healthData, "", "  ")
		if err != nil {
			http.Error(w, "Failed to generate JSON", http.StatusInternalServerError)
			return
		}

		w.Write(jsonData)
	})
}
