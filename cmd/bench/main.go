// cmd/bench runs the Workload Driver (spec §4.6) standalone against an
// in-process catalog, for local benchmarking without the HTTP adapter.
package main

import (
	"context"
	stdlog "log"

	"github.com/joho/godotenv"

	"bookcatalog/internal/bookstore"
	"bookcatalog/internal/catalog/variants"
	"bookcatalog/internal/config"
	"bookcatalog/internal/stockmanager"
	"bookcatalog/internal/workload"
	"bookcatalog/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		stdlog.Println("no .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)

	var controller variants.Controller
	if cfg.App.SingleLock {
		controller = variants.NewControllerS()
	} else {
		controller = variants.NewControllerT()
	}

	store := bookstore.New(controller)
	manager := stockmanager.New(controller)

	// Seed the catalog so the measured customer workload has editor picks
	// to draw from from the first run onward.
	if err := seed(manager); err != nil {
		stdlog.Fatalf("failed to seed catalog: %v", err)
	}

	driver := workload.New(cfg.Workload, store, manager)

	report, err := driver.Run(context.Background())
	if err != nil {
		stdlog.Fatalf("workload run failed: %v", err)
	}

	logger.Info("workload report", map[string]interface{}{
		"total_runs":               report.TotalRuns,
		"successful_runs":          report.SuccessfulRuns,
		"total_customer_runs":      report.TotalCustomerRuns,
		"successful_customer_runs": report.SuccessfulCustomerRuns,
		"success_rate":             report.SuccessRate,
		"customer_fraction":        report.CustomerFraction,
		"throughput_per_sec":       report.ThroughputPerSec,
		"average_latency_ns":       report.AverageLatency.Nanoseconds(),
	})
}
