// Package config loads process configuration the way the rest of this
// codebase's teacher does: a Config struct assembled by Load(), environment
// variables read through small getEnv* helpers with hard-coded defaults,
// and a local .env file loaded first via godotenv (see cmd/server and
// cmd/bench).
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config is the full process configuration: which concurrency discipline
// backs the catalog, the HTTP transport adapter's settings, and the
// Workload Driver's parameters (spec §4.6).
type Config struct {
	App      AppConfig
	HTTP     HTTPConfig
	Workload WorkloadConfig
}

// AppConfig holds the two configuration keys named in spec §6.
type AppConfig struct {
	Name        string
	Environment string
	// LocalTest selects in-process instantiation of the core over the
	// (out of scope) HTTP-proxy collaboration mode.
	LocalTest bool
	// SingleLock selects variant S (true) over variant T (false).
	SingleLock bool
}

// HTTPConfig configures the transport adapter (internal/transport/http).
type HTTPConfig struct {
	Port             string
	AdminTokenSecret string
}

// WorkloadConfig holds every parameter of the Workload Driver (spec §4.6).
type WorkloadConfig struct {
	WarmupRuns   int
	MeasuredRuns int
	Workers      int

	// Interaction mix; must sum to 100.
	RareStockPct      int
	FrequentStockPct  int
	FrequentCustomerPct int

	BooksPerRareInteraction  int
	RestockBatchSize         int
	CopiesPerRestock         int
	EditorPicksSampleSize    int
	ISBNsPerPurchase         int
	CopiesPerPurchasedISBN   int

	// TargetRatePerSecond throttles the combined interaction rate of all
	// workers through one shared golang.org/x/time/rate limiter. 0 means
	// unthrottled.
	TargetRatePerSecond float64
}

// Load assembles Config from the environment (after any .env file the
// caller has already loaded), applying the defaults below.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "bookcatalog"),
			Environment: getEnv("APP_ENV", "development"),
			LocalTest:   getEnvBool("LOCAL_TEST", true),
			SingleLock:  getEnvBool("SINGLE_LOCK", false),
		},
		HTTP: HTTPConfig{
			Port:             getEnv("HTTP_PORT", "8080"),
			AdminTokenSecret: getEnv("ADMIN_TOKEN_SECRET", "change-this-secret"),
		},
		Workload: WorkloadConfig{
			WarmupRuns:             getEnvInt("WORKLOAD_WARMUP_RUNS", 1000),
			MeasuredRuns:           getEnvInt("WORKLOAD_MEASURED_RUNS", 10000),
			Workers:                getEnvInt("WORKLOAD_WORKERS", 8),
			RareStockPct:           getEnvInt("WORKLOAD_RARE_STOCK_PCT", 5),
			FrequentStockPct:       getEnvInt("WORKLOAD_FREQUENT_STOCK_PCT", 15),
			FrequentCustomerPct:    getEnvInt("WORKLOAD_FREQUENT_CUSTOMER_PCT", 80),
			BooksPerRareInteraction: getEnvInt("WORKLOAD_BOOKS_PER_RARE_INTERACTION", 4),
			RestockBatchSize:       getEnvInt("WORKLOAD_RESTOCK_BATCH_SIZE", 5),
			CopiesPerRestock:       getEnvInt("WORKLOAD_COPIES_PER_RESTOCK", 10),
			EditorPicksSampleSize:  getEnvInt("WORKLOAD_EDITOR_PICKS_SAMPLE_SIZE", 10),
			ISBNsPerPurchase:       getEnvInt("WORKLOAD_ISBNS_PER_PURCHASE", 3),
			CopiesPerPurchasedISBN: getEnvInt("WORKLOAD_COPIES_PER_PURCHASED_ISBN", 1),
			TargetRatePerSecond:    getEnvFloat("WORKLOAD_TARGET_RATE", 0),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the cross-field invariants the spec calls out directly:
// the three interaction probabilities must sum to 100.
func (c *Config) Validate() error {
	sum := c.Workload.RareStockPct + c.Workload.FrequentStockPct + c.Workload.FrequentCustomerPct
	if sum != 100 {
		return fmt.Errorf("workload interaction probabilities must sum to 100, got %d", sum)
	}
	if c.Workload.Workers <= 0 {
		return fmt.Errorf("WORKLOAD_WORKERS must be positive")
	}
	if c.HTTP.AdminTokenSecret == "change-this-secret" && c.App.Environment == "production" {
		return fmt.Errorf("ADMIN_TOKEN_SECRET must be set in production")
	}
	return nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	floatValue, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return floatValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return boolValue
}
