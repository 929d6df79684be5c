package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearWorkloadEnv(t *testing.T) {
	t.Helper()
	keys := []string{
		"WORKLOAD_RARE_STOCK_PCT", "WORKLOAD_FREQUENT_STOCK_PCT", "WORKLOAD_FREQUENT_CUSTOMER_PCT",
		"WORKLOAD_WORKERS", "HTTP_PORT", "ADMIN_TOKEN_SECRET", "APP_ENV",
	}
	for _, k := range keys {
		orig, had := os.LookupEnv(k)
		os.Unsetenv(k)
		t.Cleanup(func() {
			if had {
				os.Setenv(k, orig)
			}
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearWorkloadEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTP.Port)
	assert.Equal(t, 100, cfg.Workload.RareStockPct+cfg.Workload.FrequentStockPct+cfg.Workload.FrequentCustomerPct)
}

func TestValidate_RejectsBadInteractionMix(t *testing.T) {
	cfg := &Config{
		Workload: WorkloadConfig{
			RareStockPct: 10, FrequentStockPct: 10, FrequentCustomerPct: 10,
			Workers: 1,
		},
		HTTP: HTTPConfig{AdminTokenSecret: "s"},
	}
	err := cfg.Validate()
	assert.Error(t, err)
}

func TestValidate_RejectsZeroWorkers(t *testing.T) {
	cfg := &Config{
		Workload: WorkloadConfig{
			RareStockPct: 5, FrequentStockPct: 15, FrequentCustomerPct: 80,
			Workers: 0,
		},
		HTTP: HTTPConfig{AdminTokenSecret: "s"},
	}
	err := cfg.Validate()
	assert.Error(t, err)
}

func TestValidate_RequiresSecretInProduction(t *testing.T) {
	cfg := &Config{
		App: AppConfig{Environment: "production"},
		Workload: WorkloadConfig{
			RareStockPct: 5, FrequentStockPct: 15, FrequentCustomerPct: 80,
			Workers: 1,
		},
		HTTP: HTTPConfig{AdminTokenSecret: "change-this-secret"},
	}
	err := cfg.Validate()
	assert.Error(t, err)
}
