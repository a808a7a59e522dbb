package domain

import (
	"os"
	"strconv"
	"time"
)

// IndexConfig carries every tunable threshold the pipeline uses. It is
// constructed once at process start and passed into components - nothing
// reads the environment after that.
type IndexConfig struct {
	IndexCode string

	// level the index is pegged to on its first trading day
	BaseLevel float64

	// reconciliation
	DivergenceThresholdPct float64
	PreferredProvider      string
	SecondaryProvider      string
	AllowCanonClose        bool

	// completeness
	MinDailyCoverage float64
	HolidayCoverage  float64
	MaxBadDays       int
	EmailOnFail      bool

	// daily engine
	MinLevelCoverage float64

	// orchestrator retry
	MaxRetryAttempts int
	RetryBaseDelay   time.Duration
}

func DefaultIndexConfig() IndexConfig {
	return IndexConfig{
		IndexCode:              "TECH100",
		BaseLevel:              1000,
		DivergenceThresholdPct: 0.50,
		PreferredProvider:      "PRIMARY",
		SecondaryProvider:      "SECONDARY",
		AllowCanonClose:        false,
		MinDailyCoverage:       0.95,
		HolidayCoverage:        0.10,
		MaxBadDays:             0,
		EmailOnFail:            true,
		MinLevelCoverage:       0.90,
		MaxRetryAttempts:       3,
		RetryBaseDelay:         time.Second,
	}
}

// IndexConfigFromEnv applies TECH100_* overrides on top of the defaults.
// Unset or malformed values fall back silently - a bad threshold should
// never take the pipeline down before it starts.
func IndexConfigFromEnv() IndexConfig {
	cfg := DefaultIndexConfig()
	if v := os.Getenv("TECH100_INDEX_CODE"); v != "" {
		cfg.IndexCode = v
	}
	if v, err := strconv.ParseFloat(os.Getenv("TECH100_DIVERGENCE_THRESHOLD_PCT"), 64); err == nil {
		cfg.DivergenceThresholdPct = v
	}
	if v := os.Getenv("TECH100_PREFERRED_PROVIDER"); v != "" {
		cfg.PreferredProvider = v
	}
	if v := os.Getenv("TECH100_SECONDARY_PROVIDER"); v != "" {
		cfg.SecondaryProvider = v
	}
	if v, err := strconv.ParseBool(os.Getenv("TECH100_ALLOW_CANON_CLOSE")); err == nil {
		cfg.AllowCanonClose = v
	}
	if v, err := strconv.ParseFloat(os.Getenv("TECH100_MIN_DAILY_COVERAGE"), 64); err == nil {
		cfg.MinDailyCoverage = v
	}
	if v, err := strconv.ParseFloat(os.Getenv("TECH100_HOLIDAY_COVERAGE"), 64); err == nil {
		cfg.HolidayCoverage = v
	}
	if v, err := strconv.Atoi(os.Getenv("TECH100_MAX_BAD_DAYS")); err == nil {
		cfg.MaxBadDays = v
	}
	if v, err := strconv.ParseBool(os.Getenv("TECH100_EMAIL_ON_FAIL")); err == nil {
		cfg.EmailOnFail = v
	}
	if v, err := strconv.ParseFloat(os.Getenv("TECH100_MIN_LEVEL_COVERAGE"), 64); err == nil {
		cfg.MinLevelCoverage = v
	}
	if v, err := strconv.Atoi(os.Getenv("TECH100_MAX_RETRY_ATTEMPTS")); err == nil {
		cfg.MaxRetryAttempts = v
	}
	return cfg
}
