package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/couchcryptid/iono-band-advisor/internal/domain"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	// Station and lookback watched by bandwatch; the one-shot CLI takes
	// these from flags instead.
	Station      string
	Lookback     string
	PollInterval time.Duration

	// DIAS ionostream endpoint.
	DIASBaseURL string
	DIASTimeout time.Duration

	// Advisory publishing.
	KafkaBrokers []string
	KafkaTopic   string

	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Conditions-endpoint cache.
	CacheTTL  time.Duration
	CacheSize int
}

// DefaultDIASBaseURL is the production ionostream API root.
const DefaultDIASBaseURL = "https://electron.space.noa.gr/ionostream/api/v2/idb/sao"

// Load reads configuration from environment variables, applying defaults
// where unset. Validation errors name the variable at fault.
func Load() (*Config, error) {
	diasTimeout, err := durationOrDefault("DIAS_TIMEOUT", "15s")
	if err != nil {
		return nil, err
	}
	pollInterval, err := durationOrDefault("POLL_INTERVAL", "15m")
	if err != nil {
		return nil, err
	}
	shutdownTimeout, err := durationOrDefault("SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}
	cacheTTL, err := durationOrDefault("CACHE_TTL", "5m")
	if err != nil {
		return nil, err
	}
	cacheSize, err := intOrDefault("CACHE_SIZE", 16)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Station:         envOrDefault("STATION", domain.DefaultStation),
		Lookback:        envOrDefault("LOOKBACK", domain.DefaultLookback),
		PollInterval:    pollInterval,
		DIASBaseURL:     envOrDefault("DIAS_BASE_URL", DefaultDIASBaseURL),
		DIASTimeout:     diasTimeout,
		KafkaBrokers:    parseBrokers(envOrDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaTopic:      envOrDefault("KAFKA_TOPIC", "band-advisories"),
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,
		CacheTTL:        cacheTTL,
		CacheSize:       cacheSize,
	}

	if _, err := domain.LookupStation(cfg.Station); err != nil {
		return nil, fmt.Errorf("invalid STATION: %w", err)
	}
	if _, err := domain.ParseLookback(cfg.Lookback); err != nil {
		return nil, fmt.Errorf("invalid LOOKBACK: %w", err)
	}
	if len(cfg.KafkaBrokers) == 0 {
		return nil, errors.New("KAFKA_BROKERS is required")
	}

	return cfg, nil
}

// envOrDefault returns the variable's value, or fallback when unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// parseBrokers splits a comma-separated broker list, dropping empty entries.
func parseBrokers(raw string) []string {
	var brokers []string
	for _, b := range strings.Split(raw, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

func durationOrDefault(key, fallback string) (time.Duration, error) {
	raw := envOrDefault(key, fallback)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", key, raw)
	}
	return d, nil
}

func intOrDefault(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", key, raw)
	}
	return n, nil
}
