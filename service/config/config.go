package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration loaded from environment variables.
// All required fields are validated at startup to ensure fail-fast behavior.
type Config struct {
	// Server configuration
	ServerAddr string
	LogLevel   string

	// Geyser stream configuration
	GeyserEndpoint       string
	LivenessWindow       time.Duration
	ReconnectBaseBackoff time.Duration
	ReconnectMaxBackoff  time.Duration
	ReconnectMaxAttempts int

	// Solana configuration
	SolanaRPCURL string
	Commitment   string

	// Transfer plan configuration
	TransferPlanPath string

	// Dispatch configuration
	MaxInFlight    int
	PollInterval   time.Duration
	ConfirmTimeout time.Duration

	// NATS configuration (optional; empty disables the event sink)
	NATSURL string
}

// Load reads configuration from environment variables and validates all required fields.
// Returns an error if any required configuration is missing or invalid.
func Load() (*Config, error) {
	cfg := &Config{}
	var errs []error

	// Server configuration
	cfg.ServerAddr = getEnvOrDefault("SERVER_ADDR", ":8080")
	cfg.LogLevel = getEnvOrDefault("LOG_LEVEL", "info")

	// Geyser stream configuration
	cfg.GeyserEndpoint = os.Getenv("GEYSER_ENDPOINT")
	if cfg.GeyserEndpoint == "" {
		errs = append(errs, fmt.Errorf("GEYSER_ENDPOINT is required"))
	}

	// Solana configuration
	cfg.SolanaRPCURL = os.Getenv("SOLANA_RPC_URL")
	if cfg.SolanaRPCURL == "" {
		errs = append(errs, fmt.Errorf("SOLANA_RPC_URL is required"))
	}
	cfg.Commitment = getEnvOrDefault("COMMITMENT", "confirmed")

	// Transfer plan configuration
	cfg.TransferPlanPath = os.Getenv("TRANSFER_PLAN_PATH")
	if cfg.TransferPlanPath == "" {
		errs = append(errs, fmt.Errorf("TRANSFER_PLAN_PATH is required"))
	}

	// Dispatch configuration
	maxInFlight, err := parseInt("MAX_IN_FLIGHT", 8)
	if err != nil {
		errs = append(errs, err)
	} else {
		cfg.MaxInFlight = maxInFlight
	}

	pollInterval, err := parseDuration("POLL_INTERVAL", "2s")
	if err != nil {
		errs = append(errs, err)
	} else {
		cfg.PollInterval = pollInterval
	}

	confirmTimeout, err := parseDuration("CONFIRM_TIMEOUT", "60s")
	if err != nil {
		errs = append(errs, err)
	} else {
		cfg.ConfirmTimeout = confirmTimeout
	}

	// Stream health configuration
	livenessWindow, err := parseDuration("LIVENESS_WINDOW", "30s")
	if err != nil {
		errs = append(errs, err)
	} else {
		cfg.LivenessWindow = livenessWindow
	}

	baseBackoff, err := parseDuration("RECONNECT_BASE_BACKOFF", "500ms")
	if err != nil {
		errs = append(errs, err)
	} else {
		cfg.ReconnectBaseBackoff = baseBackoff
	}

	maxBackoff, err := parseDuration("RECONNECT_MAX_BACKOFF", "30s")
	if err != nil {
		errs = append(errs, err)
	} else {
		cfg.ReconnectMaxBackoff = maxBackoff
	}

	maxAttempts, err := parseInt("RECONNECT_MAX_ATTEMPTS", 10)
	if err != nil {
		errs = append(errs, err)
	} else {
		cfg.ReconnectMaxAttempts = maxAttempts
	}

	// NATS configuration
	cfg.NATSURL = os.Getenv("NATS_URL")

	if len(errs) > 0 {
		return nil, fmt.Errorf("configuration validation failed: %v", errs)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MustLoad is like Load but panics if configuration is invalid.
// Useful for process initialization where misconfiguration should halt startup.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}
	return cfg
}

// Validate checks if the configuration is valid.
// This is useful for testing configuration without loading from env.
func (c *Config) Validate() error {
	var errs []error

	if c.GeyserEndpoint == "" {
		errs = append(errs, fmt.Errorf("GeyserEndpoint is required"))
	}
	if c.SolanaRPCURL == "" {
		errs = append(errs, fmt.Errorf("SolanaRPCURL is required"))
	}
	if c.TransferPlanPath == "" {
		errs = append(errs, fmt.Errorf("TransferPlanPath is required"))
	}

	switch c.Commitment {
	case "processed", "confirmed", "finalized":
	default:
		errs = append(errs, fmt.Errorf("Commitment must be processed, confirmed, or finalized, got %q", c.Commitment))
	}

	if c.MaxInFlight < 1 {
		errs = append(errs, fmt.Errorf("MaxInFlight must be at least 1"))
	}
	if c.PollInterval < 100*time.Millisecond {
		errs = append(errs, fmt.Errorf("PollInterval must be at least 100ms"))
	}
	if c.ConfirmTimeout <= c.PollInterval {
		errs = append(errs, fmt.Errorf("ConfirmTimeout (%v) must be greater than PollInterval (%v)",
			c.ConfirmTimeout, c.PollInterval))
	}
	if c.LivenessWindow <= 0 {
		errs = append(errs, fmt.Errorf("LivenessWindow must be positive"))
	}
	if c.ReconnectBaseBackoff <= 0 {
		errs = append(errs, fmt.Errorf("ReconnectBaseBackoff must be positive"))
	}
	if c.ReconnectMaxBackoff < c.ReconnectBaseBackoff {
		errs = append(errs, fmt.Errorf("ReconnectMaxBackoff (%v) cannot be less than ReconnectBaseBackoff (%v)",
			c.ReconnectMaxBackoff, c.ReconnectBaseBackoff))
	}
	if c.ReconnectMaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("ReconnectMaxAttempts must be at least 1"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %v", errs)
	}
	return nil
}

// getEnvOrDefault returns the environment variable value or a default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// parseDuration parses a duration from an environment variable or uses a default.
func parseDuration(key, defaultValue string) (time.Duration, error) {
	value := getEnvOrDefault(key, defaultValue)
	duration, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q: %w", key, value, err)
	}
	return duration, nil
}

// parseInt parses an integer from an environment variable or uses a default.
func parseInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	result, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid integer %q: %w", key, value, err)
	}
	return result, nil
}
