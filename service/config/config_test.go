package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnvVars = []string{
	"SERVER_ADDR", "LOG_LEVEL",
	"GEYSER_ENDPOINT", "LIVENESS_WINDOW",
	"RECONNECT_BASE_BACKOFF", "RECONNECT_MAX_BACKOFF", "RECONNECT_MAX_ATTEMPTS",
	"SOLANA_RPC_URL", "COMMITMENT", "TRANSFER_PLAN_PATH",
	"MAX_IN_FLIGHT", "POLL_INTERVAL", "CONFIRM_TIMEOUT",
	"NATS_URL",
}

func cleanupEnv() {
	for _, key := range configEnvVars {
		os.Unsetenv(key)
	}
}

func setRequiredEnv() {
	os.Setenv("GEYSER_ENDPOINT", "localhost:10000")
	os.Setenv("SOLANA_RPC_URL", "https://api.devnet.solana.com")
	os.Setenv("TRANSFER_PLAN_PATH", "/etc/blockpulse/plan.yaml")
}

func TestLoad_ValidConfig(t *testing.T) {
	setRequiredEnv()
	defer cleanupEnv()

	cfg, err := Load()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "localhost:10000", cfg.GeyserEndpoint)
	assert.Equal(t, "https://api.devnet.solana.com", cfg.SolanaRPCURL)
	assert.Equal(t, "/etc/blockpulse/plan.yaml", cfg.TransferPlanPath)
	assert.Equal(t, ":8080", cfg.ServerAddr)    // Default
	assert.Equal(t, "info", cfg.LogLevel)       // Default
	assert.Equal(t, "confirmed", cfg.Commitment) // Default
	assert.Equal(t, 8, cfg.MaxInFlight)
	assert.Equal(t, 2*time.Second, cfg.PollInterval)
	assert.Equal(t, 60*time.Second, cfg.ConfirmTimeout)
	assert.Equal(t, 30*time.Second, cfg.LivenessWindow)
	assert.Equal(t, 500*time.Millisecond, cfg.ReconnectBaseBackoff)
	assert.Equal(t, 30*time.Second, cfg.ReconnectMaxBackoff)
	assert.Equal(t, 10, cfg.ReconnectMaxAttempts)
	assert.Empty(t, cfg.NATSURL)
}

func TestLoad_MissingGeyserEndpoint(t *testing.T) {
	os.Setenv("SOLANA_RPC_URL", "https://api.devnet.solana.com")
	os.Setenv("TRANSFER_PLAN_PATH", "/etc/blockpulse/plan.yaml")
	defer cleanupEnv()

	cfg, err := Load()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "GEYSER_ENDPOINT is required")
}

func TestLoad_MissingSolanaRPCURL(t *testing.T) {
	os.Setenv("GEYSER_ENDPOINT", "localhost:10000")
	os.Setenv("TRANSFER_PLAN_PATH", "/etc/blockpulse/plan.yaml")
	defer cleanupEnv()

	cfg, err := Load()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "SOLANA_RPC_URL is required")
}

func TestLoad_MissingTransferPlanPath(t *testing.T) {
	os.Setenv("GEYSER_ENDPOINT", "localhost:10000")
	os.Setenv("SOLANA_RPC_URL", "https://api.devnet.solana.com")
	defer cleanupEnv()

	cfg, err := Load()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "TRANSFER_PLAN_PATH is required")
}

func TestLoad_InvalidCommitment(t *testing.T) {
	setRequiredEnv()
	os.Setenv("COMMITMENT", "optimistic")
	defer cleanupEnv()

	cfg, err := Load()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "Commitment must be")
}

func TestLoad_InvalidDuration(t *testing.T) {
	setRequiredEnv()
	os.Setenv("POLL_INTERVAL", "soon")
	defer cleanupEnv()

	cfg, err := Load()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "invalid duration")
}

func TestLoad_InvalidMaxInFlight(t *testing.T) {
	setRequiredEnv()
	os.Setenv("MAX_IN_FLIGHT", "0")
	defer cleanupEnv()

	cfg, err := Load()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "MaxInFlight must be at least 1")
}

func TestLoad_ConfirmTimeoutMustExceedPollInterval(t *testing.T) {
	setRequiredEnv()
	os.Setenv("POLL_INTERVAL", "10s")
	os.Setenv("CONFIRM_TIMEOUT", "5s")
	defer cleanupEnv()

	cfg, err := Load()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "must be greater than PollInterval")
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv()
	os.Setenv("COMMITMENT", "finalized")
	os.Setenv("MAX_IN_FLIGHT", "32")
	os.Setenv("POLL_INTERVAL", "500ms")
	os.Setenv("CONFIRM_TIMEOUT", "90s")
	os.Setenv("NATS_URL", "nats://localhost:4222")
	defer cleanupEnv()

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "finalized", cfg.Commitment)
	assert.Equal(t, 32, cfg.MaxInFlight)
	assert.Equal(t, 500*time.Millisecond, cfg.PollInterval)
	assert.Equal(t, 90*time.Second, cfg.ConfirmTimeout)
	assert.Equal(t, "nats://localhost:4222", cfg.NATSURL)
}

func TestValidate_ReconnectBounds(t *testing.T) {
	setRequiredEnv()
	defer cleanupEnv()

	cfg, err := Load()
	require.NoError(t, err)

	cfg.ReconnectMaxBackoff = cfg.ReconnectBaseBackoff / 2
	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be less than ReconnectBaseBackoff")

	cfg, err = Load()
	require.NoError(t, err)
	cfg.ReconnectMaxAttempts = 0
	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ReconnectMaxAttempts must be at least 1")
}
