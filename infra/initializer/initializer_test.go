package initializer

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/amirasaad/walletbot/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeDependencies(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var out bytes.Buffer
	cfg := &config.App{
		Log:    &config.Log{Format: "json", Level: 0},
		Wallet: &config.Wallet{ApiUrl: "http://localhost:1", ApiKey: "k", HTTPTimeout: time.Second},
	}

	deps, err := InitializeDependencies(cfg, &out)
	require.NoError(t, err)
	assert.Equal(t, "circle", deps.WalletAPI.Name())
	assert.NotNil(t, deps.Metrics)
	assert.NotNil(t, deps.Logger)

	families, err := deps.Registry.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)

	assert.Contains(t, out.String(), "Wallet API provider initialized")
}

func TestInitializeDependencies_MissingWallet(t *testing.T) {
	_, err := InitializeDependencies(&config.App{}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestSetupLogger_LevelFiltering(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var out bytes.Buffer
	logger := SetupLogger(&config.Log{Format: "text", Level: int(slog.LevelWarn)}, &out)

	logger.Info("hidden message")
	logger.Warn("visible message", "kind", "deposit")

	assert.NotContains(t, out.String(), "hidden message")
	assert.Contains(t, out.String(), "visible message")
	assert.Same(t, logger, slog.Default())
}
