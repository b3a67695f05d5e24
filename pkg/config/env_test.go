package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("TEST_VAR", "test_value")

	assert.Equal(t, "test_value", GetEnv("TEST_VAR", "default"))
	assert.Equal(t, "default", GetEnv("NONEXISTENT_VAR", "default"))
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("WALLET_API_KEY", "sk_test_1234567890")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "https://api.circle.com/v2", cfg.Wallet.ApiUrl)
	assert.Equal(t, "USD", cfg.Wallet.Currency)
	assert.Equal(t, 10*time.Second, cfg.Wallet.HTTPTimeout)
	assert.Equal(t, TelegramModePolling, cfg.Telegram.Mode)
	assert.Equal(t, int64(10), cfg.Bot.DefaultDeposit)
	assert.Equal(t, int64(5), cfg.Bot.DefaultWithdraw)
	assert.Equal(t, 3000, cfg.Server.Port)
}

func TestLoad_FromEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	content := "WALLET_API_KEY=from_file_key\nWALLET_API_URL=http://localhost:9999\nBOT_DEFAULT_DEPOSIT=25\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("WALLET_API_KEY")      //nolint:errcheck
		os.Unsetenv("WALLET_API_URL")      //nolint:errcheck
		os.Unsetenv("BOT_DEFAULT_DEPOSIT") //nolint:errcheck
	})

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from_file_key", cfg.Wallet.ApiKey)
	assert.Equal(t, "http://localhost:9999", cfg.Wallet.ApiUrl)
	assert.Equal(t, int64(25), cfg.Bot.DefaultDeposit)
}

func TestLoad_MissingAPIKey(t *testing.T) {
	t.Setenv("WALLET_API_KEY", "")
	os.Unsetenv("WALLET_API_KEY") //nolint:errcheck

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestLoad_RejectsInvalidDefaults(t *testing.T) {
	t.Setenv("WALLET_API_KEY", "sk_test_1234567890")
	t.Setenv("BOT_DEFAULT_WITHDRAW", "0")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestValidateTelegram(t *testing.T) {
	cfg := &App{Telegram: &Telegram{Token: "123:abc", Mode: TelegramModePolling}}
	assert.NoError(t, cfg.ValidateTelegram())

	cfg.Telegram.Mode = TelegramModeWebhook
	assert.Error(t, cfg.ValidateTelegram(), "webhook mode needs a URL")

	cfg.Telegram.WebhookURL = "https://bot.example.com/telegram/webhook"
	assert.NoError(t, cfg.ValidateTelegram())

	cfg.Telegram.Token = ""
	assert.Error(t, cfg.ValidateTelegram())

	assert.Error(t, (&App{}).ValidateTelegram())
}

func TestMaskValue(t *testing.T) {
	assert.Equal(t, "****", maskValue("short"))
	assert.Equal(t, "sk****7890", maskValue("sk_test_1234567890"))
}
