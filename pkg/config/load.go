package config

import (
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

func Load(envFilePath ...string) (*App, error) {
	logger := slog.Default()
	logger.Info("Loading environment variables")

	// If no specific paths provided, try default .env
	if len(envFilePath) == 0 {
		logger.Debug("No environment file specified, trying default .env")
		if err := godotenv.Load(); err != nil {
			logger.Warn("No .env file found in current directory")
		}
		return loadFromEnv()
	}

	// Try each provided path until we find a valid one
	for _, path := range envFilePath {
		logger.Debug("Looking for environment file", "path", path)
		foundPath, err := FindEnvFile(path)
		if err != nil {
			logger.Debug("Environment file not found", "path", path, "error", err)
			continue
		}

		logger.Info("Loading environment from file", "path", foundPath)
		if err := godotenv.Load(foundPath); err != nil {
			logger.Error("Failed to load environment file", "path", foundPath, "error", err)
			continue
		}
		return loadFromEnv()
	}

	logger.Info("No valid environment files found, using process environment")
	return loadFromEnv()
}

func loadFromEnv() (*App, error) {
	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := validator.New().Struct(cfg.Wallet); err != nil {
		return nil, fmt.Errorf("invalid wallet config: %w", err)
	}
	if err := validator.New().Struct(cfg.Bot); err != nil {
		return nil, fmt.Errorf("invalid bot config: %w", err)
	}

	slog.Default().Info("App config loaded",
		"env", cfg.Env,
		"server_port", cfg.Server.Port,
		"wallet_api_url", cfg.Wallet.ApiUrl,
		"wallet_api_key", maskValue(cfg.Wallet.ApiKey),
		"wallet_http_timeout", cfg.Wallet.HTTPTimeout,
		"telegram_mode", cfg.Telegram.Mode,
		"telegram_token", maskValue(cfg.Telegram.Token),
	)
	return &cfg, nil
}

// ValidateTelegram checks the transport settings. It is separate from Load
// because the console transport runs without a Telegram token.
func (a *App) ValidateTelegram() error {
	if a.Telegram == nil {
		return fmt.Errorf("telegram config is missing")
	}
	if err := validator.New().Struct(a.Telegram); err != nil {
		return fmt.Errorf("invalid telegram config: %w", err)
	}
	return nil
}

func maskValue(key string) string {
	if len(key) <= 6 {
		return "****"
	}
	return key[:2] + "****" + key[len(key)-4:]
}
