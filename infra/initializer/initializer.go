package initializer

import (
	"fmt"
	"io"

	"github.com/amirasaad/walletbot/infra/provider/circle"
	"github.com/amirasaad/walletbot/pkg/app"
	"github.com/amirasaad/walletbot/pkg/config"
	"github.com/amirasaad/walletbot/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// InitializeDependencies initializes all the application dependencies.
// Logs are written to logOut.
func InitializeDependencies(cfg *config.App, logOut io.Writer) (*app.Deps, error) {
	if cfg == nil || cfg.Wallet == nil {
		return nil, fmt.Errorf("wallet configuration is required")
	}
	logger := SetupLogger(cfg.Log, logOut)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	provider := circle.New(cfg.Wallet, logger)
	logger.Info("Wallet API provider initialized",
		"provider", provider.Name(),
		"url", cfg.Wallet.ApiUrl,
		"timeout", cfg.Wallet.HTTPTimeout,
	)

	return &app.Deps{
		WalletAPI: provider,
		Metrics:   metrics.NewOperations(reg),
		Registry:  reg,
		Logger:    logger,
	}, nil
}
