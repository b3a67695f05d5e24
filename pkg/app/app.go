package app

import (
	"log/slog"

	"github.com/amirasaad/walletbot/pkg/bot"
	"github.com/amirasaad/walletbot/pkg/config"
	"github.com/amirasaad/walletbot/pkg/metrics"
	"github.com/amirasaad/walletbot/pkg/provider/walletapi"
	"github.com/amirasaad/walletbot/pkg/service/operation"
	"github.com/prometheus/client_golang/prometheus"
)

// Deps holds the infrastructure the services are built from.
type Deps struct {
	WalletAPI walletapi.WalletAPI
	Metrics   *metrics.Operations
	Registry  *prometheus.Registry
	Logger    *slog.Logger
}

type App struct {
	Deps       *Deps
	Config     *config.App
	Dispatcher *operation.Service
	Router     *bot.Router
}

func New(deps *Deps, cfg *config.App) *App {
	dispatcher := operation.New(deps.WalletAPI, deps.Metrics, deps.Logger)
	return &App{
		Deps:       deps,
		Config:     cfg,
		Dispatcher: dispatcher,
		Router:     bot.New(dispatcher, cfg.Bot, deps.Logger),
	}
}
