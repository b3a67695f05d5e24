package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/amirasaad/walletbot/infra/initializer"
	"github.com/amirasaad/walletbot/infra/transport/telegram"
	"github.com/amirasaad/walletbot/pkg/app"
	"github.com/amirasaad/walletbot/pkg/config"
	"github.com/amirasaad/walletbot/webapi"
	telegramweb "github.com/amirasaad/walletbot/webapi/telegram"
	log "github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load(config.GetEnv("ENV_FILE", ".env"))
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}
	if err := cfg.ValidateTelegram(); err != nil {
		return err
	}

	deps, err := initializer.InitializeDependencies(cfg, os.Stdout)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	logger := deps.Logger
	a := app.New(deps, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	transport, err := telegram.New(cfg.Telegram, a.Router, logger)
	if err != nil {
		return err
	}
	if err := transport.RegisterCommands(a.Router.Commands()); err != nil {
		logger.Warn("Failed to register bot commands", "error", err)
	}

	var receiver telegramweb.Receiver
	switch cfg.Telegram.Mode {
	case config.TelegramModeWebhook:
		if err := transport.SetWebhook(cfg.Telegram.WebhookURL, cfg.Telegram.WebhookSecret); err != nil {
			return err
		}
		receiver = transport
	default:
		if err := transport.DeleteWebhook(); err != nil {
			return err
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	fiberApp := webapi.SetupApp(gctx, a, receiver)
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)

	logger.Info("Starting server",
		"env", cfg.Env,
		"address", addr,
		"scheme", cfg.Server.Scheme,
		"telegram_mode", cfg.Telegram.Mode,
	)

	g.Go(func() error {
		return fiberApp.Listen(addr)
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down")
		return fiberApp.ShutdownWithTimeout(shutdownTimeout)
	})
	if receiver == nil {
		g.Go(func() error {
			return transport.Run(gctx)
		})
	}

	err = g.Wait()
	transport.Wait()
	return err
}
