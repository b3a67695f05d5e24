// Package webapi exposes the bot's HTTP surface: liveness, Prometheus metrics
// and, in webhook mode, the Telegram update endpoint.
package webapi

import (
	"context"
	"errors"
	"strings"

	"github.com/amirasaad/walletbot/pkg/app"
	"github.com/amirasaad/walletbot/webapi/common"
	telegramweb "github.com/amirasaad/walletbot/webapi/telegram"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupApp Initialize Fiber with custom configuration. receiver may be nil,
// in which case the webhook route is not mounted.
func SetupApp(ctx context.Context, a *app.App, receiver telegramweb.Receiver) *fiber.App {
	fiberApp := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return common.ProblemDetailsJSON(c, "Internal Server Error", err)
		},
	})

	if rl := a.Config.RateLimit; rl != nil && rl.MaxRequests > 0 {
		fiberApp.Use(limiter.New(limiter.Config{
			Max:        rl.MaxRequests,
			Expiration: rl.Window,
			Next: func(c *fiber.Ctx) bool {
				// Webhook deliveries are exempt.
				return c.Path() == "/telegram/webhook"
			},
			KeyGenerator: func(c *fiber.Ctx) string {
				if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
					if commaIndex := strings.Index(forwardedFor, ","); commaIndex != -1 {
						return strings.TrimSpace(forwardedFor[:commaIndex])
					}
					return strings.TrimSpace(forwardedFor)
				}
				return c.IP()
			},
			LimitReached: func(c *fiber.Ctx) error {
				return common.ProblemDetailsJSON(
					c,
					"Too Many Requests",
					errors.New("rate limit exceeded"),
					fiber.StatusTooManyRequests,
				)
			},
		}))
	}
	fiberApp.Use(recover.New())
	fiberApp.Use(logger.New(logger.Config{
		Next: func(c *fiber.Ctx) bool { return c.Path() == "/health" },
	}))

	fiberApp.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Wallet bot is running! 🚀")
	})

	fiberApp.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":   "ok",
			"env":      a.Config.Env,
			"provider": a.Deps.WalletAPI.Name(),
		})
	})

	if a.Deps.Registry != nil {
		fiberApp.Get("/metrics", adaptor.HTTPHandler(
			promhttp.HandlerFor(a.Deps.Registry, promhttp.HandlerOpts{}),
		))
	}

	if receiver != nil {
		secret := ""
		if a.Config.Telegram != nil {
			secret = a.Config.Telegram.WebhookSecret
		}
		telegramweb.Routes(ctx, fiberApp, receiver, secret)
	}
	return fiberApp
}
