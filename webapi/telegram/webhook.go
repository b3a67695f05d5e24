package telegram

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"

	infratelegram "github.com/amirasaad/walletbot/infra/transport/telegram"
	"github.com/amirasaad/walletbot/webapi/common"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/gofiber/fiber/v2"
)

// Receiver accepts updates delivered by webhook.
type Receiver interface {
	Dispatch(ctx context.Context, update tgbotapi.Update)
}

// WebhookHandler acknowledges Telegram updates and hands them to receiver.
// Updates are processed asynchronously on ctx, which must outlive the request.
func WebhookHandler(ctx context.Context, receiver Receiver, secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if secret != "" {
			got := c.Get(infratelegram.HeaderSecretToken)
			if subtle.ConstantTimeCompare([]byte(got), []byte(secret)) != 1 {
				return common.ProblemDetailsJSON(
					c,
					"Unauthorized",
					errors.New("invalid webhook secret"),
					fiber.StatusUnauthorized,
				)
			}
		}

		var update tgbotapi.Update
		if err := json.Unmarshal(c.Body(), &update); err != nil {
			return common.ProblemDetailsJSON(c, "Invalid update", err, fiber.StatusBadRequest)
		}
		receiver.Dispatch(ctx, update)
		return c.SendStatus(fiber.StatusOK)
	}
}

// Routes mounts the webhook endpoint.
func Routes(ctx context.Context, app *fiber.App, receiver Receiver, secret string) {
	app.Post("/telegram/webhook", WebhookHandler(ctx, receiver, secret))
}
