// Package telegram connects the command router to the Telegram Bot API,
// either by long polling or by receiving webhook updates.
package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/amirasaad/walletbot/pkg/bot"
	"github.com/amirasaad/walletbot/pkg/config"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// HeaderSecretToken is set by Telegram on webhook deliveries when a secret
// was registered with setWebhook.
const HeaderSecretToken = "X-Telegram-Bot-Api-Secret-Token"

// API is the subset of *tgbotapi.BotAPI used by the transport.
type API interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	MakeRequest(endpoint string, params tgbotapi.Params) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

// Handler produces the reply for an inbound message.
type Handler interface {
	Handle(ctx context.Context, msg bot.Message) (string, bool)
}

// Transport delivers Telegram updates to a Handler. Each update is handled in
// its own goroutine; handlers share no state through the transport.
type Transport struct {
	api         API
	handler     Handler
	logger      *slog.Logger
	pollTimeout time.Duration
	wg          sync.WaitGroup
}

// New connects to the Bot API with the configured token.
func New(cfg *config.Telegram, handler Handler, logger *slog.Logger) (*Transport, error) {
	api, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to telegram: %w", err)
	}
	api.Debug = cfg.Debug
	t := NewWithAPI(api, handler, logger)
	t.pollTimeout = cfg.PollTimeout
	t.logger.Info("Authorized on telegram", "username", api.Self.UserName)
	return t, nil
}

// NewWithAPI creates a Transport around an existing API client.
func NewWithAPI(api API, handler Handler, logger *slog.Logger) *Transport {
	if logger == nil {
		logger = slog.Default()
	}
	return &Transport{
		api:         api,
		handler:     handler,
		logger:      logger.With("transport", "telegram"),
		pollTimeout: 60 * time.Second,
	}
}

// RegisterCommands publishes the command menu shown by Telegram clients.
func (t *Transport) RegisterCommands(commands []bot.Command) error {
	cmds := make([]tgbotapi.BotCommand, 0, len(commands))
	for _, c := range commands {
		cmds = append(cmds, tgbotapi.BotCommand{Command: c.Name, Description: c.Description})
	}
	if _, err := t.api.Request(tgbotapi.NewSetMyCommands(cmds...)); err != nil {
		return fmt.Errorf("failed to register commands: %w", err)
	}
	return nil
}

// SetWebhook registers url with Telegram. When secret is non-empty Telegram
// echoes it back in HeaderSecretToken on every delivery.
func (t *Transport) SetWebhook(url, secret string) error {
	params := tgbotapi.Params{"url": url}
	params.AddNonEmpty("secret_token", secret)
	if _, err := t.api.MakeRequest("setWebhook", params); err != nil {
		return fmt.Errorf("failed to set webhook: %w", err)
	}
	t.logger.Info("Webhook registered", "url", url)
	return nil
}

// DeleteWebhook removes any registered webhook so long polling can be used.
func (t *Transport) DeleteWebhook() error {
	if _, err := t.api.Request(tgbotapi.DeleteWebhookConfig{}); err != nil {
		return fmt.Errorf("failed to delete webhook: %w", err)
	}
	return nil
}

// Run long-polls for updates until ctx is canceled, then waits for in-flight
// handlers to finish.
func (t *Transport) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = int(t.pollTimeout.Seconds())
	updates := t.api.GetUpdatesChan(u)
	t.logger.Info("Polling for updates", "timeout", t.pollTimeout)

	for {
		select {
		case <-ctx.Done():
			t.api.StopReceivingUpdates()
			t.Wait()
			t.logger.Info("Polling stopped")
			return nil
		case update, ok := <-updates:
			if !ok {
				t.Wait()
				return nil
			}
			t.Dispatch(ctx, update)
		}
	}
}

// Dispatch handles update in a new goroutine. The handler outlives
// cancellation of ctx; the wallet API client timeout bounds it.
func (t *Transport) Dispatch(ctx context.Context, update tgbotapi.Update) {
	ctx = context.WithoutCancel(ctx)
	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		t.HandleUpdate(ctx, update)
	}()
}

// Wait blocks until every dispatched update has been handled.
func (t *Transport) Wait() {
	t.wg.Wait()
}

// HandleUpdate converts update, runs the handler and sends the reply.
// A panicking handler is logged and never escapes.
func (t *Transport) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	msg, ok := toMessage(update)
	if !ok {
		return
	}
	log := t.logger.With("update_id", update.UpdateID, "subject_id", msg.SubjectID)

	defer func() {
		if r := recover(); r != nil {
			log.Error("Handler panicked", "panic", r)
		}
	}()

	reply, ok := t.handler.Handle(ctx, msg)
	if !ok {
		return
	}
	out := tgbotapi.NewMessage(msg.ChatID, reply)
	out.ReplyToMessageID = update.Message.MessageID
	if _, err := t.api.Send(out); err != nil {
		log.Error("Failed to send reply", "error", err)
	}
}

func toMessage(update tgbotapi.Update) (bot.Message, bool) {
	m := update.Message
	if m == nil || m.From == nil || m.Chat == nil || m.Text == "" {
		return bot.Message{}, false
	}
	return bot.Message{
		SubjectID: m.From.ID,
		ChatID:    m.Chat.ID,
		Text:      m.Text,
	}, true
}
