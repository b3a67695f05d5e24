package config

import (
	"time"
)

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[walletbot]"`
}

type Server struct {
	Scheme string `envconfig:"SCHEME" default:"http"`
	Host   string `envconfig:"HOST" default:"localhost"`
	Port   int    `envconfig:"PORT" default:"3000"`
}

type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

// Wallet configures the remote wallet API client.
//
//revive:disable
type Wallet struct {
	ApiUrl      string        `envconfig:"API_URL" default:"https://api.circle.com/v2" validate:"required,url"`
	ApiKey      string        `envconfig:"API_KEY" required:"true" validate:"required"`
	Currency    string        `envconfig:"CURRENCY" default:"USD" validate:"len=3"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s" validate:"gt=0"`
}

//revive:enable

const (
	TelegramModePolling = "polling"
	TelegramModeWebhook = "webhook"
)

// Telegram configures the chat transport.
type Telegram struct {
	Token         string        `envconfig:"TOKEN" validate:"required"`
	Mode          string        `envconfig:"MODE" default:"polling" validate:"oneof=polling webhook"`
	WebhookURL    string        `envconfig:"WEBHOOK_URL" validate:"required_if=Mode webhook,omitempty,url"`
	WebhookSecret string        `envconfig:"WEBHOOK_SECRET"`
	PollTimeout   time.Duration `envconfig:"POLL_TIMEOUT" default:"60s"`
	Debug         bool          `envconfig:"DEBUG" default:"false"`
}

// Bot holds the defaults used when a command omits its amount.
type Bot struct {
	DefaultDeposit  int64 `envconfig:"DEFAULT_DEPOSIT" default:"10" validate:"gt=0"`
	DefaultWithdraw int64 `envconfig:"DEFAULT_WITHDRAW" default:"5" validate:"gt=0"`
}

type App struct {
	Env       string     `envconfig:"APP_ENV" default:"development"`
	Server    *Server    `envconfig:"SERVER"`
	RateLimit *RateLimit `envconfig:"RATE_LIMIT"`
	Log       *Log       `envconfig:"LOG"`
	Wallet    *Wallet    `envconfig:"WALLET"`
	Telegram  *Telegram  `envconfig:"TELEGRAM"`
	Bot       *Bot       `envconfig:"BOT"`
}
