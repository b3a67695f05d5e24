// Package bot maps chat commands onto wallet operations and renders the
// replies. It knows nothing about the transport delivering the messages.
package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/amirasaad/walletbot/pkg/config"
	"github.com/amirasaad/walletbot/pkg/domain/wallet"
	"github.com/amirasaad/walletbot/pkg/service/operation"
)

type handlerFunc func(ctx context.Context, subject string, args []string) string

type route struct {
	Command
	handle handlerFunc
}

// Router dispatches parsed commands. It holds no per-message state and is safe
// for concurrent use.
type Router struct {
	dispatcher operation.Dispatcher
	cfg        config.Bot
	logger     *slog.Logger
	routes     map[string]route
	order      []string
}

// New creates a Router. A nil cfg falls back to deposit 10 and withdraw 5.
func New(dispatcher operation.Dispatcher, cfg *config.Bot, logger *slog.Logger) *Router {
	if logger == nil {
		logger = slog.Default()
	}
	c := config.Bot{DefaultDeposit: 10, DefaultWithdraw: 5}
	if cfg != nil {
		c = *cfg
	}
	r := &Router{
		dispatcher: dispatcher,
		cfg:        c,
		logger:     logger,
		routes:     make(map[string]route),
	}
	r.register("start", "Create your wallet", r.start)
	r.register("deposit", "Deposit funds: /deposit [amount]", r.deposit)
	r.register("withdraw", "Withdraw funds: /withdraw [amount]", r.withdraw)
	r.register("transfer", "Send funds: /transfer <wallet_id> <amount>", r.transfer)
	r.register("add_payment", "Attach a card to your account", r.addPayment)
	r.register("help", "List available commands", r.help)
	return r
}

func (r *Router) register(name, description string, h handlerFunc) {
	r.routes[name] = route{Command: Command{Name: name, Description: description}, handle: h}
	r.order = append(r.order, name)
}

// Commands lists the registered commands in registration order.
func (r *Router) Commands() []Command {
	out := make([]Command, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.routes[name].Command)
	}
	return out
}

// Handle produces the reply for msg. ok is false when nothing should be sent:
// empty text or an unknown command.
func (r *Router) Handle(ctx context.Context, msg Message) (reply string, ok bool) {
	name, args, isCommand := ParseCommand(msg.Text)
	if !isCommand {
		if strings.TrimSpace(msg.Text) == "" {
			return "", false
		}
		return msg.Text, true
	}

	rt, found := r.routes[name]
	if !found {
		r.logger.Debug("Ignoring unknown command", "command", name, "subject_id", msg.SubjectID)
		return "", false
	}
	subject := strconv.FormatInt(msg.SubjectID, 10)
	return rt.handle(ctx, subject, args), true
}

func (r *Router) start(ctx context.Context, subject string, _ []string) string {
	res := r.dispatcher.Dispatch(ctx, wallet.NewCreateWallet(subject))
	if !res.OK() {
		return msgCreateFailed
	}
	return fmt.Sprintf(msgWalletCreated, res.WalletID)
}

func (r *Router) deposit(ctx context.Context, subject string, args []string) string {
	amount, err := optionalAmount(args, r.cfg.DefaultDeposit)
	if err != nil {
		return usageDeposit
	}
	res := r.dispatcher.Dispatch(ctx, wallet.NewDeposit(subject, amount))
	return reply(res, usageDeposit, msgDepositFailed, func() string {
		return fmt.Sprintf(msgDeposited, amount, res.TransactionID)
	})
}

func (r *Router) withdraw(ctx context.Context, subject string, args []string) string {
	amount, err := optionalAmount(args, r.cfg.DefaultWithdraw)
	if err != nil {
		return usageWithdraw
	}
	res := r.dispatcher.Dispatch(ctx, wallet.NewWithdraw(subject, amount))
	return reply(res, usageWithdraw, msgWithdrawFailed, func() string {
		return fmt.Sprintf(msgWithdrew, amount, res.TransactionID)
	})
}

func (r *Router) transfer(ctx context.Context, subject string, args []string) string {
	if len(args) != 2 {
		return usageTransfer
	}
	dest, err := wallet.ParseAmount(args[0])
	if err != nil {
		return usageTransfer
	}
	amount, err := wallet.ParseAmount(args[1])
	if err != nil {
		return usageTransfer
	}
	// "042" and "42" name the same wallet and must share an idempotency key.
	destination := strconv.FormatInt(dest, 10)
	res := r.dispatcher.Dispatch(ctx, wallet.NewTransfer(subject, destination, amount))
	return reply(res, usageTransfer, msgTransferFailed, func() string {
		return fmt.Sprintf(msgTransferred, amount, destination, res.TransactionID)
	})
}

func (r *Router) addPayment(ctx context.Context, subject string, args []string) string {
	card, err := parseCard(args)
	if err != nil {
		return usageAddPayment
	}
	res := r.dispatcher.Dispatch(ctx, wallet.NewAddPaymentMethod(subject, card))
	return reply(res, usageAddPayment, msgPaymentFailed, func() string {
		return msgPaymentAdded
	})
}

func (r *Router) help(_ context.Context, _ string, _ []string) string {
	var b strings.Builder
	b.WriteString("Available commands:")
	for _, c := range r.Commands() {
		fmt.Fprintf(&b, "\n/%s - %s", c.Name, c.Description)
	}
	return b.String()
}

// reply renders res: usage on ErrUsage, the generic failure message on any
// other error and success() otherwise.
func reply(res wallet.Result, usage, failure string, success func() string) string {
	switch {
	case res.OK():
		return success()
	case errors.Is(res.Err, wallet.ErrUsage):
		return usage
	default:
		return failure
	}
}

func optionalAmount(args []string, fallback int64) (int64, error) {
	switch len(args) {
	case 0:
		return fallback, nil
	case 1:
		return wallet.ParseAmount(args[0])
	default:
		return 0, wallet.ErrUsage
	}
}

func parseCard(args []string) (wallet.Card, error) {
	if len(args) < 5 {
		return wallet.Card{}, wallet.ErrUsage
	}
	month, err := strconv.Atoi(args[1])
	if err != nil {
		return wallet.Card{}, wallet.ErrUsage
	}
	year, err := strconv.Atoi(args[2])
	if err != nil {
		return wallet.Card{}, wallet.ErrUsage
	}
	card := wallet.Card{
		Number:      args[0],
		ExpMonth:    month,
		ExpYear:     year,
		CVV:         args[3],
		BillingName: strings.Join(args[4:], " "),
	}
	if err := card.Validate(); err != nil {
		return wallet.Card{}, err
	}
	return card, nil
}
