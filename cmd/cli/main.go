package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/amirasaad/walletbot/infra/initializer"
	"github.com/amirasaad/walletbot/infra/transport/console"
	"github.com/amirasaad/walletbot/pkg/app"
	"github.com/amirasaad/walletbot/pkg/config"
	"github.com/fatih/color"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, "Error:", err) //nolint:errcheck
		os.Exit(1)
	}
}

// run starts a console chat session. Replies go to stdout, logs to stderr.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("cli", flag.ContinueOnError)
	fs.SetOutput(stderr)
	user := fs.Int64("user", 1, "chat user id the session acts as")
	envFile := fs.String("env", config.GetEnv("ENV_FILE", ".env"), "environment file to load")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: cli [-user id] [-env file]")                                 //nolint:errcheck
		fmt.Fprintln(fs.Output(), "Commands: /start, /deposit [amount], /withdraw [amount],")          //nolint:errcheck
		fmt.Fprintln(fs.Output(), "          /transfer <wallet_id> <amount>, /add_payment ..., /quit") //nolint:errcheck
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*envFile)
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}
	deps, err := initializer.InitializeDependencies(cfg, stderr)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	a := app.New(deps, cfg)

	return console.New(stdin, stdout, a.Router, *user, deps.Logger).Run(ctx)
}
