// Package console feeds lines from a terminal (or any reader) to the command
// router as if they were chat messages from a single user.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/amirasaad/walletbot/pkg/bot"
	"github.com/fatih/color"
	"golang.org/x/term"
)

// Handler produces the reply for an inbound message.
type Handler interface {
	Handle(ctx context.Context, msg bot.Message) (string, bool)
}

// Console is a line-oriented chat session.
type Console struct {
	in        io.Reader
	out       io.Writer
	handler   Handler
	subjectID int64
	logger    *slog.Logger
	prompt    bool
	replyFmt  *color.Color
	promptFmt *color.Color
}

// New creates a Console reading from in and writing replies to out on behalf
// of subjectID. Colors and the prompt are enabled only when in is a terminal.
func New(in io.Reader, out io.Writer, handler Handler, subjectID int64, logger *slog.Logger) *Console {
	if logger == nil {
		logger = slog.Default()
	}
	interactive := isTerminal(in)
	replyFmt := color.New(color.FgGreen)
	promptFmt := color.New(color.FgCyan, color.Bold)
	if !interactive {
		replyFmt.DisableColor()
		promptFmt.DisableColor()
	}
	return &Console{
		in:        in,
		out:       out,
		handler:   handler,
		subjectID: subjectID,
		logger:    logger,
		prompt:    interactive,
		replyFmt:  replyFmt,
		promptFmt: promptFmt,
	}
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Run processes lines until EOF, "/quit" or ctx cancellation. A read blocked
// on in does not delay cancellation.
func (c *Console) Run(ctx context.Context) error {
	readCtx, stop := context.WithCancel(ctx)
	defer stop()
	lines := make(chan string)
	errc := make(chan error, 1)
	go c.read(readCtx, lines, errc)

	c.showPrompt()
	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return <-errc
			}
			if ctx.Err() != nil {
				return nil
			}
			line = strings.TrimSpace(line)
			if line == "/quit" || line == "/exit" {
				return nil
			}
			c.handle(ctx, line)
			c.showPrompt()
		}
	}
}

// read scans in and sends each line on lines. It reports the scan error on
// errc before closing lines.
func (c *Console) read(ctx context.Context, lines chan<- string, errc chan<- error) {
	defer close(lines)
	scanner := bufio.NewScanner(c.in)
	for scanner.Scan() {
		select {
		case lines <- scanner.Text():
		case <-ctx.Done():
			errc <- nil
			return
		}
	}
	if err := scanner.Err(); err != nil {
		errc <- fmt.Errorf("failed to read input: %w", err)
		return
	}
	errc <- nil
}

func (c *Console) handle(ctx context.Context, line string) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("Handler panicked", "panic", r)
		}
	}()
	reply, ok := c.handler.Handle(ctx, bot.Message{
		SubjectID: c.subjectID,
		ChatID:    c.subjectID,
		Text:      line,
	})
	if !ok {
		return
	}
	if _, err := c.replyFmt.Fprintln(c.out, reply); err != nil {
		c.logger.Error("Failed to write reply", "error", err)
	}
}

func (c *Console) showPrompt() {
	if !c.prompt {
		return
	}
	_, _ = c.promptFmt.Fprint(c.out, "> ")
}
