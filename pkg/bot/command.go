package bot

import (
	"strings"
)

// Command describes a chat command for help output and client menus.
type Command struct {
	Name        string
	Description string
}

// Message is an inbound chat message, independent of the transport.
type Message struct {
	// SubjectID is the sender's user id. It identifies the wallet.
	SubjectID int64
	ChatID    int64
	Text      string
}

// ParseCommand splits text into a command name and its arguments.
// "/Transfer@WalletBot 42 100" yields ("transfer", ["42", "100"], true).
// Text is a command only when "/" is its first character.
func ParseCommand(text string) (name string, args []string, ok bool) {
	if !strings.HasPrefix(text, "/") {
		return "", nil, false
	}
	fields := strings.Fields(text)
	name = strings.TrimPrefix(fields[0], "/")
	if at := strings.IndexByte(name, '@'); at >= 0 {
		name = name[:at]
	}
	if name == "" {
		return "", nil, false
	}
	return strings.ToLower(name), fields[1:], true
}
