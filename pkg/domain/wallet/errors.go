package wallet

import "errors"

var (
	// ErrUsage is returned when a command carries missing or malformed arguments.
	// It is raised before any request leaves the process.
	ErrUsage = errors.New("invalid command usage")

	// ErrTransport is returned when the wallet API cannot be reached or answers
	// with a non-2xx status.
	ErrTransport = errors.New("wallet api transport failure")

	// ErrMalformedResponse is returned when the wallet API answers 2xx but the
	// body lacks the fields the operation expects.
	ErrMalformedResponse = errors.New("malformed wallet api response")

	// ErrUnknownKind is returned for an operation kind the dispatcher does not serve.
	ErrUnknownKind = errors.New("unknown operation kind")
)
