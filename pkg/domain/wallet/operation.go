// Package wallet holds the operation model forwarded to the remote wallet API:
// operation kinds, the request and result values, the idempotency key
// derivation and the error taxonomy shared by every layer above it.
package wallet

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies a financial operation.
type Kind string

const (
	KindCreateWallet     Kind = "create-wallet"
	KindDeposit          Kind = "deposit"
	KindWithdraw         Kind = "withdraw"
	KindTransfer         Kind = "transfer"
	KindAddPaymentMethod Kind = "add-payment-method"
)

// Kinds lists every operation kind in a stable order.
var Kinds = []Kind{
	KindCreateWallet,
	KindDeposit,
	KindWithdraw,
	KindTransfer,
	KindAddPaymentMethod,
}

func (k Kind) String() string { return string(k) }

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	for _, known := range Kinds {
		if k == known {
			return true
		}
	}
	return false
}

// Operation is a single request destined for the wallet API.
// It is built, sent once and discarded.
type Operation struct {
	Kind Kind
	// SubjectID is the chat user id; it doubles as the wallet id for
	// deposits, withdrawals and as the transfer source.
	SubjectID string
	// DestinationID is only set for transfers.
	DestinationID string
	// Amount is expressed in minor units. Zero means absent.
	Amount int64
	// Card is only set for AddPaymentMethod.
	Card *Card
}

// NewCreateWallet returns a CreateWallet operation for subject.
func NewCreateWallet(subject string) Operation {
	return Operation{Kind: KindCreateWallet, SubjectID: subject}
}

// NewDeposit returns a Deposit operation crediting amount to the subject's wallet.
func NewDeposit(subject string, amount int64) Operation {
	return Operation{Kind: KindDeposit, SubjectID: subject, Amount: amount}
}

// NewWithdraw returns a Withdraw operation debiting amount from the subject's wallet.
func NewWithdraw(subject string, amount int64) Operation {
	return Operation{Kind: KindWithdraw, SubjectID: subject, Amount: amount}
}

// NewTransfer returns a Transfer operation moving amount from subject to destination.
func NewTransfer(subject, destination string, amount int64) Operation {
	return Operation{
		Kind:          KindTransfer,
		SubjectID:     subject,
		DestinationID: destination,
		Amount:        amount,
	}
}

// NewAddPaymentMethod returns an AddPaymentMethod operation attaching card to subject.
func NewAddPaymentMethod(subject string, card Card) Operation {
	return Operation{Kind: KindAddPaymentMethod, SubjectID: subject, Card: &card}
}

// IdempotencyKey returns the key the wallet API uses to deduplicate o.
func (o Operation) IdempotencyKey() string {
	return IdempotencyKey(o.Kind, o.SubjectID, o.DestinationID, o.Amount)
}

// Validate checks the operation can be sent. Argument failures wrap ErrUsage;
// an unrecognised kind wraps ErrUnknownKind.
func (o Operation) Validate() error {
	if !o.Kind.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownKind, o.Kind)
	}
	if strings.TrimSpace(o.SubjectID) == "" {
		return fmt.Errorf("%w: subject id is required", ErrUsage)
	}
	switch o.Kind {
	case KindDeposit, KindWithdraw:
		if o.Amount <= 0 {
			return fmt.Errorf("%w: amount must be a positive integer", ErrUsage)
		}
	case KindTransfer:
		if _, err := strconv.ParseInt(o.SubjectID, 10, 64); err != nil {
			return fmt.Errorf("%w: source %q is not numeric", ErrUsage, o.SubjectID)
		}
		if !IsPositiveInteger(o.DestinationID) {
			return fmt.Errorf("%w: destination %q is not a positive integer", ErrUsage, o.DestinationID)
		}
		if o.Amount <= 0 {
			return fmt.Errorf("%w: amount must be a positive integer", ErrUsage)
		}
	case KindAddPaymentMethod:
		if o.Card == nil {
			return fmt.Errorf("%w: card details are required", ErrUsage)
		}
		if err := o.Card.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// IdempotencyKey derives the deduplication key from the identifying fields of
// an operation: {kind}-{subject}[-{destination}][-{amount}].
// The destination segment is emitted only when non-empty and the amount segment
// only when positive.
func IdempotencyKey(kind Kind, subject, destination string, amount int64) string {
	var b strings.Builder
	b.WriteString(string(kind))
	b.WriteByte('-')
	b.WriteString(subject)
	if destination != "" {
		b.WriteByte('-')
		b.WriteString(destination)
	}
	if amount > 0 {
		b.WriteByte('-')
		b.WriteString(strconv.FormatInt(amount, 10))
	}
	return b.String()
}

// IsDigits reports whether s is a non-empty string of ASCII digits.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// IsPositiveInteger reports whether s is a digit string denoting a value > 0
// that fits in an int64.
func IsPositiveInteger(s string) bool {
	_, err := ParseAmount(s)
	return err == nil
}

// ParseAmount parses a digit-string amount. Signs, decimals, zero and values
// overflowing int64 are rejected with ErrUsage.
func ParseAmount(s string) (int64, error) {
	if !IsDigits(s) {
		return 0, fmt.Errorf("%w: %q is not a number", ErrUsage, s)
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is out of range", ErrUsage, s)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%w: %q must be positive", ErrUsage, s)
	}
	return n, nil
}
