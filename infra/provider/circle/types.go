package circle

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Money is the amount object used by deposits, withdrawals and transfers.
type Money struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// SourceRef identifies the transfer source. Its id is the numeric chat user id.
type SourceRef struct {
	Type string      `json:"type"`
	ID   json.Number `json:"id"`
}

// WalletRef identifies the transfer destination.
type WalletRef struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

type CreateWalletRequest struct {
	IdempotencyKey string `json:"idempotencyKey"`
}

type MovementRequest struct {
	Amount         Money  `json:"amount"`
	IdempotencyKey string `json:"idempotencyKey"`
}

type TransferRequest struct {
	Source         SourceRef `json:"source"`
	Destination    WalletRef `json:"destination"`
	Amount         Money     `json:"amount"`
	IdempotencyKey string    `json:"idempotencyKey"`
}

type BillingDetails struct {
	Name string `json:"name"`
}

type CardRequest struct {
	IdempotencyKey string         `json:"idempotencyKey"`
	Number         string         `json:"number"`
	ExpMonth       int            `json:"expMonth"`
	ExpYear        int            `json:"expYear"`
	CVV            string         `json:"cvv"`
	BillingDetails BillingDetails `json:"billingDetails"`
}

// Envelope is the top-level shape of every response: {"data": {...}}.
type Envelope[T any] struct {
	Data *T `json:"data"`
}

type WalletData struct {
	WalletID ID `json:"walletId"`
}

type TransactionData struct {
	TransactionID ID `json:"transactionId"`
}

// ID accepts identifiers encoded either as JSON strings or numbers.
type ID string

// UnmarshalJSON implements json.Unmarshaler.
func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	if _, err := strconv.ParseFloat(n.String(), 64); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}
