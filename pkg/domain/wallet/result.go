package wallet

import "errors"

// Result is the outcome of a dispatched operation. A nil Err means success.
type Result struct {
	Kind Kind
	// WalletID is set on a successful CreateWallet.
	WalletID string
	// TransactionID is set on a successful Deposit, Withdraw or Transfer.
	TransactionID string
	Err           error
}

// OK reports whether the operation succeeded.
func (r Result) OK() bool { return r.Err == nil }

// Outcome classifies the result into a short label used for logs and metrics.
func (r Result) Outcome() string {
	switch {
	case r.Err == nil:
		return "success"
	case errors.Is(r.Err, ErrUsage):
		return "usage"
	case errors.Is(r.Err, ErrMalformedResponse):
		return "malformed_response"
	case errors.Is(r.Err, ErrTransport):
		return "transport"
	default:
		return "error"
	}
}

// Success builds a successful result.
func Success(kind Kind, walletID, transactionID string) Result {
	return Result{Kind: kind, WalletID: walletID, TransactionID: transactionID}
}

// Failure builds a failed result.
func Failure(kind Kind, err error) Result {
	return Result{Kind: kind, Err: err}
}
