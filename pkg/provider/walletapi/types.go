package walletapi

import "github.com/amirasaad/walletbot/pkg/domain/wallet"

// CreateWalletParams holds the parameters for the CreateWallet method.
type CreateWalletParams struct {
	SubjectID      string
	IdempotencyKey string
}

type CreateWalletResponse struct {
	WalletID string
}

// MovementParams holds the parameters for the Deposit and Withdraw methods.
type MovementParams struct {
	WalletID       string
	Amount         int64
	IdempotencyKey string
}

// TransferParams holds the parameters for the Transfer method.
type TransferParams struct {
	SourceID       string
	DestinationID  string
	Amount         int64
	IdempotencyKey string
}

// TransactionResponse is returned by every method that moves funds.
type TransactionResponse struct {
	TransactionID string
}

// AddCardParams holds the parameters for the AddCard method.
type AddCardParams struct {
	CustomerID     string
	Card           wallet.Card
	IdempotencyKey string
}

// AddCardResponse carries the raw data object returned by the API; callers
// only rely on its presence.
type AddCardResponse struct {
	Data map[string]any
}
