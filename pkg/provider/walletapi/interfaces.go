package walletapi

import (
	"context"
)

// WalletAPI is the port to the remote wallet service. Each method performs
// exactly one outbound call. Implementations wrap wallet.ErrTransport for
// network and non-2xx failures and wallet.ErrMalformedResponse when the body
// lacks the expected fields.
type WalletAPI interface {
	CreateWallet(
		ctx context.Context,
		params *CreateWalletParams,
	) (*CreateWalletResponse, error)

	Deposit(
		ctx context.Context,
		params *MovementParams,
	) (*TransactionResponse, error)

	Withdraw(
		ctx context.Context,
		params *MovementParams,
	) (*TransactionResponse, error)

	Transfer(
		ctx context.Context,
		params *TransferParams,
	) (*TransactionResponse, error)

	AddCard(
		ctx context.Context,
		params *AddCardParams,
	) (*AddCardResponse, error)

	// Name returns the provider's name
	Name() string
}
