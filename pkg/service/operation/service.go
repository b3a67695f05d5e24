// Package operation dispatches financial operations to the wallet API.
//
// Dispatch validates an operation, derives its idempotency key, performs
// exactly one call on the wallet API port and folds every failure into a
// wallet.Result instead of returning it, so callers only ever branch on
// Result.OK. Usage errors are detected before any network traffic.
package operation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/amirasaad/walletbot/pkg/domain/wallet"
	"github.com/amirasaad/walletbot/pkg/metrics"
	"github.com/amirasaad/walletbot/pkg/provider/walletapi"
)

// Dispatcher is the contract consumed by the command router.
type Dispatcher interface {
	Dispatch(ctx context.Context, op wallet.Operation) wallet.Result
}

// Service is the Dispatcher backed by a wallet API provider.
type Service struct {
	api     walletapi.WalletAPI
	metrics *metrics.Operations
	logger  *slog.Logger
}

// New creates a Service. metrics may be nil.
func New(api walletapi.WalletAPI, m *metrics.Operations, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		api:     api,
		metrics: m,
		logger:  logger,
	}
}

// Dispatch sends op to the wallet API and reports the outcome.
func (s *Service) Dispatch(ctx context.Context, op wallet.Operation) wallet.Result {
	key := op.IdempotencyKey()
	logger := s.logger.With(
		"kind", op.Kind,
		"subject_id", op.SubjectID,
		"idempotency_key", key,
	)
	if op.Card != nil {
		logger = logger.With("card_last4", op.Card.Last4())
	}

	if err := op.Validate(); err != nil {
		logger.Info("Operation rejected", "error", err)
		res := wallet.Failure(op.Kind, err)
		s.metrics.Reject(op.Kind.String(), res.Outcome())
		return res
	}

	start := time.Now()
	res := s.send(ctx, op, key)
	elapsed := time.Since(start)
	s.metrics.Observe(op.Kind.String(), res.Outcome(), elapsed)

	if !res.OK() {
		logger.Error("Operation failed",
			"outcome", res.Outcome(),
			"elapsed", elapsed,
			"error", res.Err,
		)
		return res
	}
	logger.Info("Operation succeeded",
		"wallet_id", res.WalletID,
		"transaction_id", res.TransactionID,
		"elapsed", elapsed,
	)
	return res
}

func (s *Service) send(ctx context.Context, op wallet.Operation, key string) wallet.Result {
	switch op.Kind {
	case wallet.KindCreateWallet:
		resp, err := s.api.CreateWallet(ctx, &walletapi.CreateWalletParams{
			SubjectID:      op.SubjectID,
			IdempotencyKey: key,
		})
		if err != nil {
			return wallet.Failure(op.Kind, err)
		}
		return wallet.Success(op.Kind, resp.WalletID, "")

	case wallet.KindDeposit, wallet.KindWithdraw:
		params := &walletapi.MovementParams{
			WalletID:       op.SubjectID,
			Amount:         op.Amount,
			IdempotencyKey: key,
		}
		call := s.api.Deposit
		if op.Kind == wallet.KindWithdraw {
			call = s.api.Withdraw
		}
		resp, err := call(ctx, params)
		if err != nil {
			return wallet.Failure(op.Kind, err)
		}
		return wallet.Success(op.Kind, "", resp.TransactionID)

	case wallet.KindTransfer:
		resp, err := s.api.Transfer(ctx, &walletapi.TransferParams{
			SourceID:       op.SubjectID,
			DestinationID:  op.DestinationID,
			Amount:         op.Amount,
			IdempotencyKey: key,
		})
		if err != nil {
			return wallet.Failure(op.Kind, err)
		}
		return wallet.Success(op.Kind, "", resp.TransactionID)

	case wallet.KindAddPaymentMethod:
		if _, err := s.api.AddCard(ctx, &walletapi.AddCardParams{
			CustomerID:     op.SubjectID,
			Card:           *op.Card,
			IdempotencyKey: key,
		}); err != nil {
			return wallet.Failure(op.Kind, err)
		}
		return wallet.Success(op.Kind, "", "")
	}
	return wallet.Failure(op.Kind, fmt.Errorf("%w: %q", wallet.ErrUnknownKind, op.Kind))
}

// Ensure Service implements Dispatcher
var _ Dispatcher = (*Service)(nil)
