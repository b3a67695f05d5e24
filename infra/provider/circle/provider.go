// Package circle implements the wallet API port against a Circle-style REST
// API: JSON over HTTPS, bearer-token authentication and a {"data": ...}
// response envelope.
package circle

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/amirasaad/walletbot/pkg/config"
	"github.com/amirasaad/walletbot/pkg/domain/wallet"
	"github.com/amirasaad/walletbot/pkg/provider/walletapi"
	"github.com/google/uuid"
)

const (
	// HeaderRequestID carries a per-call id used to correlate logs.
	HeaderRequestID = "X-Request-Id"

	maxErrorBody = 4 << 10
)

// Provider implements walletapi.WalletAPI over HTTP.
type Provider struct {
	apiKey     string
	baseURL    string
	currency   string
	httpClient *http.Client
	logger     *slog.Logger
}

// New creates a new Provider using config
func New(cfg *config.Wallet, logger *slog.Logger) *Provider {
	return NewWithClient(cfg, &http.Client{Timeout: cfg.HTTPTimeout}, logger)
}

// NewWithClient creates a new Provider with a caller supplied HTTP client.
func NewWithClient(cfg *config.Wallet, client *http.Client, logger *slog.Logger) *Provider {
	if logger == nil {
		logger = slog.Default()
	}
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	currency := cfg.Currency
	if currency == "" {
		currency = "USD"
	}
	return &Provider{
		apiKey:     cfg.ApiKey,
		baseURL:    strings.TrimRight(cfg.ApiUrl, "/"),
		currency:   currency,
		httpClient: client,
		logger:     logger.With("provider", "circle"),
	}
}

// Name returns the provider's name
func (p *Provider) Name() string {
	return "circle"
}

// CreateWallet issues POST /wallets.
func (p *Provider) CreateWallet(
	ctx context.Context,
	params *walletapi.CreateWalletParams,
) (*walletapi.CreateWalletResponse, error) {
	var resp Envelope[WalletData]
	body := CreateWalletRequest{IdempotencyKey: params.IdempotencyKey}
	if err := p.post(ctx, "/wallets", body, &resp); err != nil {
		return nil, err
	}
	if resp.Data == nil {
		return nil, fmt.Errorf("%w: missing data object", wallet.ErrMalformedResponse)
	}
	if resp.Data.WalletID == "" {
		return nil, fmt.Errorf("%w: missing walletId", wallet.ErrMalformedResponse)
	}
	return &walletapi.CreateWalletResponse{WalletID: string(resp.Data.WalletID)}, nil
}

// Deposit issues POST /wallets/{id}/deposits.
func (p *Provider) Deposit(
	ctx context.Context,
	params *walletapi.MovementParams,
) (*walletapi.TransactionResponse, error) {
	return p.movement(ctx, "deposits", params)
}

// Withdraw issues POST /wallets/{id}/withdrawals.
func (p *Provider) Withdraw(
	ctx context.Context,
	params *walletapi.MovementParams,
) (*walletapi.TransactionResponse, error) {
	return p.movement(ctx, "withdrawals", params)
}

func (p *Provider) movement(
	ctx context.Context,
	resource string,
	params *walletapi.MovementParams,
) (*walletapi.TransactionResponse, error) {
	path := fmt.Sprintf("/wallets/%s/%s", url.PathEscape(params.WalletID), resource)
	body := MovementRequest{
		Amount:         Money{Amount: params.Amount, Currency: p.currency},
		IdempotencyKey: params.IdempotencyKey,
	}
	var resp Envelope[TransactionData]
	if err := p.post(ctx, path, body, &resp); err != nil {
		return nil, err
	}
	return transaction(resp)
}

// Transfer issues POST /transfers.
func (p *Provider) Transfer(
	ctx context.Context,
	params *walletapi.TransferParams,
) (*walletapi.TransactionResponse, error) {
	source, err := strconv.ParseInt(params.SourceID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: source wallet id %q is not numeric", wallet.ErrUsage, params.SourceID)
	}
	body := TransferRequest{
		Source:         SourceRef{Type: "wallet", ID: json.Number(strconv.FormatInt(source, 10))},
		Destination:    WalletRef{Type: "wallet", ID: params.DestinationID},
		Amount:         Money{Amount: params.Amount, Currency: p.currency},
		IdempotencyKey: params.IdempotencyKey,
	}
	var resp Envelope[TransactionData]
	if err := p.post(ctx, "/transfers", body, &resp); err != nil {
		return nil, err
	}
	return transaction(resp)
}

// AddCard issues POST /customers/{id}/cards.
func (p *Provider) AddCard(
	ctx context.Context,
	params *walletapi.AddCardParams,
) (*walletapi.AddCardResponse, error) {
	path := fmt.Sprintf("/customers/%s/cards", url.PathEscape(params.CustomerID))
	body := CardRequest{
		IdempotencyKey: params.IdempotencyKey,
		Number:         params.Card.Number,
		ExpMonth:       params.Card.ExpMonth,
		ExpYear:        params.Card.ExpYear,
		CVV:            params.Card.CVV,
		BillingDetails: BillingDetails{Name: params.Card.BillingName},
	}
	var resp Envelope[map[string]any]
	if err := p.post(ctx, path, body, &resp); err != nil {
		return nil, err
	}
	if resp.Data == nil {
		return nil, fmt.Errorf("%w: missing data object", wallet.ErrMalformedResponse)
	}
	return &walletapi.AddCardResponse{Data: *resp.Data}, nil
}

func transaction(resp Envelope[TransactionData]) (*walletapi.TransactionResponse, error) {
	if resp.Data == nil {
		return nil, fmt.Errorf("%w: missing data object", wallet.ErrMalformedResponse)
	}
	if resp.Data.TransactionID == "" {
		return nil, fmt.Errorf("%w: missing transactionId", wallet.ErrMalformedResponse)
	}
	return &walletapi.TransactionResponse{TransactionID: string(resp.Data.TransactionID)}, nil
}

// post sends body as JSON and decodes a 2xx response into out.
func (p *Provider) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %w", wallet.ErrTransport, err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(HeaderRequestID, requestID)
	if p.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+p.apiKey)
	}

	log := p.logger.With("path", path, "request_id", requestID)
	start := time.Now()
	resp, err := p.httpClient.Do(req)
	if err != nil {
		log.Warn("Wallet API request failed", "error", err)
		return fmt.Errorf("%w: failed to make request: %w", wallet.ErrTransport, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	log.Debug("Wallet API responded", "status", resp.StatusCode, "elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("%w: API returned status %d: %s",
			wallet.ErrTransport, resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %w", wallet.ErrMalformedResponse, err)
	}
	return nil
}

// Ensure Provider implements walletapi.WalletAPI
var _ walletapi.WalletAPI = (*Provider)(nil)
