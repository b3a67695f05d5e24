package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amirasaad/walletbot/infra/provider/circle"
	"github.com/amirasaad/walletbot/pkg/bot"
	"github.com/amirasaad/walletbot/pkg/config"
	"github.com/amirasaad/walletbot/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WiresRouterToDispatcher(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"walletId":"w-1"}}`))
	}))
	defer srv.Close()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	reg := prometheus.NewRegistry()
	cfg := &config.App{
		Wallet: &config.Wallet{ApiUrl: srv.URL, ApiKey: "k", HTTPTimeout: time.Second},
		Bot:    &config.Bot{DefaultDeposit: 10, DefaultWithdraw: 5},
	}
	deps := &Deps{
		WalletAPI: circle.New(cfg.Wallet, logger),
		Metrics:   metrics.NewOperations(reg),
		Registry:  reg,
		Logger:    logger,
	}

	a := New(deps, cfg)
	require.NotNil(t, a.Router)
	require.NotNil(t, a.Dispatcher)

	reply, ok := a.Router.Handle(context.Background(), bot.Message{SubjectID: 1, Text: "/start"})
	require.True(t, ok)
	assert.Equal(t, "Wallet created with ID: w-1", reply)

	count, err := testutil.GatherAndCount(reg, "walletbot_operations_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
