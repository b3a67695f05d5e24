package wallet

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCard() Card {
	return Card{
		Number:      "4111111111111111",
		ExpMonth:    12,
		ExpYear:     2030,
		CVV:         "123",
		BillingName: "Satoshi Nakamoto",
	}
}

func TestIdempotencyKey(t *testing.T) {
	tests := []struct {
		name        string
		kind        Kind
		subject     string
		destination string
		amount      int64
		want        string
	}{
		{"transfer", KindTransfer, "7", "42", 100, "transfer-7-42-100"},
		{"deposit", KindDeposit, "7", "", 10, "deposit-7-10"},
		{"withdraw", KindWithdraw, "7", "", 5, "withdraw-7-5"},
		{"create wallet has no amount", KindCreateWallet, "99", "", 0, "create-wallet-99"},
		{"add payment method", KindAddPaymentMethod, "5", "", 0, "add-payment-method-5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IdempotencyKey(tt.kind, tt.subject, tt.destination, tt.amount))
		})
	}
}

func TestIdempotencyKey_IsStable(t *testing.T) {
	for _, subject := range []string{"1", "7", "99", "123456789"} {
		for _, kind := range Kinds {
			op := Operation{Kind: kind, SubjectID: subject, DestinationID: "42", Amount: 100}
			first := op.IdempotencyKey()
			for i := 0; i < 5; i++ {
				assert.Equal(t, first, op.IdempotencyKey())
			}
		}
	}
}

func TestIdempotencyKey_DiffersByField(t *testing.T) {
	base := NewTransfer("7", "42", 100)
	assert.NotEqual(t, base.IdempotencyKey(), NewTransfer("7", "42", 101).IdempotencyKey())
	assert.NotEqual(t, base.IdempotencyKey(), NewTransfer("7", "43", 100).IdempotencyKey())
	assert.NotEqual(t, base.IdempotencyKey(), NewTransfer("8", "42", 100).IdempotencyKey())
	assert.NotEqual(t, NewDeposit("7", 10).IdempotencyKey(), NewWithdraw("7", 10).IdempotencyKey())
}

func TestParseAmount(t *testing.T) {
	n, err := ParseAmount("100")
	require.NoError(t, err)
	assert.Equal(t, int64(100), n)

	for _, bad := range []string{"", "abc", "-5", "+5", "1.5", "0", "00", " 5", "99999999999999999999"} {
		_, err := ParseAmount(bad)
		assert.ErrorIs(t, err, ErrUsage, "input %q", bad)
	}
}

func TestIsDigits(t *testing.T) {
	assert.True(t, IsDigits("0"))
	assert.True(t, IsDigits("42"))
	assert.False(t, IsDigits(""))
	assert.False(t, IsDigits("4a"))
	assert.False(t, IsDigits("٤٢"))
}

func TestOperation_Validate(t *testing.T) {
	t.Run("valid operations", func(t *testing.T) {
		for _, op := range []Operation{
			NewCreateWallet("7"),
			NewDeposit("7", 10),
			NewWithdraw("7", 5),
			NewTransfer("7", "42", 100),
			NewAddPaymentMethod("7", validCard()),
		} {
			assert.NoError(t, op.Validate(), op.Kind)
		}
	})

	t.Run("transfer rejects non numeric destination", func(t *testing.T) {
		err := NewTransfer("7", "abc", 5).Validate()
		assert.ErrorIs(t, err, ErrUsage)
	})

	t.Run("transfer rejects non numeric source", func(t *testing.T) {
		assert.ErrorIs(t, NewTransfer("alice", "42", 5).Validate(), ErrUsage)
	})

	t.Run("transfer rejects zero amount", func(t *testing.T) {
		err := NewTransfer("7", "42", 0).Validate()
		assert.ErrorIs(t, err, ErrUsage)
	})

	t.Run("deposit rejects missing amount", func(t *testing.T) {
		assert.ErrorIs(t, NewDeposit("7", 0).Validate(), ErrUsage)
	})

	t.Run("missing subject", func(t *testing.T) {
		assert.ErrorIs(t, NewCreateWallet(" ").Validate(), ErrUsage)
	})

	t.Run("add payment method without card", func(t *testing.T) {
		op := Operation{Kind: KindAddPaymentMethod, SubjectID: "7"}
		assert.ErrorIs(t, op.Validate(), ErrUsage)
	})

	t.Run("unknown kind", func(t *testing.T) {
		err := Operation{Kind: "refund", SubjectID: "7"}.Validate()
		assert.ErrorIs(t, err, ErrUnknownKind)
		assert.False(t, errors.Is(err, ErrUsage))
	})
}

func TestCard_Validate(t *testing.T) {
	require.NoError(t, validCard().Validate())

	bad := validCard()
	bad.Number = "4111111111111112"
	assert.ErrorIs(t, bad.Validate(), ErrUsage)

	bad = validCard()
	bad.ExpMonth = 13
	assert.ErrorIs(t, bad.Validate(), ErrUsage)

	bad = validCard()
	bad.CVV = "12a"
	assert.ErrorIs(t, bad.Validate(), ErrUsage)

	bad = validCard()
	bad.BillingName = ""
	assert.ErrorIs(t, bad.Validate(), ErrUsage)

	assert.Equal(t, "1111", validCard().Last4())
}

func TestResult_Outcome(t *testing.T) {
	assert.Equal(t, "success", Success(KindDeposit, "", "tx").Outcome())
	assert.True(t, Success(KindDeposit, "", "tx").OK())
	assert.Equal(t, "usage", Failure(KindTransfer, ErrUsage).Outcome())
	assert.Equal(t, "transport", Failure(KindDeposit, ErrTransport).Outcome())
	assert.Equal(t, "malformed_response", Failure(KindDeposit, ErrMalformedResponse).Outcome())
	assert.Equal(t, "error", Failure(KindDeposit, errors.New("boom")).Outcome())
	assert.False(t, Failure(KindDeposit, ErrTransport).OK())
}
