package domain_test

import (
	"testing"
	"time"

	"github.com/paperfx/paperfx_app/internal/apperrors"
	"github.com/paperfx/paperfx_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPortfolio_Deposit(t *testing.T) {
	p := domain.NewPortfolio(1, time.Now())

	w := p.Deposit("EUR", decimal.NewFromInt(10))
	assert.Equal(t, "EUR", w.Currency)
	assert.True(t, w.Balance.Equal(decimal.NewFromInt(10)))

	w = p.Deposit("EUR", decimal.NewFromFloat(2.5))
	assert.True(t, w.Balance.Equal(decimal.NewFromFloat(12.5)))

	// deposits into a nil wallet map must not panic
	var zero domain.Portfolio
	w = zero.Deposit("BTC", decimal.NewFromInt(1))
	assert.True(t, w.Balance.Equal(decimal.NewFromInt(1)))
}

func TestPortfolio_Withdraw(t *testing.T) {
	tests := []struct {
		name          string
		setup         func() domain.Portfolio
		currency      string
		amount        decimal.Decimal
		wantErr       bool
		wantAvailable decimal.Decimal
		wantBalance   decimal.Decimal
	}{
		{
			name: "sufficient balance",
			setup: func() domain.Portfolio {
				p := domain.NewPortfolio(1, time.Now())
				p.Deposit("EUR", decimal.NewFromInt(10))
				return p
			},
			currency:    "EUR",
			amount:      decimal.NewFromInt(4),
			wantBalance: decimal.NewFromInt(6),
		},
		{
			name: "exact balance drains wallet to zero",
			setup: func() domain.Portfolio {
				p := domain.NewPortfolio(1, time.Now())
				p.Deposit("EUR", decimal.NewFromInt(5))
				return p
			},
			currency:    "EUR",
			amount:      decimal.NewFromInt(5),
			wantBalance: decimal.Zero,
		},
		{
			name: "insufficient balance",
			setup: func() domain.Portfolio {
				p := domain.NewPortfolio(1, time.Now())
				p.Deposit("EUR", decimal.NewFromInt(5))
				return p
			},
			currency:      "EUR",
			amount:        decimal.NewFromInt(6),
			wantErr:       true,
			wantAvailable: decimal.NewFromInt(5),
		},
		{
			name: "missing wallet reports zero available",
			setup: func() domain.Portfolio {
				return domain.NewPortfolio(1, time.Now())
			},
			currency:      "BTC",
			amount:        decimal.NewFromInt(1),
			wantErr:       true,
			wantAvailable: decimal.Zero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.setup()
			before, _ := p.Wallet(tt.currency)

			w, err := p.Withdraw(tt.currency, tt.amount)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrInsufficientFunds)

				var ife *apperrors.InsufficientFundsError
				require.ErrorAs(t, err, &ife)
				assert.True(t, ife.Available.Equal(tt.wantAvailable))
				assert.True(t, ife.Required.Equal(tt.amount))

				// a failed withdrawal leaves the balance untouched
				after, _ := p.Wallet(tt.currency)
				assert.True(t, after.Balance.Equal(before.Balance))
				return
			}
			require.NoError(t, err)
			assert.True(t, w.Balance.Equal(tt.wantBalance))
			assert.False(t, w.Balance.IsNegative())
		})
	}
}

func TestPortfolio_WithdrawDepositSequence(t *testing.T) {
	p := domain.NewPortfolio(7, time.Now())
	p.Deposit("ETH", decimal.NewFromInt(3))

	_, err := p.Withdraw("ETH", decimal.NewFromInt(2))
	require.NoError(t, err)
	_, err = p.Withdraw("ETH", decimal.NewFromInt(2))
	require.Error(t, err)

	w, ok := p.Wallet("ETH")
	require.True(t, ok)
	assert.True(t, w.Balance.Equal(decimal.NewFromInt(1)))
	assert.False(t, w.Balance.IsNegative())
}
