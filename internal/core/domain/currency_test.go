package domain_test

import (
	"testing"
	"time"

	"github.com/paperfx/paperfx_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeCurrencyCode(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantCode string
		wantOK   bool
	}{
		{name: "lowercase fiat", raw: "usd", wantCode: "USD", wantOK: true},
		{name: "padded crypto", raw: "  btc ", wantCode: "BTC", wantOK: true},
		{name: "mixed case", raw: "DoGe", wantCode: "DOGE", wantOK: true},
		{name: "too short", raw: "x", wantCode: "X", wantOK: false},
		{name: "too long", raw: "TOOLONG", wantCode: "TOOLONG", wantOK: false},
		{name: "non alphanumeric", raw: "US-D", wantCode: "US-D", wantOK: false},
		{name: "empty", raw: "", wantCode: "", wantOK: false},
		{name: "digits allowed", raw: "usdt2", wantCode: "USDT2", wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ok := domain.NormalizeCurrencyCode(tt.raw)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestCurrencyRegistry(t *testing.T) {
	assert.True(t, domain.IsSupportedCurrency("USD"))
	assert.True(t, domain.IsSupportedCurrency("EUR"))
	assert.True(t, domain.IsSupportedCurrency("BTC"))
	assert.False(t, domain.IsSupportedCurrency("XXX"))

	btc, ok := domain.LookupCurrency("BTC")
	assert.True(t, ok)
	assert.Equal(t, domain.Crypto, btc.Kind)
	assert.Equal(t, "bitcoin", btc.CoinID)

	eur, ok := domain.LookupCurrency("EUR")
	assert.True(t, ok)
	assert.Equal(t, domain.Fiat, eur.Kind)
	assert.Empty(t, eur.CoinID)

	id, ok := domain.CoinIDFor("AVAX")
	assert.True(t, ok)
	assert.Equal(t, "avalanche-2", id)

	assert.Len(t, domain.FiatCurrencyCodes(), 33)
	assert.Len(t, domain.CryptoCurrencyCodes(), 10)
}

func TestPairKey(t *testing.T) {
	assert.Equal(t, "EUR_USD", domain.PairKey("EUR", "USD"))

	from, to, ok := domain.SplitPairKey("BTC_USD")
	assert.True(t, ok)
	assert.Equal(t, "BTC", from)
	assert.Equal(t, "USD", to)

	_, _, ok = domain.SplitPairKey("nokey")
	assert.False(t, ok)
	_, _, ok = domain.SplitPairKey("_USD")
	assert.False(t, ok)
	_, _, ok = domain.SplitPairKey("EUR_")
	assert.False(t, ok)
}

func TestRatePair_FreshWithin(t *testing.T) {
	now := time.Now()
	fresh := domain.RatePair{Rate: 1.08, UpdatedAt: now.Add(-time.Minute)}
	stale := domain.RatePair{Rate: 1.08, UpdatedAt: now.Add(-10 * time.Minute)}

	assert.True(t, fresh.FreshWithin(5*time.Minute, now))
	assert.False(t, stale.FreshWithin(5*time.Minute, now))
	assert.False(t, domain.RatePair{Rate: 1}.FreshWithin(5*time.Minute, now))
}
