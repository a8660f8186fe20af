package domain

import (
	"sort"
	"strings"

	"github.com/samber/lo"
)

// CurrencyKind distinguishes fiat currencies from cryptocurrencies.
type CurrencyKind string

const (
	Fiat   CurrencyKind = "FIAT"
	Crypto CurrencyKind = "CRYPTO"
)

// Currency represents a supported currency in the domain.
type Currency struct {
	Code   string       `json:"code"`             // Primary Key (e.g., "USD")
	Kind   CurrencyKind `json:"kind"`             // FIAT or CRYPTO
	CoinID string       `json:"coinID,omitempty"` // crypto-source coin identifier, crypto only
}

// fiatCodes is the fiat set quoted by the fiat source, plus USD itself.
var fiatCodes = []string{
	"USD", "EUR", "GBP", "JPY", "CHF", "CAD", "AUD", "CNY", "HKD",
	"SGD", "SEK", "NOK", "KRW", "NZD", "INR", "BRL", "RUB",
	"ZAR", "MXN", "TRY", "PLN", "THB", "IDR", "HUF", "CZK",
	"ILS", "CLP", "PHP", "AED", "COP", "SAR", "MYR", "RON",
}

// coinIDs maps crypto codes to the coin identifiers the crypto source quotes by.
var coinIDs = map[string]string{
	"BTC":  "bitcoin",
	"ETH":  "ethereum",
	"BNB":  "binancecoin",
	"XRP":  "ripple",
	"SOL":  "solana",
	"DOGE": "dogecoin",
	"ADA":  "cardano",
	"AVAX": "avalanche-2",
	"DOT":  "polkadot",
	"TRX":  "tron",
}

var currencyRegistry = buildCurrencyRegistry()

func buildCurrencyRegistry() map[string]Currency {
	reg := make(map[string]Currency, len(fiatCodes)+len(coinIDs))
	for _, code := range fiatCodes {
		reg[code] = Currency{Code: code, Kind: Fiat}
	}
	for code, id := range coinIDs {
		reg[code] = Currency{Code: code, Kind: Crypto, CoinID: id}
	}
	return reg
}

// NormalizeCurrencyCode trims and uppercases raw and reports whether the
// result is well formed: 2 to 5 alphanumeric characters.
func NormalizeCurrencyCode(raw string) (string, bool) {
	code := strings.ToUpper(strings.TrimSpace(raw))
	if len(code) < 2 || len(code) > 5 {
		return code, false
	}
	for _, r := range code {
		if (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return code, false
		}
	}
	return code, true
}

// LookupCurrency returns the registry entry for a normalized code.
func LookupCurrency(code string) (Currency, bool) {
	c, ok := currencyRegistry[code]
	return c, ok
}

// IsSupportedCurrency reports whether a normalized code is in the registry.
func IsSupportedCurrency(code string) bool {
	_, ok := currencyRegistry[code]
	return ok
}

// FiatCurrencyCodes returns the supported fiat codes, sorted.
func FiatCurrencyCodes() []string {
	codes := make([]string, len(fiatCodes))
	copy(codes, fiatCodes)
	sort.Strings(codes)
	return codes
}

// CryptoCurrencyCodes returns the supported crypto codes, sorted.
func CryptoCurrencyCodes() []string {
	codes := lo.Keys(coinIDs)
	sort.Strings(codes)
	return codes
}

// CoinIDFor returns the crypto-source coin identifier for a crypto code.
func CoinIDFor(code string) (string, bool) {
	id, ok := coinIDs[code]
	return id, ok
}
