package services

import (
	"context"
	"fmt"

	"github.com/paperfx/paperfx_app/internal/apperrors"
	"github.com/paperfx/paperfx_app/internal/core/domain"
)

// CurrencyService exposes the fixed supported-currency registry.
type CurrencyService struct{}

// NewCurrencyService creates a new CurrencyService.
func NewCurrencyService() *CurrencyService {
	return &CurrencyService{}
}

// GetCurrencyByCode retrieves a registry entry by its code.
func (s *CurrencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	code, ok := domain.NormalizeCurrencyCode(currencyCode)
	if !ok {
		return nil, fmt.Errorf("%w: currency code '%s' is malformed", apperrors.ErrValidation, currencyCode)
	}
	currency, ok := domain.LookupCurrency(code)
	if !ok {
		return nil, fmt.Errorf("%w: '%s' is not a supported currency", apperrors.ErrUnknownCurrency, code)
	}
	return &currency, nil
}

// ListCurrencies returns all supported currencies, fiat first, each group
// sorted by code.
func (s *CurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	fiat := domain.FiatCurrencyCodes()
	crypto := domain.CryptoCurrencyCodes()

	currencies := make([]domain.Currency, 0, len(fiat)+len(crypto))
	for _, code := range fiat {
		if c, ok := domain.LookupCurrency(code); ok {
			currencies = append(currencies, c)
		}
	}
	for _, code := range crypto {
		if c, ok := domain.LookupCurrency(code); ok {
			currencies = append(currencies, c)
		}
	}
	return currencies, nil
}
