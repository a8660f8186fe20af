package services

import (
	"context"

	"github.com/paperfx/paperfx_app/internal/core/domain"
)

// CurrencyReaderSvc defines read operations for the supported-currency registry
type CurrencyReaderSvc interface {
	// GetCurrencyByCode retrieves a specific currency by its normalized code.
	GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves all supported currencies, fiat and crypto.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
}
