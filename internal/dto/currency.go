package dto

import (
	"github.com/paperfx/paperfx_app/internal/core/domain"
)

// CurrencyResponse defines the public view of a supported currency.
type CurrencyResponse struct {
	Code   string `json:"code"`
	Kind   string `json:"kind"`
	CoinID string `json:"coin_id,omitempty"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(currency *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		Code:   currency.Code,
		Kind:   string(currency.Kind),
		CoinID: currency.CoinID,
	}
}

// CurrenciesResponse lists the supported currencies grouped by kind.
type CurrenciesResponse struct {
	Fiat   []CurrencyResponse `json:"fiat"`
	Crypto []CurrencyResponse `json:"crypto"`
}

// ToCurrenciesResponse converts domain currencies to the grouped CurrenciesResponse DTO
func ToCurrenciesResponse(currencies []domain.Currency) CurrenciesResponse {
	resp := CurrenciesResponse{
		Fiat:   []CurrencyResponse{},
		Crypto: []CurrencyResponse{},
	}
	for i := range currencies {
		entry := ToCurrencyResponse(&currencies[i])
		if currencies[i].Kind == domain.Crypto {
			resp.Crypto = append(resp.Crypto, entry)
		} else {
			resp.Fiat = append(resp.Fiat, entry)
		}
	}
	return resp
}
