package dto

import (
	"github.com/paperfx/paperfx_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PortfolioQueryParams defines query parameters for the portfolio view.
type PortfolioQueryParams struct {
	Base string `form:"base,default=USD"`
}

// WalletValuationResponse is one wallet's contribution to the valuation.
type WalletValuationResponse struct {
	Currency string          `json:"currency"`
	Balance  decimal.Decimal `json:"balance"`
	Rate     float64         `json:"rate"`
	Value    decimal.Decimal `json:"value"`
}

// PortfolioResponse is the per-currency breakdown plus the total in base.
type PortfolioResponse struct {
	UserID   int64                     `json:"user_id"`
	Base     string                    `json:"base"`
	Wallets  []WalletValuationResponse `json:"wallets"`
	Total    decimal.Decimal           `json:"total"`
	Warnings []string                  `json:"warnings,omitempty"`
}

// ToPortfolioResponse converts a domain.PortfolioValuation to PortfolioResponse DTO
func ToPortfolioResponse(v *domain.PortfolioValuation) PortfolioResponse {
	wallets := make([]WalletValuationResponse, len(v.Wallets))
	for i, w := range v.Wallets {
		wallets[i] = WalletValuationResponse{
			Currency: w.Currency,
			Balance:  w.Balance,
			Rate:     w.Rate,
			Value:    w.Value,
		}
	}
	return PortfolioResponse{
		UserID:   v.UserID,
		Base:     v.Base,
		Wallets:  wallets,
		Total:    v.Total,
		Warnings: v.Warnings,
	}
}
