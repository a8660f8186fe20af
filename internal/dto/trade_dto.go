package dto

import (
	"time"

	"github.com/paperfx/paperfx_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TradeRequest defines one buy or sell order for the authenticated user.
type TradeRequest struct {
	Currency string          `json:"currency" binding:"required,currencycode"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
}

// TradeResponse reports a committed trade with the affected wallet's
// balances before and after, and the settlement leg.
type TradeResponse struct {
	Success            bool            `json:"success"`
	TradeID            string          `json:"trade_id"`
	Side               string          `json:"side"`
	Currency           string          `json:"currency"`
	Amount             decimal.Decimal `json:"amount"`
	Rate               float64         `json:"rate"`
	OldBalance         decimal.Decimal `json:"old_balance"`
	NewBalance         decimal.Decimal `json:"new_balance"`
	SettlementCost     decimal.Decimal `json:"settlement_cost"`
	SettlementCurrency string          `json:"settlement_currency"`
	ExecutedAt         time.Time       `json:"executed_at"`
}

// ToTradeResponse converts a domain.TradeResult to TradeResponse DTO
func ToTradeResponse(res *domain.TradeResult) TradeResponse {
	return TradeResponse{
		Success:            true,
		TradeID:            res.TradeID,
		Side:               string(res.Side),
		Currency:           res.Currency,
		Amount:             res.Amount,
		Rate:               res.Rate,
		OldBalance:         res.OldBalance,
		NewBalance:         res.NewBalance,
		SettlementCost:     res.SettlementCost,
		SettlementCurrency: res.SettlementCurrency,
		ExecutedAt:         res.ExecutedAt,
	}
}
