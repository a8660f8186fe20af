package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TradeSide distinguishes purchases from sales.
type TradeSide string

const (
	Buy  TradeSide = "BUY"
	Sell TradeSide = "SELL"
)

// TradeResult reports the outcome of one committed trade: pre- and
// post-trade balances of the affected wallet and the settlement leg.
type TradeResult struct {
	TradeID            string          `json:"trade_id"`
	UserID             int64           `json:"user_id"`
	Side               TradeSide       `json:"side"`
	Currency           string          `json:"currency"`
	Amount             decimal.Decimal `json:"amount"`
	Rate               float64         `json:"rate"`
	OldBalance         decimal.Decimal `json:"old_balance"`
	NewBalance         decimal.Decimal `json:"new_balance"`
	SettlementCost     decimal.Decimal `json:"settlement_cost"`
	SettlementCurrency string          `json:"settlement_currency"`
	ExecutedAt         time.Time       `json:"executed_at"`
}
