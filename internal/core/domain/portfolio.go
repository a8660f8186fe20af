package domain

import (
	"time"

	"github.com/paperfx/paperfx_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Wallet holds one currency balance inside a Portfolio.
// Invariant: Balance is never negative.
type Wallet struct {
	Currency string          `json:"currency"`
	Balance  decimal.Decimal `json:"balance"`
}

// Portfolio is the per-user collection of wallets. Exactly one portfolio
// exists per user; it is created at registration and persisted wholesale.
type Portfolio struct {
	UserID    int64             `json:"user_id"`
	Wallets   map[string]Wallet `json:"wallets"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// NewPortfolio returns an empty portfolio for a user.
func NewPortfolio(userID int64, now time.Time) Portfolio {
	return Portfolio{
		UserID:    userID,
		Wallets:   map[string]Wallet{},
		UpdatedAt: now,
	}
}

// Wallet returns the wallet for currency, if present.
func (p *Portfolio) Wallet(currency string) (Wallet, bool) {
	w, ok := p.Wallets[currency]
	return w, ok
}

// Deposit adds amount to the wallet for currency, creating it if absent.
// It returns the wallet state after the deposit.
func (p *Portfolio) Deposit(currency string, amount decimal.Decimal) Wallet {
	if p.Wallets == nil {
		p.Wallets = make(map[string]Wallet)
	}
	w, ok := p.Wallets[currency]
	if !ok {
		w = Wallet{Currency: currency}
	}
	w.Balance = w.Balance.Add(amount)
	p.Wallets[currency] = w
	return w
}

// Withdraw removes amount from the wallet for currency. The wallet must
// already exist and hold at least amount; otherwise nothing changes and an
// InsufficientFundsError reporting available vs. required is returned.
func (p *Portfolio) Withdraw(currency string, amount decimal.Decimal) (Wallet, error) {
	w, ok := p.Wallets[currency]
	if !ok {
		return Wallet{}, &apperrors.InsufficientFundsError{
			Currency:  currency,
			Available: decimal.Zero,
			Required:  amount,
		}
	}
	if w.Balance.LessThan(amount) {
		return Wallet{}, &apperrors.InsufficientFundsError{
			Currency:  currency,
			Available: w.Balance,
			Required:  amount,
		}
	}
	w.Balance = w.Balance.Sub(amount)
	p.Wallets[currency] = w
	return w, nil
}

// WalletValuation is one wallet's contribution to a portfolio valuation.
type WalletValuation struct {
	Currency string          `json:"currency"`
	Balance  decimal.Decimal `json:"balance"`
	Rate     float64         `json:"rate"`
	Value    decimal.Decimal `json:"value"`
}

// PortfolioValuation is the best-effort conversion of a portfolio into a
// base currency. Wallets without a resolvable rate are listed in Warnings
// instead of aborting the valuation.
type PortfolioValuation struct {
	UserID   int64             `json:"user_id"`
	Base     string            `json:"base"`
	Wallets  []WalletValuation `json:"wallets"`
	Total    decimal.Decimal   `json:"total"`
	Warnings []string          `json:"warnings,omitempty"`
}
