package services

import (
	"context"

	"github.com/paperfx/paperfx_app/internal/core/domain"
	"github.com/paperfx/paperfx_app/internal/dto"
)

// TradingSvc executes buy and sell orders against a user's portfolio
type TradingSvc interface {
	// Buy purchases req.Amount of req.Currency for the user, creating the
	// wallet on first purchase.
	Buy(ctx context.Context, userID int64, req dto.TradeRequest) (*domain.TradeResult, error)

	// Sell disposes req.Amount of req.Currency from an existing wallet;
	// an over-sell fails with an insufficient-funds error and changes nothing.
	Sell(ctx context.Context, userID int64, req dto.TradeRequest) (*domain.TradeResult, error)
}

// PortfolioReaderSvc defines read operations over a user's portfolio
type PortfolioReaderSvc interface {
	// GetPortfolioValuation converts every wallet into baseCode, best
	// effort: unconvertible wallets are reported as warnings, not errors.
	GetPortfolioValuation(ctx context.Context, userID int64, baseCode string) (*domain.PortfolioValuation, error)
}

// TradingSvcFacade combines all trading-related service interfaces
type TradingSvcFacade interface {
	TradingSvc
	PortfolioReaderSvc
}
