package repositories

import (
	"context"

	"github.com/paperfx/paperfx_app/internal/core/domain"
)

// PortfolioReader defines read operations for portfolio data
type PortfolioReader interface {
	// FindPortfolioByUserID retrieves a user's portfolio.
	FindPortfolioByUserID(ctx context.Context, userID int64) (*domain.Portfolio, error)
}

// PortfolioWriter defines write operations for portfolio data
type PortfolioWriter interface {
	// SavePortfolio persists the full portfolio in one atomic step.
	SavePortfolio(ctx context.Context, portfolio domain.Portfolio) error

	// UpdatePortfolio runs one serialized read-modify-write cycle against a
	// user's portfolio. fn receives the current portfolio (exists=false when
	// the user has none yet) and mutates it in place; returning an error
	// aborts the cycle without writing. Cycles for the same user never
	// interleave; cycles for different users proceed independently.
	UpdatePortfolio(ctx context.Context, userID int64, fn func(p *domain.Portfolio, exists bool) error) error
}

// PortfolioRepositoryFacade combines all portfolio-related repository interfaces
// This is a facade for clients that need access to all operations
type PortfolioRepositoryFacade interface {
	PortfolioReader
	PortfolioWriter
}
