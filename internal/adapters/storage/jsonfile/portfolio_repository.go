package jsonfile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/paperfx/paperfx_app/internal/apperrors"
	"github.com/paperfx/paperfx_app/internal/core/domain"
	"github.com/paperfx/paperfx_app/pkg/jsonstore"
)

// PortfolioRepository persists one JSON document per portfolio. The store's
// per-file mutex therefore serializes trades for the same user while trades
// for different users proceed independently.
type PortfolioRepository struct {
	store *jsonstore.Store
}

// NewPortfolioRepository creates a new PortfolioRepository.
func NewPortfolioRepository(store *jsonstore.Store) *PortfolioRepository {
	return &PortfolioRepository{store: store}
}

func portfolioFile(userID int64) string {
	return fmt.Sprintf("portfolios/%d.json", userID)
}

// FindPortfolioByUserID retrieves a user's portfolio.
func (r *PortfolioRepository) FindPortfolioByUserID(ctx context.Context, userID int64) (*domain.Portfolio, error) {
	var portfolio domain.Portfolio
	if err := r.store.Load(portfolioFile(userID), &portfolio); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: no portfolio for user %d", apperrors.ErrNotFound, userID)
		}
		return nil, fmt.Errorf("failed to load portfolio for user %d: %w", userID, err)
	}
	if portfolio.Wallets == nil {
		portfolio.Wallets = map[string]domain.Wallet{}
	}
	return &portfolio, nil
}

// SavePortfolio persists the full portfolio in one atomic step.
func (r *PortfolioRepository) SavePortfolio(ctx context.Context, portfolio domain.Portfolio) error {
	if err := r.store.Save(portfolioFile(portfolio.UserID), portfolio); err != nil {
		return fmt.Errorf("failed to save portfolio for user %d: %w", portfolio.UserID, err)
	}
	return nil
}

// UpdatePortfolio runs one serialized read-modify-write cycle against a
// user's portfolio.
func (r *PortfolioRepository) UpdatePortfolio(ctx context.Context, userID int64, fn func(p *domain.Portfolio, exists bool) error) error {
	return jsonstore.Update(r.store, portfolioFile(userID), fn)
}
