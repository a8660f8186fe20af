package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/paperfx/paperfx_app/internal/apperrors"
	"github.com/paperfx/paperfx_app/internal/core/domain"
	portsrepo "github.com/paperfx/paperfx_app/internal/core/ports/repositories"
	"github.com/paperfx/paperfx_app/internal/dto"
	"github.com/shopspring/decimal"
)

// TradingService is the wallet ledger: it validates a trade, prices it via
// the resolver against the settlement currency, applies the balance change
// and persists the whole portfolio in one serialized step. It carries no
// logging or event side effects; observers hook in at the call site.
type TradingService struct {
	portfolioRepo      portsrepo.PortfolioRepositoryFacade
	snapshotRepo       portsrepo.RateSnapshotReader
	resolver           *RateResolver
	settlementCurrency string

	now func() time.Time
}

// NewTradingService creates a new TradingService settling trades in
// settlementCurrency.
func NewTradingService(portfolioRepo portsrepo.PortfolioRepositoryFacade, snapshotRepo portsrepo.RateSnapshotReader, resolver *RateResolver, settlementCurrency string) *TradingService {
	return &TradingService{
		portfolioRepo:      portfolioRepo,
		snapshotRepo:       snapshotRepo,
		resolver:           resolver,
		settlementCurrency: settlementCurrency,
		now:                time.Now,
	}
}

// Buy purchases req.Amount of req.Currency, creating the wallet on first
// purchase.
func (s *TradingService) Buy(ctx context.Context, userID int64, req dto.TradeRequest) (*domain.TradeResult, error) {
	return s.trade(ctx, userID, domain.Buy, req)
}

// Sell disposes req.Amount of req.Currency from an existing wallet. Selling
// more than the wallet holds fails without changing any balance.
func (s *TradingService) Sell(ctx context.Context, userID int64, req dto.TradeRequest) (*domain.TradeResult, error) {
	return s.trade(ctx, userID, domain.Sell, req)
}

// trade runs the validate → price → apply → persist stages. Validation and
// pricing happen before the portfolio is touched, so a rejected trade has no
// partial effects.
func (s *TradingService) trade(ctx context.Context, userID int64, side domain.TradeSide, req dto.TradeRequest) (*domain.TradeResult, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: trade requires an authenticated user", apperrors.ErrUnauthorized)
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be greater than zero, got %s", apperrors.ErrInvalidAmount, req.Amount)
	}
	code, err := normalizeSupportedCode(req.Currency)
	if err != nil {
		return nil, err
	}

	rate := 1.0
	if code != s.settlementCurrency {
		snap, err := s.snapshotRepo.LoadSnapshot(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load rate snapshot: %w", err)
		}
		resolved, err := s.resolver.Resolve(&snap, code, s.settlementCurrency)
		if err != nil {
			// No silent default rate: an unpriceable trade is rejected.
			return nil, err
		}
		rate = resolved.Rate
	}
	settlement := req.Amount.Mul(decimal.NewFromFloat(rate))

	now := s.now()
	var result *domain.TradeResult
	err = s.portfolioRepo.UpdatePortfolio(ctx, userID, func(p *domain.Portfolio, exists bool) error {
		if !exists {
			if side == domain.Sell {
				return &apperrors.InsufficientFundsError{
					Currency:  code,
					Available: decimal.Zero,
					Required:  req.Amount,
				}
			}
			*p = domain.NewPortfolio(userID, now)
		}

		oldBalance := decimal.Zero
		if w, ok := p.Wallet(code); ok {
			oldBalance = w.Balance
		}

		var wallet domain.Wallet
		switch side {
		case domain.Buy:
			wallet = p.Deposit(code, req.Amount)
		case domain.Sell:
			var err error
			wallet, err = p.Withdraw(code, req.Amount)
			if err != nil {
				return err
			}
		}
		p.UpdatedAt = now

		result = &domain.TradeResult{
			TradeID:            uuid.NewString(),
			UserID:             userID,
			Side:               side,
			Currency:           code,
			Amount:             req.Amount,
			Rate:               rate,
			OldBalance:         oldBalance,
			NewBalance:         wallet.Balance,
			SettlementCost:     settlement,
			SettlementCurrency: s.settlementCurrency,
			ExecutedAt:         now,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// GetPortfolioValuation converts every wallet into baseCode and sums the
// results. Wallets without a resolvable rate are skipped with a warning
// instead of failing the whole valuation.
func (s *TradingService) GetPortfolioValuation(ctx context.Context, userID int64, baseCode string) (*domain.PortfolioValuation, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: valuation requires an authenticated user", apperrors.ErrUnauthorized)
	}
	base, err := normalizeSupportedCode(baseCode)
	if err != nil {
		return nil, err
	}

	portfolio, err := s.portfolioRepo.FindPortfolioByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	snap, err := s.snapshotRepo.LoadSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load rate snapshot: %w", err)
	}

	codes := make([]string, 0, len(portfolio.Wallets))
	for code := range portfolio.Wallets {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	valuation := &domain.PortfolioValuation{
		UserID:  userID,
		Base:    base,
		Wallets: make([]domain.WalletValuation, 0, len(codes)),
		Total:   decimal.Zero,
	}
	for _, code := range codes {
		wallet := portfolio.Wallets[code]
		resolved, err := s.resolver.Resolve(&snap, code, base)
		if err != nil {
			valuation.Warnings = append(valuation.Warnings,
				fmt.Sprintf("no rate for %s→%s, wallet skipped", code, base))
			continue
		}
		value := wallet.Balance.Mul(decimal.NewFromFloat(resolved.Rate))
		valuation.Wallets = append(valuation.Wallets, domain.WalletValuation{
			Currency: code,
			Balance:  wallet.Balance,
			Rate:     resolved.Rate,
			Value:    value,
		})
		valuation.Total = valuation.Total.Add(value)
	}
	return valuation, nil
}
