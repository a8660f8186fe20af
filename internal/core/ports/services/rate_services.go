package services

import (
	"context"

	"github.com/paperfx/paperfx_app/internal/core/domain"
)

// RateReaderSvc defines read operations over the current rate snapshot
type RateReaderSvc interface {
	// GetRate resolves a conversion rate between two currencies using the
	// direct, reverse and base-currency-bridge strategies, in that order.
	GetRate(ctx context.Context, fromCode, toCode string) (*domain.ResolvedRate, error)

	// ListRates returns every pair in the current snapshot with per-pair
	// freshness flags.
	ListRates(ctx context.Context) (*domain.RateListing, error)

	// GetUpdateInfo describes the current snapshot without fetching.
	GetUpdateInfo(ctx context.Context) (*domain.UpdateInfo, error)
}

// RateHistorySvc defines read operations over the bounded rate history log
type RateHistorySvc interface {
	// GetHistory returns the most recent history records, optionally
	// filtered to one pair key. limit <= 0 falls back to a default.
	GetHistory(ctx context.Context, pairKey string, limit int) ([]domain.HistoryRecord, error)
}

// RateSvcFacade combines all rate-query service interfaces
type RateSvcFacade interface {
	RateReaderSvc
	RateHistorySvc
}

// RateUpdaterSvc triggers refresh cycles against the upstream sources
type RateUpdaterSvc interface {
	// RunUpdate fetches from the selected source clients ("" means all),
	// merges their quotes into a new snapshot and persists it atomically.
	// force bypasses the per-client response cache.
	RunUpdate(ctx context.Context, source string, force bool) (*domain.UpdateResult, error)
}

// RateUpdaterSvcFacade combines all updater service interfaces
type RateUpdaterSvcFacade interface {
	RateUpdaterSvc
}
