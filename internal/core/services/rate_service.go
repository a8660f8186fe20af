package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/paperfx/paperfx_app/internal/apperrors"
	"github.com/paperfx/paperfx_app/internal/core/domain"
	portsrepo "github.com/paperfx/paperfx_app/internal/core/ports/repositories"
	"github.com/samber/lo"
)

const defaultHistoryLimit = 50

// RateService answers rate queries over the current snapshot and the
// bounded history log. It never mutates the snapshot; staleness is reported,
// not treated as an error.
type RateService struct {
	snapshotRepo portsrepo.RateSnapshotReader
	historyRepo  portsrepo.RateHistoryReader
	resolver     *RateResolver
	ratesTTL     time.Duration
}

// NewRateService creates a new RateService.
func NewRateService(snapshotRepo portsrepo.RateSnapshotReader, historyRepo portsrepo.RateHistoryReader, resolver *RateResolver, ratesTTL time.Duration) *RateService {
	return &RateService{
		snapshotRepo: snapshotRepo,
		historyRepo:  historyRepo,
		resolver:     resolver,
		ratesTTL:     ratesTTL,
	}
}

// GetRate resolves the conversion rate between two supported currencies.
func (s *RateService) GetRate(ctx context.Context, fromCode, toCode string) (*domain.ResolvedRate, error) {
	from, err := normalizeSupportedCode(fromCode)
	if err != nil {
		return nil, err
	}
	to, err := normalizeSupportedCode(toCode)
	if err != nil {
		return nil, err
	}

	// Identity rates never touch the store.
	if from == to {
		return s.resolver.Resolve(&domain.RateSnapshot{}, from, to)
	}

	snap, err := s.snapshotRepo.LoadSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load rate snapshot: %w", err)
	}
	return s.resolver.Resolve(&snap, from, to)
}

// ListRates returns every pair in the current snapshot, sorted by pair key,
// with each pair flagged fresh when its age is below the configured TTL.
func (s *RateService) ListRates(ctx context.Context) (*domain.RateListing, error) {
	snap, err := s.snapshotRepo.LoadSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load rate snapshot: %w", err)
	}

	now := time.Now()
	keys := lo.Keys(snap.Pairs)
	sort.Strings(keys)

	listing := &domain.RateListing{
		Pairs:       make([]domain.RateListEntry, 0, len(keys)),
		LastRefresh: snap.LastRefresh,
		Source:      snap.Source,
	}
	for _, key := range keys {
		pair := snap.Pairs[key]
		listing.Pairs = append(listing.Pairs, domain.RateListEntry{
			Pair:      key,
			Rate:      pair.Rate,
			UpdatedAt: pair.UpdatedAt,
			Source:    pair.Source,
			Fresh:     pair.FreshWithin(s.ratesTTL, now),
		})
	}
	return listing, nil
}

// GetUpdateInfo describes the current snapshot without triggering a fetch.
func (s *RateService) GetUpdateInfo(ctx context.Context) (*domain.UpdateInfo, error) {
	snap, err := s.snapshotRepo.LoadSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load rate snapshot: %w", err)
	}
	return &domain.UpdateInfo{
		PairCount:   len(snap.Pairs),
		LastRefresh: snap.LastRefresh,
		Source:      snap.Source,
	}, nil
}

// GetHistory returns the most recent history records, optionally filtered to
// one pair key such as "BTC_USD".
func (s *RateService) GetHistory(ctx context.Context, pairKey string, limit int) ([]domain.HistoryRecord, error) {
	pairKey = strings.ToUpper(strings.TrimSpace(pairKey))
	if pairKey != "" {
		if _, _, ok := domain.SplitPairKey(pairKey); !ok {
			return nil, fmt.Errorf("%w: pair must look like FROM_TO, got '%s'", apperrors.ErrValidation, pairKey)
		}
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	records, err := s.historyRepo.FindHistory(ctx, pairKey, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load rate history: %w", err)
	}
	return records, nil
}

// normalizeSupportedCode uppercases a raw code and checks it against the
// supported-currency registry.
func normalizeSupportedCode(raw string) (string, error) {
	code, ok := domain.NormalizeCurrencyCode(raw)
	if !ok {
		return "", fmt.Errorf("%w: currency code '%s' is malformed", apperrors.ErrValidation, raw)
	}
	if !domain.IsSupportedCurrency(code) {
		return "", fmt.Errorf("%w: '%s' is not a supported currency", apperrors.ErrUnknownCurrency, code)
	}
	return code, nil
}
