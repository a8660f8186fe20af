package services

import (
	"fmt"

	"github.com/paperfx/paperfx_app/internal/apperrors"
	"github.com/paperfx/paperfx_app/internal/core/domain"
)

// RateResolver derives a conversion rate from one snapshot. Strategies are
// tried in a fixed order: identity, direct pair, inverted reverse pair,
// bridge through the configured base currency. Direct data is trusted over
// derived data; a zero rate is treated as absent so no strategy can divide
// by zero.
type RateResolver struct {
	baseCurrency string
}

// NewRateResolver creates a resolver bridging through baseCurrency.
func NewRateResolver(baseCurrency string) *RateResolver {
	return &RateResolver{baseCurrency: baseCurrency}
}

// Resolve finds a usable rate from fromCode to toCode inside snap. Codes must
// already be normalized. It fails with apperrors.ErrRateUnavailable once every
// strategy is exhausted.
func (r *RateResolver) Resolve(snap *domain.RateSnapshot, fromCode, toCode string) (*domain.ResolvedRate, error) {
	if fromCode == toCode {
		return &domain.ResolvedRate{
			From:     fromCode,
			To:       toCode,
			Rate:     1.0,
			Strategy: domain.RateIdentity,
		}, nil
	}

	if direct, ok := snap.Get(fromCode, toCode); ok && direct.Rate > 0 {
		return &domain.ResolvedRate{
			From:      fromCode,
			To:        toCode,
			Rate:      direct.Rate,
			Strategy:  domain.RateDirect,
			UpdatedAt: direct.UpdatedAt,
		}, nil
	}

	if reverse, ok := snap.Get(toCode, fromCode); ok && reverse.Rate > 0 {
		return &domain.ResolvedRate{
			From:      fromCode,
			To:        toCode,
			Rate:      1 / reverse.Rate,
			Strategy:  domain.RateReverse,
			UpdatedAt: reverse.UpdatedAt,
		}, nil
	}

	fromLeg, okFrom := snap.Get(fromCode, r.baseCurrency)
	toLeg, okTo := snap.Get(toCode, r.baseCurrency)
	if okFrom && okTo && fromLeg.Rate > 0 && toLeg.Rate > 0 {
		updatedAt := fromLeg.UpdatedAt
		if toLeg.UpdatedAt.Before(updatedAt) {
			updatedAt = toLeg.UpdatedAt
		}
		return &domain.ResolvedRate{
			From:      fromCode,
			To:        toCode,
			Rate:      fromLeg.Rate / toLeg.Rate,
			Strategy:  domain.RateBridge,
			UpdatedAt: updatedAt,
		}, nil
	}

	return nil, fmt.Errorf("%w: no conversion path from %s to %s", apperrors.ErrRateUnavailable, fromCode, toCode)
}
