package background

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/paperfx/paperfx_app/internal/apperrors"
	portssvc "github.com/paperfx/paperfx_app/internal/core/ports/services"
)

// RateRefresher periodically refreshes all rate sources so API reads stay
// warm without waiting for an explicit refresh call.
type RateRefresher struct {
	updater  portssvc.RateUpdaterSvcFacade
	interval time.Duration
	logger   *slog.Logger
}

// NewRateRefresher creates a refresher running every interval.
func NewRateRefresher(updater portssvc.RateUpdaterSvcFacade, interval time.Duration, logger *slog.Logger) *RateRefresher {
	return &RateRefresher{
		updater:  updater,
		interval: interval,
		logger:   logger.With("component", "rate_refresher"),
	}
}

// Run refreshes once immediately, then on every tick until ctx is cancelled.
// A failed cycle is logged and retried on the next tick.
func (r *RateRefresher) Run(ctx context.Context) {
	r.logger.InfoContext(ctx, "background rate refresher started", "interval", r.interval.String())

	r.refresh(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			r.logger.InfoContext(ctx, "background rate refresher stopped")
			return
		case <-ticker.C:
			r.refresh(ctx)
		}
	}
}

func (r *RateRefresher) refresh(ctx context.Context) {
	result, err := r.updater.RunUpdate(ctx, "", false)
	if err != nil {
		if errors.Is(err, apperrors.ErrUpdateFailed) {
			r.logger.ErrorContext(ctx, "scheduled refresh failed on every source", "error", err)
		} else if !errors.Is(err, context.Canceled) {
			r.logger.ErrorContext(ctx, "scheduled refresh failed", "error", err)
		}
		return
	}
	r.logger.InfoContext(ctx, "scheduled refresh completed",
		"rates", result.RatesCount,
		"sources", result.Sources,
		"partial_errors", len(result.Errors),
	)
}
