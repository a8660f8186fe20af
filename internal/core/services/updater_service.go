package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/paperfx/paperfx_app/internal/apperrors"
	"github.com/paperfx/paperfx_app/internal/core/domain"
	portsrepo "github.com/paperfx/paperfx_app/internal/core/ports/repositories"
	portssvc "github.com/paperfx/paperfx_app/internal/core/ports/services"
	"github.com/paperfx/paperfx_app/internal/infrastructure/metrics"
)

// UpdaterService orchestrates the source clients: it fetches from each
// selected client, merges the quotes into the stored snapshot under its
// write lock and appends the changed pairs to the history log. One failing
// client never aborts the others; the cycle fails only when every client
// failed.
type UpdaterService struct {
	clients      []portssvc.RateSourceClient
	snapshotRepo portsrepo.RateSnapshotRepositoryFacade
	historyRepo  portsrepo.RateHistoryWriter

	now func() time.Time
}

// NewUpdaterService creates a new UpdaterService. Clients contribute in the
// given order; later clients win on pair-key collisions.
func NewUpdaterService(clients []portssvc.RateSourceClient, snapshotRepo portsrepo.RateSnapshotRepositoryFacade, historyRepo portsrepo.RateHistoryWriter) *UpdaterService {
	return &UpdaterService{
		clients:      clients,
		snapshotRepo: snapshotRepo,
		historyRepo:  historyRepo,
		now:          time.Now,
	}
}

// RunUpdate executes one refresh cycle. source selects a client kind
// ("crypto" or "fiat"); empty means all clients. force bypasses the
// per-client response caches.
func (s *UpdaterService) RunUpdate(ctx context.Context, source string, force bool) (*domain.UpdateResult, error) {
	selected, err := s.selectClients(source)
	if err != nil {
		return nil, err
	}

	merged := make(map[string]float64)
	contributors := make(map[string]string)
	var sources []string
	var errMessages []string
	var srcErrs []error

	for _, client := range selected {
		rates, err := client.FetchRates(ctx, force)
		if err != nil {
			metrics.RateUpdatesTotal.WithLabelValues(client.Name(), metrics.StatusError).Inc()
			errMessages = append(errMessages, err.Error())
			srcErrs = append(srcErrs, err)
			continue
		}
		metrics.RateUpdatesTotal.WithLabelValues(client.Name(), metrics.StatusOK).Inc()
		for key, rate := range rates {
			if rate <= 0 {
				continue
			}
			merged[key] = rate
			contributors[key] = client.Name()
		}
		sources = append(sources, client.Name())
	}

	if len(sources) == 0 {
		names := make([]string, len(selected))
		for i, client := range selected {
			names[i] = client.Name()
		}
		return nil, &apperrors.UpdateFailedError{Sources: names, Errs: srcErrs}
	}

	now := s.now()
	var changed []domain.HistoryRecord
	var pairCount int

	// The merge runs inside the snapshot's write lock. Overlapping cycles
	// (background refresher vs a manual refresh) each merge into whatever
	// the other committed instead of clobbering it.
	err = s.snapshotRepo.UpdateSnapshot(ctx, func(snap *domain.RateSnapshot, exists bool) error {
		changed = changed[:0]
		for key, rate := range merged {
			prevPair, had := snap.Pairs[key]
			snap.Pairs[key] = domain.RatePair{Rate: rate, UpdatedAt: now, Source: contributors[key]}

			// Unchanged rates do not append history, so replaying identical
			// upstream data leaves the log as it was.
			if had && prevPair.Rate == rate {
				continue
			}
			from, to, ok := domain.SplitPairKey(key)
			if !ok {
				continue
			}
			changed = append(changed, domain.HistoryRecord{
				ID:           domain.NewHistoryID(key, now),
				FromCurrency: from,
				ToCurrency:   to,
				Rate:         rate,
				Timestamp:    now,
				Source:       contributors[key],
			})
		}
		snap.LastRefresh = now
		snap.Source = strings.Join(sources, "+")
		pairCount = len(snap.Pairs)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to persist snapshot: %w", err)
	}
	metrics.RatePairsGauge.Set(float64(pairCount))

	if len(changed) > 0 {
		if err := s.historyRepo.AppendHistory(ctx, changed); err != nil {
			return nil, fmt.Errorf("failed to append rate history: %w", err)
		}
	}

	return &domain.UpdateResult{
		RatesCount:  len(merged),
		Sources:     sources,
		Errors:      errMessages,
		LastRefresh: now,
	}, nil
}

func (s *UpdaterService) selectClients(source string) ([]portssvc.RateSourceClient, error) {
	switch source {
	case "":
		if len(s.clients) == 0 {
			return nil, fmt.Errorf("%w: no source clients configured", apperrors.ErrValidation)
		}
		return s.clients, nil
	case portssvc.SourceKindCrypto, portssvc.SourceKindFiat:
		var selected []portssvc.RateSourceClient
		for _, client := range s.clients {
			if client.Kind() == source {
				selected = append(selected, client)
			}
		}
		if len(selected) == 0 {
			return nil, fmt.Errorf("%w: no '%s' source client is configured", apperrors.ErrValidation, source)
		}
		return selected, nil
	default:
		return nil, fmt.Errorf("%w: unknown rate source '%s'", apperrors.ErrValidation, source)
	}
}
