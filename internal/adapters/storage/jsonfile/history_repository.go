package jsonfile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/paperfx/paperfx_app/internal/core/domain"
	"github.com/paperfx/paperfx_app/pkg/jsonstore"
)

const historyFile = "history.json"

// HistoryRepository persists the bounded rate history log as one JSON array,
// oldest record first.
type HistoryRepository struct {
	store *jsonstore.Store
}

// NewHistoryRepository creates a new HistoryRepository.
func NewHistoryRepository(store *jsonstore.Store) *HistoryRepository {
	return &HistoryRepository{store: store}
}

// AppendHistory appends records and truncates the log to the retention cap,
// dropping the oldest entries first. The append and truncate happen inside
// one read-modify-write cycle on the history file.
func (r *HistoryRepository) AppendHistory(ctx context.Context, records []domain.HistoryRecord) error {
	if len(records) == 0 {
		return nil
	}
	err := jsonstore.Update(r.store, historyFile, func(log *[]domain.HistoryRecord, exists bool) error {
		*log = append(*log, records...)
		if excess := len(*log) - domain.MaxHistoryRecords; excess > 0 {
			*log = append([]domain.HistoryRecord(nil), (*log)[excess:]...)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to append rate history: %w", err)
	}
	return nil
}

// FindHistory returns the most recent records in insertion order, optionally
// filtered to one pair key. limit <= 0 means no limit.
func (r *HistoryRepository) FindHistory(ctx context.Context, pairKey string, limit int) ([]domain.HistoryRecord, error) {
	var log []domain.HistoryRecord
	if err := r.store.Load(historyFile, &log); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []domain.HistoryRecord{}, nil
		}
		return nil, fmt.Errorf("failed to load rate history: %w", err)
	}

	matched := log
	if pairKey != "" {
		matched = make([]domain.HistoryRecord, 0, len(log))
		for _, rec := range log {
			if domain.PairKey(rec.FromCurrency, rec.ToCurrency) == pairKey {
				matched = append(matched, rec)
			}
		}
	}
	if limit > 0 && len(matched) > limit {
		matched = matched[len(matched)-limit:]
	}
	out := make([]domain.HistoryRecord, len(matched))
	copy(out, matched)
	return out, nil
}
