package repositories

import (
	"context"

	"github.com/paperfx/paperfx_app/internal/core/domain"
)

// RateHistoryReader defines read operations for the rate history log
type RateHistoryReader interface {
	// FindHistory returns the most recent records in insertion order,
	// optionally filtered to one pair key. limit <= 0 means no limit.
	FindHistory(ctx context.Context, pairKey string, limit int) ([]domain.HistoryRecord, error)
}

// RateHistoryWriter defines write operations for the rate history log
type RateHistoryWriter interface {
	// AppendHistory appends records and truncates the log to its retention
	// cap, dropping the oldest entries first.
	AppendHistory(ctx context.Context, records []domain.HistoryRecord) error
}

// RateHistoryRepositoryFacade combines all history-related repository interfaces
type RateHistoryRepositoryFacade interface {
	RateHistoryReader
	RateHistoryWriter
}
