package jsonfile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/paperfx/paperfx_app/internal/core/domain"
	"github.com/paperfx/paperfx_app/pkg/jsonstore"
)

const snapshotFile = "rates.json"

// SnapshotRepository persists the rate snapshot as one JSON document.
// Writes go through the store's staged-rename path, so readers only ever
// see a complete snapshot.
type SnapshotRepository struct {
	store *jsonstore.Store
}

// NewSnapshotRepository creates a new SnapshotRepository.
func NewSnapshotRepository(store *jsonstore.Store) *SnapshotRepository {
	return &SnapshotRepository{store: store}
}

// LoadSnapshot returns the current snapshot. Before the first refresh no
// file exists; that is an empty snapshot, not an error.
func (r *SnapshotRepository) LoadSnapshot(ctx context.Context) (domain.RateSnapshot, error) {
	var snap domain.RateSnapshot
	if err := r.store.Load(snapshotFile, &snap); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.EmptyRateSnapshot(), nil
		}
		return domain.RateSnapshot{}, fmt.Errorf("failed to load rate snapshot: %w", err)
	}
	if snap.Pairs == nil {
		snap.Pairs = map[string]domain.RatePair{}
	}
	return snap, nil
}

// ReplaceSnapshot swaps the stored snapshot for snap in one atomic step.
func (r *SnapshotRepository) ReplaceSnapshot(ctx context.Context, snap domain.RateSnapshot) error {
	if err := r.store.Save(snapshotFile, snap); err != nil {
		return fmt.Errorf("failed to replace rate snapshot: %w", err)
	}
	return nil
}

// UpdateSnapshot applies fn to the stored snapshot while holding its file
// lock. Overlapping refresh cycles are serialized here: each one merges
// into whatever the previous cycle committed.
func (r *SnapshotRepository) UpdateSnapshot(ctx context.Context, fn func(snap *domain.RateSnapshot, exists bool) error) error {
	err := jsonstore.Update(r.store, snapshotFile, func(snap *domain.RateSnapshot, exists bool) error {
		if snap.Pairs == nil {
			snap.Pairs = map[string]domain.RatePair{}
		}
		return fn(snap, exists)
	})
	if err != nil {
		return fmt.Errorf("failed to update rate snapshot: %w", err)
	}
	return nil
}
