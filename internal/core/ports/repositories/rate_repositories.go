package repositories

import (
	"context"

	"github.com/paperfx/paperfx_app/internal/core/domain"
)

// RateSnapshotReader defines read operations for the rate snapshot
type RateSnapshotReader interface {
	// LoadSnapshot returns the current snapshot, or an empty one when none
	// has been written yet.
	LoadSnapshot(ctx context.Context) (domain.RateSnapshot, error)
}

// RateSnapshotWriter defines write operations for the rate snapshot
type RateSnapshotWriter interface {
	// ReplaceSnapshot swaps the stored snapshot for snap in one atomic step.
	ReplaceSnapshot(ctx context.Context, snap domain.RateSnapshot) error

	// UpdateSnapshot runs one read-modify-write cycle over the snapshot
	// while holding its write lock, so overlapping refresh cycles cannot
	// lose each other's pairs. fn receives the current snapshot (empty
	// with exists=false before the first refresh) and mutates it in
	// place; returning an error aborts the write.
	UpdateSnapshot(ctx context.Context, fn func(snap *domain.RateSnapshot, exists bool) error) error
}

// RateSnapshotRepositoryFacade combines all snapshot-related repository interfaces
// This is a facade for clients that need access to all operations
type RateSnapshotRepositoryFacade interface {
	RateSnapshotReader
	RateSnapshotWriter
}
