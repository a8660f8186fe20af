package jsonfile

import (
	portsrepo "github.com/paperfx/paperfx_app/internal/core/ports/repositories"
	"github.com/paperfx/paperfx_app/pkg/jsonstore"
)

// NewRepositoryProvider creates all JSON-file repositories over one store
// and returns them bundled for the service container.
func NewRepositoryProvider(store *jsonstore.Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		SnapshotRepo:  NewSnapshotRepository(store),
		HistoryRepo:   NewHistoryRepository(store),
		PortfolioRepo: NewPortfolioRepository(store),
		UserRepo:      NewUserRepository(store),
	}
}
