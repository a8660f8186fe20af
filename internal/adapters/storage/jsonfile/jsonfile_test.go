package jsonfile

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paperfx/paperfx_app/internal/apperrors"
	"github.com/paperfx/paperfx_app/internal/core/domain"
	"github.com/paperfx/paperfx_app/pkg/jsonstore"
)

func newTestStore(t *testing.T) *jsonstore.Store {
	t.Helper()
	store, err := jsonstore.New(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestSnapshotRepository_LoadMissingIsEmpty(t *testing.T) {
	repo := NewSnapshotRepository(newTestStore(t))

	snap, err := repo.LoadSnapshot(context.Background())
	require.NoError(t, err)
	assert.Empty(t, snap.Pairs)
	assert.True(t, snap.LastRefresh.IsZero())
}

func TestSnapshotRepository_ReplaceAndLoad(t *testing.T) {
	repo := NewSnapshotRepository(newTestStore(t))
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	snap := domain.RateSnapshot{
		Pairs: map[string]domain.RatePair{
			"EUR_USD": {Rate: 1.08, UpdatedAt: now, Source: "exchangerate-api"},
		},
		LastRefresh: now,
		Source:      "exchangerate-api",
	}
	require.NoError(t, repo.ReplaceSnapshot(ctx, snap))

	loaded, err := repo.LoadSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, snap.Source, loaded.Source)
	pair, ok := loaded.Get("EUR", "USD")
	require.True(t, ok)
	assert.Equal(t, 1.08, pair.Rate)
	assert.True(t, pair.UpdatedAt.Equal(now))
}

func TestSnapshotRepository_UpdateSnapshotSerializesWriters(t *testing.T) {
	repo := NewSnapshotRepository(newTestStore(t))
	ctx := context.Background()

	const writers = 20
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := repo.UpdateSnapshot(ctx, func(snap *domain.RateSnapshot, exists bool) error {
				tick := snap.Pairs["TICK_USD"]
				tick.Rate++
				snap.Pairs["TICK_USD"] = tick
				snap.Pairs[fmt.Sprintf("C%02d_USD", i)] = domain.RatePair{Rate: float64(i + 1)}
				return nil
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	snap, err := repo.LoadSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, float64(writers), snap.Pairs["TICK_USD"].Rate, "no read-modify-write cycle may be lost")
	assert.Len(t, snap.Pairs, writers+1)
}

func TestSnapshotRepository_UpdateErrorWritesNothing(t *testing.T) {
	repo := NewSnapshotRepository(newTestStore(t))
	ctx := context.Background()

	boom := fmt.Errorf("merge rejected")
	err := repo.UpdateSnapshot(ctx, func(snap *domain.RateSnapshot, exists bool) error {
		snap.Pairs["BTC_USD"] = domain.RatePair{Rate: 60000}
		return boom
	})
	require.ErrorIs(t, err, boom)

	snap, err := repo.LoadSnapshot(ctx)
	require.NoError(t, err)
	assert.Empty(t, snap.Pairs)
}

func TestHistoryRepository_AppendAndFind(t *testing.T) {
	repo := NewHistoryRepository(newTestStore(t))
	ctx := context.Background()
	base := time.Now().UTC()

	records := []domain.HistoryRecord{
		{ID: "EUR_USD_1", FromCurrency: "EUR", ToCurrency: "USD", Rate: 1.07, Timestamp: base, Source: "exchangerate-api"},
		{ID: "BTC_USD_1", FromCurrency: "BTC", ToCurrency: "USD", Rate: 60000, Timestamp: base, Source: "coingecko"},
		{ID: "EUR_USD_2", FromCurrency: "EUR", ToCurrency: "USD", Rate: 1.08, Timestamp: base.Add(time.Minute), Source: "exchangerate-api"},
	}
	require.NoError(t, repo.AppendHistory(ctx, records))

	all, err := repo.FindHistory(ctx, "", 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	eurUsd, err := repo.FindHistory(ctx, "EUR_USD", 0)
	require.NoError(t, err)
	require.Len(t, eurUsd, 2)
	assert.Equal(t, "EUR_USD_1", eurUsd[0].ID)
	assert.Equal(t, "EUR_USD_2", eurUsd[1].ID)

	limited, err := repo.FindHistory(ctx, "EUR_USD", 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "EUR_USD_2", limited[0].ID, "limit keeps the most recent records")
}

func TestHistoryRepository_FindMissingIsEmpty(t *testing.T) {
	repo := NewHistoryRepository(newTestStore(t))

	records, err := repo.FindHistory(context.Background(), "", 10)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestHistoryRepository_CapDropsOldest(t *testing.T) {
	repo := NewHistoryRepository(newTestStore(t))
	ctx := context.Background()
	base := time.Now().UTC()

	batch := make([]domain.HistoryRecord, 0, domain.MaxHistoryRecords+5)
	for i := 0; i < domain.MaxHistoryRecords+5; i++ {
		batch = append(batch, domain.HistoryRecord{
			ID:           fmt.Sprintf("EUR_USD_%d", i),
			FromCurrency: "EUR",
			ToCurrency:   "USD",
			Rate:         1.0 + float64(i)/10000,
			Timestamp:    base.Add(time.Duration(i) * time.Second),
			Source:       "exchangerate-api",
		})
	}
	require.NoError(t, repo.AppendHistory(ctx, batch))

	all, err := repo.FindHistory(ctx, "", 0)
	require.NoError(t, err)
	require.Len(t, all, domain.MaxHistoryRecords)
	assert.Equal(t, "EUR_USD_5", all[0].ID, "oldest records are dropped first")
	assert.Equal(t, fmt.Sprintf("EUR_USD_%d", domain.MaxHistoryRecords+4), all[len(all)-1].ID)
}

func TestPortfolioRepository_FindMissingIsNotFound(t *testing.T) {
	repo := NewPortfolioRepository(newTestStore(t))

	_, err := repo.FindPortfolioByUserID(context.Background(), 42)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestPortfolioRepository_UpdateCreatesAndMutates(t *testing.T) {
	repo := NewPortfolioRepository(newTestStore(t))
	ctx := context.Background()

	err := repo.UpdatePortfolio(ctx, 7, func(p *domain.Portfolio, exists bool) error {
		require.False(t, exists)
		*p = domain.NewPortfolio(7, time.Now().UTC())
		p.Deposit("EUR", decimal.NewFromInt(10))
		return nil
	})
	require.NoError(t, err)

	err = repo.UpdatePortfolio(ctx, 7, func(p *domain.Portfolio, exists bool) error {
		require.True(t, exists)
		_, werr := p.Withdraw("EUR", decimal.NewFromInt(4))
		return werr
	})
	require.NoError(t, err)

	portfolio, err := repo.FindPortfolioByUserID(ctx, 7)
	require.NoError(t, err)
	assert.True(t, portfolio.Wallets["EUR"].Balance.Equal(decimal.NewFromInt(6)))
}

func TestPortfolioRepository_UpdateErrorWritesNothing(t *testing.T) {
	repo := NewPortfolioRepository(newTestStore(t))
	ctx := context.Background()

	err := repo.UpdatePortfolio(ctx, 9, func(p *domain.Portfolio, exists bool) error {
		return apperrors.ErrInsufficientFunds
	})
	assert.ErrorIs(t, err, apperrors.ErrInsufficientFunds)

	_, err = repo.FindPortfolioByUserID(ctx, 9)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUserRepository_CreateAssignsSequentialIDs(t *testing.T) {
	repo := NewUserRepository(newTestStore(t))
	ctx := context.Background()

	alice, err := repo.CreateUser(ctx, domain.User{Username: "alice", PasswordHash: "x"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), alice.UserID)

	bob, err := repo.CreateUser(ctx, domain.User{Username: "bob", PasswordHash: "y"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), bob.UserID)
}

func TestUserRepository_CreateDuplicateUsername(t *testing.T) {
	repo := NewUserRepository(newTestStore(t))
	ctx := context.Background()

	_, err := repo.CreateUser(ctx, domain.User{Username: "alice", PasswordHash: "x"})
	require.NoError(t, err)

	_, err = repo.CreateUser(ctx, domain.User{Username: "alice", PasswordHash: "z"})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)

	users, err := repo.FindUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestUserRepository_FindByIDAndUsername(t *testing.T) {
	repo := NewUserRepository(newTestStore(t))
	ctx := context.Background()

	created, err := repo.CreateUser(ctx, domain.User{Username: "carol", PasswordHash: "h"})
	require.NoError(t, err)

	byID, err := repo.FindUserByID(ctx, created.UserID)
	require.NoError(t, err)
	assert.Equal(t, "carol", byID.Username)

	byName, err := repo.FindUserByUsername(ctx, "carol")
	require.NoError(t, err)
	assert.Equal(t, created.UserID, byName.UserID)

	_, err = repo.FindUserByID(ctx, 999)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	_, err = repo.FindUserByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
