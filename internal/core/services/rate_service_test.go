package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/paperfx/paperfx_app/internal/apperrors"
	"github.com/paperfx/paperfx_app/internal/core/domain"
	portssvc "github.com/paperfx/paperfx_app/internal/core/ports/services"
	"github.com/paperfx/paperfx_app/internal/core/services"
)

type RateServiceTestSuite struct {
	suite.Suite
	snapshotRepo *MockSnapshotRepository
	historyRepo  *MockHistoryRepository
	service      portssvc.RateSvcFacade
}

func (suite *RateServiceTestSuite) SetupTest() {
	suite.snapshotRepo = new(MockSnapshotRepository)
	suite.historyRepo = new(MockHistoryRepository)
	suite.service = services.NewRateService(
		suite.snapshotRepo,
		suite.historyRepo,
		services.NewRateResolver("USD"),
		5*time.Minute,
	)
}

func (suite *RateServiceTestSuite) TestGetRate_Direct() {
	ctx := context.Background()
	suite.snapshotRepo.On("LoadSnapshot", ctx).Return(domain.RateSnapshot{
		Pairs: map[string]domain.RatePair{
			"BTC_USD": {Rate: 60000, UpdatedAt: time.Now(), Source: "coingecko"},
		},
	}, nil).Once()

	resolved, err := suite.service.GetRate(ctx, "btc", "usd")

	suite.Require().NoError(err)
	suite.Equal("BTC", resolved.From)
	suite.Equal("USD", resolved.To)
	suite.Equal(60000.0, resolved.Rate)
	suite.Equal(domain.RateDirect, resolved.Strategy)
}

func (suite *RateServiceTestSuite) TestGetRate_IdentitySkipsStore() {
	resolved, err := suite.service.GetRate(context.Background(), "EUR", "eur")

	suite.Require().NoError(err)
	suite.Equal(1.0, resolved.Rate)
	suite.Equal(domain.RateIdentity, resolved.Strategy)
	suite.snapshotRepo.AssertNotCalled(suite.T(), "LoadSnapshot", mock.Anything)
}

func (suite *RateServiceTestSuite) TestGetRate_MalformedCode() {
	_, err := suite.service.GetRate(context.Background(), "B!C", "USD")
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *RateServiceTestSuite) TestGetRate_UnknownCurrency() {
	_, err := suite.service.GetRate(context.Background(), "ABCDE", "USD")
	suite.ErrorIs(err, apperrors.ErrUnknownCurrency)
}

func (suite *RateServiceTestSuite) TestListRates_SortedAndFreshness() {
	ctx := context.Background()
	now := time.Now()
	suite.snapshotRepo.On("LoadSnapshot", ctx).Return(domain.RateSnapshot{
		Pairs: map[string]domain.RatePair{
			"ETH_USD": {Rate: 3000, UpdatedAt: now.Add(-time.Minute), Source: "coingecko"},
			"BTC_USD": {Rate: 60000, UpdatedAt: now.Add(-time.Hour), Source: "coingecko"},
		},
		LastRefresh: now.Add(-time.Minute),
		Source:      "coingecko",
	}, nil).Once()

	listing, err := suite.service.ListRates(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(listing.Pairs, 2)
	suite.Equal("BTC_USD", listing.Pairs[0].Pair)
	suite.Equal("ETH_USD", listing.Pairs[1].Pair)
	suite.False(listing.Pairs[0].Fresh, "an hour-old pair is stale against a 5m TTL")
	suite.True(listing.Pairs[1].Fresh)
}

func (suite *RateServiceTestSuite) TestGetUpdateInfo() {
	ctx := context.Background()
	refreshedAt := time.Now().Add(-2 * time.Minute)
	suite.snapshotRepo.On("LoadSnapshot", ctx).Return(domain.RateSnapshot{
		Pairs: map[string]domain.RatePair{
			"BTC_USD": {Rate: 60000, UpdatedAt: refreshedAt},
		},
		LastRefresh: refreshedAt,
		Source:      "coingecko",
	}, nil).Once()

	info, err := suite.service.GetUpdateInfo(ctx)

	suite.Require().NoError(err)
	suite.Equal(1, info.PairCount)
	suite.Equal("coingecko", info.Source)
	suite.True(info.LastRefresh.Equal(refreshedAt))
}

func (suite *RateServiceTestSuite) TestGetHistory_NormalizesPairAndDefaultsLimit() {
	ctx := context.Background()
	records := []domain.HistoryRecord{{ID: "BTC_USD_1", FromCurrency: "BTC", ToCurrency: "USD", Rate: 60000}}
	suite.historyRepo.On("FindHistory", ctx, "BTC_USD", 50).Return(records, nil).Once()

	got, err := suite.service.GetHistory(ctx, " btc_usd ", 0)

	suite.Require().NoError(err)
	suite.Equal(records, got)
	suite.historyRepo.AssertExpectations(suite.T())
}

func (suite *RateServiceTestSuite) TestGetHistory_BadPair() {
	_, err := suite.service.GetHistory(context.Background(), "BTCUSD", 10)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestRateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RateServiceTestSuite))
}
