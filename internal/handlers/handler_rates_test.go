package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/paperfx/paperfx_app/internal/apperrors"
	"github.com/paperfx/paperfx_app/internal/core/domain"
	portssvc "github.com/paperfx/paperfx_app/internal/core/ports/services"
	"github.com/paperfx/paperfx_app/internal/core/services"
	"github.com/paperfx/paperfx_app/internal/dto"
	"github.com/paperfx/paperfx_app/internal/handlers"
	"github.com/paperfx/paperfx_app/internal/platform/config"
	"github.com/paperfx/paperfx_app/internal/utils"
)

// --- Mock RateService ---
type MockRateService struct {
	mock.Mock
}

func (m *MockRateService) GetRate(ctx context.Context, fromCode, toCode string) (*domain.ResolvedRate, error) {
	args := m.Called(ctx, fromCode, toCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ResolvedRate), args.Error(1)
}

func (m *MockRateService) ListRates(ctx context.Context) (*domain.RateListing, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RateListing), args.Error(1)
}

func (m *MockRateService) GetUpdateInfo(ctx context.Context) (*domain.UpdateInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UpdateInfo), args.Error(1)
}

func (m *MockRateService) GetHistory(ctx context.Context, pairKey string, limit int) ([]domain.HistoryRecord, error) {
	args := m.Called(ctx, pairKey, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.HistoryRecord), args.Error(1)
}

var _ portssvc.RateSvcFacade = (*MockRateService)(nil)

// --- Mock UpdaterService ---
type MockUpdaterService struct {
	mock.Mock
}

func (m *MockUpdaterService) RunUpdate(ctx context.Context, source string, force bool) (*domain.UpdateResult, error) {
	args := m.Called(ctx, source, force)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UpdateResult), args.Error(1)
}

var _ portssvc.RateUpdaterSvcFacade = (*MockUpdaterService)(nil)

// --- Test Suite ---
type RateHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	rateService *MockRateService
	updater     *MockUpdaterService
	cfg         *config.Config
}

func (suite *RateHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.rateService = new(MockRateService)
	suite.updater = new(MockUpdaterService)
	suite.cfg = &config.Config{
		JWTSecret:         "test-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "paperfx-test",
		AuthRateLimit:     "100-M",
	}

	container := &portssvc.ServiceContainer{
		Currency:     services.NewCurrencyService(),
		Rates:        suite.rateService,
		Updater:      suite.updater,
		TokenService: services.NewTokenService(suite.cfg),
	}

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, suite.cfg, container, nil, nil)
}

func (suite *RateHandlerTestSuite) authHeader() string {
	token, err := utils.GenerateJWT("1", suite.cfg.JWTSecret, suite.cfg.JWTExpiryDuration, suite.cfg.JWTIssuer)
	suite.Require().NoError(err)
	return "Bearer " + token
}

func (suite *RateHandlerTestSuite) doRequest(method, path, body, auth string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *RateHandlerTestSuite) TestGetRate_Success() {
	suite.rateService.On("GetRate", mock.Anything, "BTC", "USD").
		Return(&domain.ResolvedRate{
			From: "BTC", To: "USD", Rate: 60000,
			Strategy: domain.RateDirect, UpdatedAt: time.Now(),
		}, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/rates/BTC/USD", "", suite.authHeader())

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.RateResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(60000.0, resp.Rate)
	suite.Equal("direct", resp.Strategy)
	suite.InDelta(1.0/60000, resp.Reciprocal, 1e-12)
}

func (suite *RateHandlerTestSuite) TestGetRate_RequiresAuth() {
	w := suite.doRequest(http.MethodGet, "/api/v1/rates/BTC/USD", "", "")
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *RateHandlerTestSuite) TestGetRate_NoPathIs404() {
	suite.rateService.On("GetRate", mock.Anything, "BTC", "EUR").
		Return(nil, apperrors.ErrRateUnavailable).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/rates/BTC/EUR", "", suite.authHeader())
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *RateHandlerTestSuite) TestGetRate_UnknownCurrencyIs400() {
	suite.rateService.On("GetRate", mock.Anything, "ABCDE", "USD").
		Return(nil, apperrors.ErrUnknownCurrency).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/rates/ABCDE/USD", "", suite.authHeader())
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *RateHandlerTestSuite) TestRefresh_SourceFilter() {
	suite.updater.On("RunUpdate", mock.Anything, "crypto", true).
		Return(&domain.UpdateResult{
			RatesCount:  10,
			Sources:     []string{"coingecko"},
			LastRefresh: time.Now(),
		}, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/rates/refresh",
		`{"source":"crypto","force":true}`, suite.authHeader())

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.UpdateRatesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Success)
	suite.Equal(10, resp.RatesCount)
	suite.updater.AssertExpectations(suite.T())
}

func (suite *RateHandlerTestSuite) TestRefresh_EmptyBodyRefreshesAll() {
	suite.updater.On("RunUpdate", mock.Anything, "", false).
		Return(&domain.UpdateResult{RatesCount: 40, Sources: []string{"coingecko", "exchangerate-api"}}, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/rates/refresh", "", suite.authHeader())
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *RateHandlerTestSuite) TestRefresh_TotalFailureIs502() {
	suite.updater.On("RunUpdate", mock.Anything, "", false).
		Return(nil, &apperrors.UpdateFailedError{Sources: []string{"coingecko"}}).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/rates/refresh", "", suite.authHeader())
	suite.Equal(http.StatusBadGateway, w.Code)
}

func (suite *RateHandlerTestSuite) TestRefresh_InvalidSourceInBody() {
	w := suite.doRequest(http.MethodPost, "/api/v1/rates/refresh",
		`{"source":"lunar"}`, suite.authHeader())
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.updater.AssertNotCalled(suite.T(), "RunUpdate", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RateHandlerTestSuite) TestGetHistory_PassesFilters() {
	suite.rateService.On("GetHistory", mock.Anything, "BTC_USD", 10).
		Return([]domain.HistoryRecord{{ID: "BTC_USD_1", FromCurrency: "BTC", ToCurrency: "USD", Rate: 60000}}, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/rates/history?pair=BTC_USD&limit=10", "", suite.authHeader())

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.HistoryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Records, 1)
	suite.Equal("BTC_USD_1", resp.Records[0].ID)
}

func (suite *RateHandlerTestSuite) TestStatus() {
	suite.rateService.On("GetUpdateInfo", mock.Anything).
		Return(&domain.UpdateInfo{PairCount: 42, Source: "coingecko+exchangerate-api"}, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/rates/status", "", suite.authHeader())

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.UpdateInfoResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(42, resp.PairCount)
}

func (suite *RateHandlerTestSuite) TestListCurrencies_IsPublic() {
	w := suite.doRequest(http.MethodGet, "/api/v1/currencies", "", "")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.CurrenciesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.NotEmpty(resp.Fiat)
	suite.NotEmpty(resp.Crypto)
}

func (suite *RateHandlerTestSuite) TestHealth() {
	w := suite.doRequest(http.MethodGet, "/health", "", "")
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func TestRateHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RateHandlerTestSuite))
}
