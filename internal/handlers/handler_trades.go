package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/paperfx/paperfx_app/internal/core/domain"
	portssvc "github.com/paperfx/paperfx_app/internal/core/ports/services"
	"github.com/paperfx/paperfx_app/internal/dto"
	"github.com/paperfx/paperfx_app/internal/infrastructure/events"
	"github.com/paperfx/paperfx_app/internal/infrastructure/metrics"
	"github.com/paperfx/paperfx_app/internal/middleware"
	"github.com/paperfx/paperfx_app/internal/utils"
)

// tradeHandler handles HTTP requests for buy and sell orders. The ledger
// itself is side-effect free; metrics and trade events are emitted here.
type tradeHandler struct {
	tradingService portssvc.TradingSvcFacade
	tradePublisher *events.TradePublisher
	posthogClient  *utils.PosthogClientWrapper
}

// newTradeHandler creates a new tradeHandler.
func newTradeHandler(ts portssvc.TradingSvcFacade, tp *events.TradePublisher, ph *utils.PosthogClientWrapper) *tradeHandler {
	return &tradeHandler{
		tradingService: ts,
		tradePublisher: tp,
		posthogClient:  ph,
	}
}

// registerTradeRoutes registers routes related to trading.
func registerTradeRoutes(rg *gin.RouterGroup, tradingService portssvc.TradingSvcFacade, tradePublisher *events.TradePublisher, posthogClient *utils.PosthogClientWrapper) {
	h := newTradeHandler(tradingService, tradePublisher, posthogClient)

	trades := rg.Group("/trades")
	{
		trades.POST("/buy", h.buy)
		trades.POST("/sell", h.sell)
	}
}

// buy godoc
// @Summary Buy currency
// @Description Purchases an amount of a currency at the current rate, creating the wallet on first purchase.
// @Tags trades
// @Accept json
// @Produce json
// @Param trade body dto.TradeRequest true "Trade order"
// @Success 200 {object} dto.TradeResponse
// @Failure 400 {object} ErrorResponse "Invalid amount or unsupported currency"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "No conversion path for the currency"
// @Security BearerAuth
// @Router /trades/buy [post]
func (h *tradeHandler) buy(c *gin.Context) {
	h.trade(c, domain.Buy)
}

// sell godoc
// @Summary Sell currency
// @Description Sells an amount of a currency from an existing wallet at the current rate.
// @Tags trades
// @Accept json
// @Produce json
// @Param trade body dto.TradeRequest true "Trade order"
// @Success 200 {object} dto.TradeResponse
// @Failure 400 {object} ErrorResponse "Invalid amount or unsupported currency"
// @Failure 401 {object} ErrorResponse
// @Failure 422 {object} InsufficientFundsResponse "Insufficient funds"
// @Security BearerAuth
// @Router /trades/sell [post]
func (h *tradeHandler) sell(c *gin.Context) {
	h.trade(c, domain.Sell)
}

func (h *tradeHandler) trade(c *gin.Context, side domain.TradeSide) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sideLabel := string(side)

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.TradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	var result *domain.TradeResult
	var err error
	switch side {
	case domain.Buy:
		result, err = h.tradingService.Buy(c.Request.Context(), userID, req)
	case domain.Sell:
		result, err = h.tradingService.Sell(c.Request.Context(), userID, req)
	}
	if err != nil {
		metrics.TradesTotal.WithLabelValues(sideLabel, metrics.StatusError).Inc()
		respondError(c, err)
		return
	}

	metrics.TradesTotal.WithLabelValues(sideLabel, metrics.StatusOK).Inc()
	h.tradePublisher.PublishTrade(c.Request.Context(), result)
	middleware.PosthogEvent(c, h.posthogClient, "trade_executed", map[string]any{
		"side":     sideLabel,
		"currency": result.Currency,
	})

	logger.Info("Trade executed",
		slog.String("trade_id", result.TradeID),
		slog.String("side", sideLabel),
		slog.String("currency", result.Currency),
		slog.String("amount", result.Amount.String()),
	)
	c.JSON(http.StatusOK, dto.ToTradeResponse(result))
}
