package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/paperfx/paperfx_app/internal/core/ports/services"
	"github.com/paperfx/paperfx_app/internal/dto"
	"github.com/paperfx/paperfx_app/internal/middleware"
)

// rateHandler handles HTTP requests related to exchange rates.
type rateHandler struct {
	rateService    portssvc.RateSvcFacade
	updaterService portssvc.RateUpdaterSvcFacade
}

// newRateHandler creates a new rateHandler.
func newRateHandler(rs portssvc.RateSvcFacade, us portssvc.RateUpdaterSvcFacade) *rateHandler {
	return &rateHandler{
		rateService:    rs,
		updaterService: us,
	}
}

// registerRateRoutes registers routes related to exchange rates.
func registerRateRoutes(rg *gin.RouterGroup, rateService portssvc.RateSvcFacade, updaterService portssvc.RateUpdaterSvcFacade) {
	h := newRateHandler(rateService, updaterService)

	rates := rg.Group("/rates")
	{
		rates.GET("", h.listRates)
		rates.GET("/status", h.getStatus)
		rates.GET("/history", h.getHistory)
		rates.GET("/:from/:to", h.getRate)
		rates.POST("/refresh", h.refreshRates)
	}
}

// listRates godoc
// @Summary List all cached rates
// @Description Returns every pair in the current snapshot with per-pair freshness flags.
// @Tags rates
// @Produce json
// @Success 200 {object} dto.RateListResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /rates [get]
func (h *rateHandler) listRates(c *gin.Context) {
	listing, err := h.rateService.ListRates(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToRateListResponse(listing))
}

// getRate godoc
// @Summary Get a conversion rate
// @Description Resolves the rate between two currencies via direct, reverse or bridged lookup.
// @Tags rates
// @Produce json
// @Param from path string true "Source currency code"
// @Param to path string true "Target currency code"
// @Success 200 {object} dto.RateResponse
// @Failure 400 {object} ErrorResponse "Malformed or unsupported currency"
// @Failure 404 {object} ErrorResponse "No conversion path"
// @Security BearerAuth
// @Router /rates/{from}/{to} [get]
func (h *rateHandler) getRate(c *gin.Context) {
	resolved, err := h.rateService.GetRate(c.Request.Context(), c.Param("from"), c.Param("to"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToRateResponse(resolved))
}

// getStatus godoc
// @Summary Snapshot status
// @Description Describes the current snapshot (pair count, last refresh, sources) without fetching.
// @Tags rates
// @Produce json
// @Success 200 {object} dto.UpdateInfoResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /rates/status [get]
func (h *rateHandler) getStatus(c *gin.Context) {
	info, err := h.rateService.GetUpdateInfo(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUpdateInfoResponse(info))
}

// getHistory godoc
// @Summary Rate history
// @Description Returns the most recent rate history records, optionally filtered to one pair.
// @Tags rates
// @Produce json
// @Param pair query string false "Pair key, e.g. BTC_USD"
// @Param limit query int false "Maximum records to return" default(50)
// @Success 200 {object} dto.HistoryResponse
// @Failure 400 {object} ErrorResponse "Malformed pair key"
// @Security BearerAuth
// @Router /rates/history [get]
func (h *rateHandler) getHistory(c *gin.Context) {
	var params dto.HistoryQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	records, err := h.rateService.GetHistory(c.Request.Context(), params.Pair, params.Limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToHistoryResponse(records))
}

// refreshRates godoc
// @Summary Refresh rates from upstream sources
// @Description Fetches fresh rates from the selected sources and swaps in a new snapshot.
// @Tags rates
// @Accept json
// @Produce json
// @Param refresh body dto.UpdateRatesRequest false "Refresh options"
// @Success 200 {object} dto.UpdateRatesResponse
// @Failure 400 {object} ErrorResponse "Unknown source"
// @Failure 502 {object} ErrorResponse "Every source failed"
// @Security BearerAuth
// @Router /rates/refresh [post]
func (h *rateHandler) refreshRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateRatesRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
			return
		}
	}

	result, err := h.updaterService.RunUpdate(c.Request.Context(), req.Source, req.Force)
	if err != nil {
		logger.Warn("Rate refresh failed", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	logger.Info("Rate refresh completed",
		slog.Int("rates", result.RatesCount),
		slog.Any("sources", result.Sources),
		slog.Int("partial_errors", len(result.Errors)),
	)
	c.JSON(http.StatusOK, dto.ToUpdateRatesResponse(result))
}
