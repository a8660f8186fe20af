package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/paperfx/paperfx_app/internal/core/ports/services"
	"github.com/paperfx/paperfx_app/internal/dto"
	"github.com/paperfx/paperfx_app/internal/middleware"
)

// portfolioHandler handles HTTP requests for the portfolio view.
type portfolioHandler struct {
	portfolioService portssvc.PortfolioReaderSvc
}

// newPortfolioHandler creates a new portfolioHandler.
func newPortfolioHandler(ps portssvc.PortfolioReaderSvc) *portfolioHandler {
	return &portfolioHandler{portfolioService: ps}
}

// registerPortfolioRoutes registers routes related to portfolios.
func registerPortfolioRoutes(rg *gin.RouterGroup, portfolioService portssvc.PortfolioReaderSvc) {
	h := newPortfolioHandler(portfolioService)
	rg.GET("/portfolio", h.getPortfolio)
}

// getPortfolio godoc
// @Summary Portfolio valuation
// @Description Returns the authenticated user's wallets valued in a base currency. Wallets without a resolvable rate are skipped with a warning.
// @Tags portfolio
// @Produce json
// @Param base query string false "Valuation currency" default(USD)
// @Success 200 {object} dto.PortfolioResponse
// @Failure 400 {object} ErrorResponse "Unsupported base currency"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "No portfolio"
// @Security BearerAuth
// @Router /portfolio [get]
func (h *portfolioHandler) getPortfolio(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.PortfolioQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	valuation, err := h.portfolioService.GetPortfolioValuation(c.Request.Context(), userID, params.Base)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToPortfolioResponse(valuation))
}
