package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/paperfx/paperfx_app/internal/apperrors"
	"github.com/paperfx/paperfx_app/internal/middleware"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// InsufficientFundsResponse reports a rejected sell with the balances involved.
type InsufficientFundsResponse struct {
	Error     string `json:"error"`
	Currency  string `json:"currency"`
	Available string `json:"available"`
	Required  string `json:"required"`
}

// respondError maps service errors onto HTTP status codes. Unrecognized
// errors become 500s with a generic body so internals never leak.
func respondError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var fundsErr *apperrors.InsufficientFundsError
	if errors.As(err, &fundsErr) {
		c.JSON(http.StatusUnprocessableEntity, InsufficientFundsResponse{
			Error:     fundsErr.Error(),
			Currency:  fundsErr.Currency,
			Available: fundsErr.Available.String(),
			Required:  fundsErr.Required.String(),
		})
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrValidation),
		errors.Is(err, apperrors.ErrInvalidAmount),
		errors.Is(err, apperrors.ErrUnknownCurrency):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrNotFound),
		errors.Is(err, apperrors.ErrRateUnavailable):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrUpdateFailed),
		errors.Is(err, apperrors.ErrSourceUnreachable):
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: err.Error()})
	default:
		logger.Error("Unhandled service error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}
