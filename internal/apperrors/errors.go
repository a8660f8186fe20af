package apperrors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates that the caller is not authenticated.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates that the caller is not allowed to perform the operation.
var ErrForbidden = errors.New("forbidden")

// ErrInvalidAmount indicates a non-positive or non-numeric trade amount.
var ErrInvalidAmount = errors.New("invalid amount")

// ErrUnknownCurrency indicates a currency code outside the supported set.
var ErrUnknownCurrency = errors.New("unknown currency")

// ErrRateUnavailable indicates that every conversion strategy failed for a pair.
var ErrRateUnavailable = errors.New("exchange rate unavailable")

// ErrInsufficientFunds indicates a withdrawal exceeding the wallet balance.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrSourceUnreachable indicates a network, timeout or bad-status failure from an upstream rate source.
var ErrSourceUnreachable = errors.New("rate source unreachable")

// ErrUpdateFailed indicates that all source clients failed within one refresh cycle.
var ErrUpdateFailed = errors.New("rate update failed")

// InsufficientFundsError carries the balances involved in a rejected withdrawal.
// It matches ErrInsufficientFunds under errors.Is.
type InsufficientFundsError struct {
	Currency  string
	Available decimal.Decimal
	Required  decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: available %s %s, required %s %s",
		e.Available.String(), e.Currency, e.Required.String(), e.Currency)
}

func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

// SourceError wraps the failure of a single upstream source client.
// It matches ErrSourceUnreachable under errors.Is.
type SourceError struct {
	Source string
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("source %s: %v", e.Source, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }

func (e *SourceError) Is(target error) bool {
	return target == ErrSourceUnreachable
}

// UpdateFailedError aggregates per-source failures for a refresh cycle in
// which no client returned any data. It matches ErrUpdateFailed under errors.Is.
type UpdateFailedError struct {
	Sources []string
	Errs    []error
}

func (e *UpdateFailedError) Error() string {
	return fmt.Sprintf("all rate sources failed: %s", strings.Join(e.Sources, ", "))
}

func (e *UpdateFailedError) Is(target error) bool {
	return target == ErrUpdateFailed
}
