package dto

import (
	"time"

	"github.com/paperfx/paperfx_app/internal/core/domain"
)

// UpdateRatesRequest selects which source to refresh; empty means all sources.
type UpdateRatesRequest struct {
	Source string `json:"source" binding:"omitempty,oneof=crypto fiat"`
	Force  bool   `json:"force"` // bypass the source response cache
}

// UpdateRatesResponse reports the outcome of one refresh cycle.
type UpdateRatesResponse struct {
	Success     bool      `json:"success"`
	RatesCount  int       `json:"rates_count"`
	Sources     []string  `json:"sources"`
	Errors      []string  `json:"errors"`
	LastRefresh time.Time `json:"last_refresh"`
}

// ToUpdateRatesResponse converts a domain.UpdateResult to UpdateRatesResponse DTO
func ToUpdateRatesResponse(res *domain.UpdateResult) UpdateRatesResponse {
	return UpdateRatesResponse{
		Success:     true,
		RatesCount:  res.RatesCount,
		Sources:     res.Sources,
		Errors:      res.Errors,
		LastRefresh: res.LastRefresh,
	}
}

// RateResponse is the answer to a rate query, including the reciprocal rate.
type RateResponse struct {
	From       string     `json:"from"`
	To         string     `json:"to"`
	Rate       float64    `json:"rate"`
	Reciprocal float64    `json:"reciprocal"`
	Strategy   string     `json:"strategy"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"` // omitted for identity rates
}

// ToRateResponse converts a domain.ResolvedRate to RateResponse DTO
func ToRateResponse(r *domain.ResolvedRate) RateResponse {
	resp := RateResponse{
		From:     r.From,
		To:       r.To,
		Rate:     r.Rate,
		Strategy: string(r.Strategy),
	}
	if r.Rate != 0 {
		resp.Reciprocal = 1 / r.Rate
	}
	if !r.UpdatedAt.IsZero() {
		t := r.UpdatedAt
		resp.UpdatedAt = &t
	}
	return resp
}

// RateListEntryResponse is one snapshot pair with its freshness flag.
type RateListEntryResponse struct {
	Pair      string    `json:"pair"`
	Rate      float64   `json:"rate"`
	UpdatedAt time.Time `json:"updated_at"`
	Source    string    `json:"source"`
	Fresh     bool      `json:"fresh"`
}

// RateListResponse returns every pair in the current snapshot.
type RateListResponse struct {
	Pairs       []RateListEntryResponse `json:"pairs"`
	LastRefresh time.Time               `json:"last_refresh"`
	Source      string                  `json:"source"`
}

// ToRateListResponse converts a domain.RateListing to RateListResponse DTO
func ToRateListResponse(listing *domain.RateListing) RateListResponse {
	pairs := make([]RateListEntryResponse, len(listing.Pairs))
	for i, p := range listing.Pairs {
		pairs[i] = RateListEntryResponse{
			Pair:      p.Pair,
			Rate:      p.Rate,
			UpdatedAt: p.UpdatedAt,
			Source:    p.Source,
			Fresh:     p.Fresh,
		}
	}
	return RateListResponse{
		Pairs:       pairs,
		LastRefresh: listing.LastRefresh,
		Source:      listing.Source,
	}
}

// HistoryQueryParams defines query parameters for the rate history listing.
type HistoryQueryParams struct {
	Pair  string `form:"pair"`
	Limit int    `form:"limit,default=50"`
}

// HistoryRecordResponse is one entry of the rate history log.
type HistoryRecordResponse struct {
	ID           string    `json:"id"`
	FromCurrency string    `json:"from_currency"`
	ToCurrency   string    `json:"to_currency"`
	Rate         float64   `json:"rate"`
	Timestamp    time.Time `json:"timestamp"`
	Source       string    `json:"source"`
}

// HistoryResponse wraps rate history records, oldest first.
type HistoryResponse struct {
	Records []HistoryRecordResponse `json:"records"`
}

// ToHistoryResponse converts domain.HistoryRecords to HistoryResponse DTO
func ToHistoryResponse(records []domain.HistoryRecord) HistoryResponse {
	out := make([]HistoryRecordResponse, len(records))
	for i, r := range records {
		out[i] = HistoryRecordResponse{
			ID:           r.ID,
			FromCurrency: r.FromCurrency,
			ToCurrency:   r.ToCurrency,
			Rate:         r.Rate,
			Timestamp:    r.Timestamp,
			Source:       r.Source,
		}
	}
	return HistoryResponse{Records: out}
}

// UpdateInfoResponse describes the current snapshot without fetching.
type UpdateInfoResponse struct {
	PairCount   int       `json:"pair_count"`
	LastRefresh time.Time `json:"last_refresh"`
	Source      string    `json:"source"`
}

// ToUpdateInfoResponse converts a domain.UpdateInfo to UpdateInfoResponse DTO
func ToUpdateInfoResponse(info *domain.UpdateInfo) UpdateInfoResponse {
	return UpdateInfoResponse{
		PairCount:   info.PairCount,
		LastRefresh: info.LastRefresh,
		Source:      info.Source,
	}
}
