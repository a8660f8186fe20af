package domain

import (
	"strings"
	"time"
)

// MaxHistoryRecords caps the rate history log; oldest entries are dropped first.
const MaxHistoryRecords = 1000

// PairKey builds the canonical FROM_TO key for a currency pair.
func PairKey(from, to string) string {
	return from + "_" + to
}

// SplitPairKey splits a canonical FROM_TO key into its two codes.
func SplitPairKey(key string) (from, to string, ok bool) {
	i := strings.LastIndex(key, "_")
	if i <= 0 || i == len(key)-1 {
		return "", "", false
	}
	return key[:i], key[i+1:], true
}

// RatePair is one cached exchange rate, keyed inside a snapshot by PairKey.
// Invariant: Rate > 0; a zero or negative rate is never persisted.
type RatePair struct {
	Rate      float64   `json:"rate"`
	UpdatedAt time.Time `json:"updated_at"`
	Source    string    `json:"source"`
}

// FreshWithin reports whether the pair was updated less than ttl before now.
func (p RatePair) FreshWithin(ttl time.Duration, now time.Time) bool {
	if p.UpdatedAt.IsZero() {
		return false
	}
	return now.Sub(p.UpdatedAt) < ttl
}

// RateSnapshot is one complete view of all known rate pairs. Snapshots are
// replaced wholesale on update; a reader never observes a partial one.
type RateSnapshot struct {
	Pairs       map[string]RatePair `json:"pairs"`
	LastRefresh time.Time           `json:"last_refresh"`
	Source      string              `json:"source"`
}

// EmptyRateSnapshot returns a snapshot with no pairs and a zero refresh time.
func EmptyRateSnapshot() RateSnapshot {
	return RateSnapshot{Pairs: map[string]RatePair{}}
}

// Get returns the pair stored under PairKey(from, to).
func (s *RateSnapshot) Get(from, to string) (RatePair, bool) {
	p, ok := s.Pairs[PairKey(from, to)]
	return p, ok
}

// HistoryRecord is one entry of the bounded, append-only rate history log.
type HistoryRecord struct {
	ID           string    `json:"id"`
	FromCurrency string    `json:"from_currency"`
	ToCurrency   string    `json:"to_currency"`
	Rate         float64   `json:"rate"`
	Timestamp    time.Time `json:"timestamp"`
	Source       string    `json:"source"`
}

// NewHistoryID builds the record identifier for a pair at a refresh instant.
func NewHistoryID(pairKey string, ts time.Time) string {
	return pairKey + "_" + ts.UTC().Format(time.RFC3339)
}

// RateStrategy names how the resolver produced a rate.
type RateStrategy string

const (
	RateIdentity RateStrategy = "identity"
	RateDirect   RateStrategy = "direct"
	RateReverse  RateStrategy = "reverse"
	RateBridge   RateStrategy = "bridge"
)

// ResolvedRate is the resolver's answer for one (from, to) lookup.
type ResolvedRate struct {
	From     string       `json:"from"`
	To       string       `json:"to"`
	Rate     float64      `json:"rate"`
	Strategy RateStrategy `json:"strategy"`
	// UpdatedAt is the age of the data the rate was derived from: zero for
	// identity, the pair's timestamp for direct/reverse, the older of the
	// two legs for bridge.
	UpdatedAt time.Time `json:"updated_at"`
}

// RateListEntry is one snapshot pair annotated with display freshness.
type RateListEntry struct {
	Pair      string    `json:"pair"`
	Rate      float64   `json:"rate"`
	UpdatedAt time.Time `json:"updated_at"`
	Source    string    `json:"source"`
	Fresh     bool      `json:"fresh"`
}

// RateListing is the whole snapshot annotated for display, pairs sorted by key.
type RateListing struct {
	Pairs       []RateListEntry `json:"pairs"`
	LastRefresh time.Time       `json:"last_refresh"`
	Source      string          `json:"source"`
}

// UpdateResult summarizes one refresh cycle across the source clients.
type UpdateResult struct {
	RatesCount  int       `json:"rates_count"`
	Sources     []string  `json:"sources"`
	Errors      []string  `json:"errors"`
	LastRefresh time.Time `json:"last_refresh"`
}

// UpdateInfo describes the current snapshot without triggering a fetch.
type UpdateInfo struct {
	PairCount   int       `json:"pair_count"`
	LastRefresh time.Time `json:"last_refresh"`
	Source      string    `json:"source"`
}
