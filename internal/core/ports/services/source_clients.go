package services

import "context"

// Source kinds selectable in a refresh request.
const (
	SourceKindCrypto = "crypto"
	SourceKindFiat   = "fiat"
)

// RateSourceClient pulls quotes from one upstream rate source. Implementations
// wrap the raw fetch with a response cache: a fresh cached payload is returned
// without hitting the upstream, and on upstream failure the most recent cached
// payload (however stale) is served before the failure is propagated.
type RateSourceClient interface {
	// Name identifies the concrete upstream, e.g. "coingecko".
	Name() string

	// Kind reports which source family the client belongs to,
	// SourceKindCrypto or SourceKindFiat.
	Kind() string

	// FetchRates returns a map of pair key to rate. force bypasses the
	// freshness check on the response cache but keeps the stale fallback.
	FetchRates(ctx context.Context, force bool) (map[string]float64, error)
}
