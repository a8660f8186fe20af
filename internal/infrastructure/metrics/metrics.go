package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Counters and gauges exposed on /metrics. Registered on the default
// registry so promhttp.Handler can serve them without extra wiring.
var (
	RateUpdatesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "paperfx_rate_updates_total",
		Help: "Refresh attempts per upstream source and outcome.",
	}, []string{"source", "status"})

	RatePairsGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "paperfx_rate_pairs",
		Help: "Number of pairs in the current rate snapshot.",
	})

	TradesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "paperfx_trades_total",
		Help: "Committed and rejected trades per side.",
	}, []string{"side", "status"})
)

const (
	StatusOK    = "ok"
	StatusError = "error"
)
