// Package metrics provides the centralized Prometheus metrics registry
// for the bet tracker.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Global registry instance
var (
	registry *prometheus.Registry
	once     sync.Once
)

// Counter metrics
var (
	BetsPlacedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "mma_ev_tool",
		Name:      "bets_placed_total",
		Help:      "Total number of bets added to the ledger",
	})
	BetsSettledTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mma_ev_tool",
		Name:      "bets_settled_total",
		Help:      "Total number of bet settlements by outcome",
	}, []string{"outcome"})
	BetsDeletedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "mma_ev_tool",
		Name:      "bets_deleted_total",
		Help:      "Total number of bets removed from the ledger",
	})
	SnapshotSaveFailuresTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "mma_ev_tool",
		Name:      "snapshot_save_failures_total",
		Help:      "Total number of failed ledger snapshot writes",
	})
	FeedFallbacksTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "mma_ev_tool",
		Name:      "feed_fallbacks_total",
		Help:      "Total number of times the feed fell back to sample data",
	})
	FeedRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mma_ev_tool",
		Name:      "feed_requests_total",
		Help:      "Total feed requests by endpoint",
	}, []string{"endpoint"})
)

// Gauge metrics
var (
	PendingBets = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "mma_ev_tool",
		Name:      "pending_bets",
		Help:      "Number of currently unsettled bets",
	})
	NetProfit = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "mma_ev_tool",
		Name:      "net_profit",
		Help:      "Net profit over all settled bets",
	})
	WinRate = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "mma_ev_tool",
		Name:      "win_rate_percent",
		Help:      "Win rate over settled bets in percent",
	})
)

// InitRegistry initializes the global Prometheus registry.
func InitRegistry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()

		registry.MustRegister(BetsPlacedTotal)
		registry.MustRegister(BetsSettledTotal)
		registry.MustRegister(BetsDeletedTotal)
		registry.MustRegister(SnapshotSaveFailuresTotal)
		registry.MustRegister(FeedFallbacksTotal)
		registry.MustRegister(FeedRequestsTotal)

		registry.MustRegister(PendingBets)
		registry.MustRegister(NetProfit)
		registry.MustRegister(WinRate)
	})
	return registry
}

// GetRegistry returns the global Prometheus registry.
func GetRegistry() *prometheus.Registry {
	if registry == nil {
		return InitRegistry()
	}
	return registry
}

// Handler returns the Prometheus HTTP handler.
func Handler() http.Handler {
	return promhttp.HandlerFor(GetRegistry(), promhttp.HandlerOpts{})
}

// RecordBetPlaced records a bet placement event.
func RecordBetPlaced() {
	BetsPlacedTotal.Inc()
}

// RecordBetSettled records a bet settlement event.
func RecordBetSettled(outcome string) {
	BetsSettledTotal.WithLabelValues(outcome).Inc()
}

// RecordBetDeleted records a bet deletion event.
func RecordBetDeleted() {
	BetsDeletedTotal.Inc()
}

// RecordSnapshotSaveFailure records a failed snapshot write.
func RecordSnapshotSaveFailure() {
	SnapshotSaveFailuresTotal.Inc()
}

// RecordFeedFallback records a fallback to the built-in sample dataset.
func RecordFeedFallback() {
	FeedFallbacksTotal.Inc()
}

// UpdateLedgerGauges updates the ledger-derived gauges.
func UpdateLedgerGauges(pending int, netProfit, winRate float64) {
	PendingBets.Set(float64(pending))
	NetProfit.Set(netProfit)
	WinRate.Set(winRate)
}
