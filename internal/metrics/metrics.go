// Package metrics exposes the token service's Prometheus instrumentation:
// gauges for the live index/rate/supply figures and counters for
// operations and their outcomes.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry bundles the collectors the httpserver and token layers update.
type Registry struct {
	Index         prometheus.Gauge
	RateBP        prometheus.Gauge
	TotalSupply   prometheus.Gauge
	EarningSupply prometheus.Gauge

	Operations *prometheus.CounterVec
	Errors     *prometheus.CounterVec
}

// New registers a fresh set of collectors against reg.
func New(reg prometheus.Registerer) *Registry {
	factory := promauto.With(reg)
	return &Registry{
		Index: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "yieldtoken",
			Name:      "index",
			Help:      "Current continuous index, scaled by EXP_ONE.",
		}),
		RateBP: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "yieldtoken",
			Name:      "rate_bp",
			Help:      "Currently committed yearly rate, in basis points.",
		}),
		TotalSupply: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "yieldtoken",
			Name:      "total_supply",
			Help:      "Total present-value supply across both cohorts.",
		}),
		EarningSupply: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "yieldtoken",
			Name:      "earning_supply",
			Help:      "Present-value supply held by the earning cohort.",
		}),
		Operations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "yieldtoken",
			Name:      "operations_total",
			Help:      "Accounting operations processed, by kind.",
		}, []string{"op"}),
		Errors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "yieldtoken",
			Name:      "errors_total",
			Help:      "Accounting operations that returned an error, by code.",
		}, []string{"code"}),
	}
}

// ObserveOp increments the per-kind operation counter, and on failure the
// per-code error counter.
func (r *Registry) ObserveOp(op string, errCode string) {
	r.Operations.WithLabelValues(op).Inc()
	if errCode != "" {
		r.Errors.WithLabelValues(errCode).Inc()
	}
}
