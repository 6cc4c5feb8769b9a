package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/theirongolddev/flightpath/internal/pipeline"
)

const namespace = "flightpath"

// Metrics holds the Prometheus collectors for one server.
type Metrics struct {
	Requests         *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	ProjectionErrors *prometheus.CounterVec
	Uptime           prometheus.GaugeFunc
}

// NewMetrics registers the server collectors on reg, plus memo hit/miss
// counters read from memo.
func NewMetrics(reg prometheus.Registerer, memo *pipeline.Memo, uptime func() float64) *Metrics {
	factory := promauto.With(reg)

	factory.NewCounterFunc(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "memo",
		Name:      "hits_total",
		Help:      "Projection cache hits",
	}, func() float64 {
		hits, _ := memo.Stats()
		return float64(hits)
	})
	factory.NewCounterFunc(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "memo",
		Name:      "misses_total",
		Help:      "Projection cache misses",
	}, func() float64 {
		_, misses := memo.Stats()
		return float64(misses)
	})
	factory.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "memo",
		Name:      "entries",
		Help:      "Cached projections",
	}, func() float64 {
		return float64(memo.Len())
	})

	return &Metrics{
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route and status code",
		}, []string{"route", "code"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}, []string{"route"}),
		ProjectionErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "projection",
			Name:      "errors_total",
			Help:      "Rejected projection requests by reason",
		}, []string{"reason"}),
		Uptime: factory.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "uptime_seconds",
			Help:      "Seconds since the server started",
		}, uptime),
	}
}
