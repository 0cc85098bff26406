package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "payment",
			Name:      "requests_total",
			Help:      "Total requests per handler and outcome",
		},
		[]string{"handler", "status", "method"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "payment",
			Name:      "request_duration_seconds",
			Help:      "Request duration per handler and outcome",
			Buckets: []float64{
				0.01, 0.02, 0.03, 0.05, 0.08, 0.12,
				0.2, 0.3, 0.5, 0.8, 1.2, 2, 3, 5,
			},
		},
		[]string{"handler", "status"},
	)
)

func init() {
	prometheus.MustRegister(RequestsTotal, RequestDuration)
}

func IncRequest(handler, status, method string) {
	RequestsTotal.WithLabelValues(handler, status, method).Inc()
}

func ObserveDuration(handler, status string, seconds float64) {
	RequestDuration.WithLabelValues(handler, status).Observe(seconds)
}
