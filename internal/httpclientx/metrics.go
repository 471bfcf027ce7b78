package httpclientx

//
// Metrics definitions
//

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	transportPreferred = "preferred"
	transportFallback  = "fallback"
)

var (
	// metricRequestsCount counts the requests by transport and outcome.
	metricRequestsCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "congress_http_requests_total",
		Help: "Total number of Congress API requests",
	}, []string{"transport", "outcome"})

	// metricFallbackCount counts the requests that used the fallback fetcher.
	metricFallbackCount = promauto.NewCounter(prometheus.CounterOpts{
		Name: "congress_fallback_total",
		Help: "Total number of Congress API requests that used the fallback fetcher",
	})

	// metricRequestDurationSeconds summarizes the duration of requests.
	metricRequestDurationSeconds = promauto.NewSummaryVec(prometheus.SummaryOpts{
		Name: "congress_http_request_duration_seconds",
		Help: "Summarizes the time to complete a Congress API request (in seconds)",
		Objectives: map[float64]float64{
			0.5:  0.010,
			0.9:  0.010,
			0.99: 0.001,
		},
	}, []string{"transport"})
)

// observe records the outcome and the duration of a request.
func observe(transport string, t0 time.Time, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	metricRequestsCount.WithLabelValues(transport, outcome).Inc()
	metricRequestDurationSeconds.WithLabelValues(transport).Observe(time.Since(t0).Seconds())
}
