package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	engineRequestCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "enrollment_service",
		Subsystem: "engine",
		Name:      "requests_total",
		Help:      "Number of enrollment engine requests grouped by operation and outcome.",
	}, []string{"operation", "outcome"})

	lastChangeGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "enrollment_service",
		Subsystem: "engine",
		Name:      "last_change_timestamp_seconds",
		Help:      "Unix timestamp of the most recent successful enrollment change.",
	})
)

func init() {
	prometheus.MustRegister(engineRequestCounter, lastChangeGauge)
}

// RecordEngineRequest counts a signup or unregister attempt by outcome and
// advances the change watermark on success.
func RecordEngineRequest(operation, outcome string) {
	engineRequestCounter.WithLabelValues(operation, outcome).Inc()
	if outcome == "success" {
		lastChangeGauge.Set(float64(time.Now().Unix()))
	}
}
