package session

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	dispatchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "checkmaster_dispatch_total",
		Help: "Total intents applied to the checklist, by intent",
	}, []string{"intent"})

	saveFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "checkmaster_save_failures_total",
		Help: "Total failed writes of the checklist state",
	})

	saveDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "checkmaster_save_duration_seconds",
		Help:    "Time spent writing the checklist state",
		Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
	})
)
