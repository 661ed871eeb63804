package common

import "github.com/prometheus/client_golang/prometheus"

const (
	HTTPRequestTotal           = "http_request_total"
	HTTPRequestDurationSeconds = "http_request_duration_seconds"
)

var PromCounters = map[string]*prometheus.CounterVec{
	HTTPRequestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: HTTPRequestTotal,
		Help: "Total number of handled http requests.",
	}, []string{"method", "path", "status"}),
}

var PromHistograms = map[string]*prometheus.HistogramVec{
	HTTPRequestDurationSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    HTTPRequestDurationSeconds,
		Help:    "Duration of handled http requests in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"}),
}
