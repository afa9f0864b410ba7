package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "kpiscore"

type Metrics struct {
	registry *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	evaluations         *prometheus.CounterVec
	batchRecordsSaved   prometheus.Counter
	batchRecordsFailed  prometheus.Counter
}

func New() *Metrics {
	registry := prometheus.NewRegistry()
	auto := promauto.With(registry)

	m := &Metrics{registry: registry}
	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by route, method and status code",
		},
		[]string{"route", "method", "status"},
	)
	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	m.evaluations = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "evaluations_total",
			Help:      "Total number of assessment evaluations by outcome",
		},
		[]string{"outcome"},
	)
	m.batchRecordsSaved = auto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "batch_records_saved_total",
		Help:      "Total number of KPI records saved through batch uploads",
	})
	m.batchRecordsFailed = auto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "batch_records_rejected_total",
		Help:      "Total number of KPI records rejected during batch uploads",
	})
	return m
}

func (m *Metrics) ObserveRequest(route, method string, status int, duration time.Duration) {
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(route, method).Observe(duration.Seconds())
}

func (m *Metrics) RecordEvaluation(outcome string) {
	m.evaluations.WithLabelValues(outcome).Inc()
}

func (m *Metrics) RecordBatch(saved, rejected int) {
	m.batchRecordsSaved.Add(float64(saved))
	m.batchRecordsFailed.Add(float64(rejected))
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
