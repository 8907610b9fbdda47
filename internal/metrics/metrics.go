// Package metrics собирает метрики Prometheus для кэша и HTTP-серверов.
// Все методы Recorder безопасны для nil-получателя, поэтому метрики опциональны.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Recorder struct {
	broadcasts   prometheus.Counter
	operations   *prometheus.CounterVec
	storeLatency *prometheus.HistogramVec
	mirrorSize   *prometheus.GaugeVec
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

// New регистрирует коллекторы в reg с префиксом namespace
func New(reg prometheus.Registerer, namespace string) *Recorder {
	factory := promauto.With(reg)
	return &Recorder{
		broadcasts: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "broadcasts_total",
			Help:      "Number of change notifications broadcast by the cache.",
		}),
		operations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "operations_total",
			Help:      "Cache operations by name and outcome.",
		}, []string{"operation", "outcome"}),
		storeLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "store_request_duration_seconds",
			Help:      "Latency of record store calls issued by the cache.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		mirrorSize: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "mirror_records",
			Help:      "Number of records held in each mirrored collection.",
		}, []string{"collection"}),
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

func (r *Recorder) Broadcast() {
	if r == nil {
		return
	}
	r.broadcasts.Inc()
}

func (r *Recorder) Operation(operation, outcome string) {
	if r == nil {
		return
	}
	r.operations.WithLabelValues(operation, outcome).Inc()
}

func (r *Recorder) ObserveStore(operation string, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.storeLatency.WithLabelValues(operation).Observe(elapsed.Seconds())
}

func (r *Recorder) SetMirrorSize(collection string, n int) {
	if r == nil {
		return
	}
	r.mirrorSize.WithLabelValues(collection).Set(float64(n))
}

// GinMiddleware считает запросы и их длительность по шаблону маршрута
func (r *Recorder) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if r == nil {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		r.httpRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		r.httpDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// Handler отдает метрики из g в формате Prometheus
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
