// Package metrics exposes the server's Prometheus collectors.
package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	globalMetrics *Metrics
	metricsOnce   sync.Once
)

type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// ReordersTotal counts persisted drag results by kind (lists, cards) and result.
	ReordersTotal *prometheus.CounterVec

	// AuthEventsTotal counts register, login and password reset outcomes.
	AuthEventsTotal *prometheus.CounterVec
}

// New registers the collectors once per process and returns them.
//
// Metrics:
//   - taskboard_http_requests_total{method,route,status}
//   - taskboard_http_request_duration_seconds{method,route}
//   - taskboard_reorders_total{kind,result}
//   - taskboard_auth_events_total{event,result}
func New() *Metrics {
	metricsOnce.Do(func() {
		globalMetrics = &Metrics{
			HTTPRequestsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "taskboard_http_requests_total",
					Help: "Total number of HTTP requests handled",
				},
				[]string{"method", "route", "status"},
			),
			HTTPRequestDuration: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "taskboard_http_request_duration_seconds",
					Help:    "Duration of HTTP requests in seconds",
					Buckets: prometheus.DefBuckets,
				},
				[]string{"method", "route"},
			),
			ReordersTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "taskboard_reorders_total",
					Help: "Total number of reorder requests",
				},
				[]string{"kind", "result"},
			),
			AuthEventsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "taskboard_auth_events_total",
					Help: "Total number of authentication events",
				},
				[]string{"event", "result"},
			),
		}
	})
	return globalMetrics
}

// Middleware records request count and latency per route template.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.HTTPRequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.HTTPRequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// Reorder and AuthEvent are no-ops on a nil *Metrics.
func (m *Metrics) Reorder(kind string, err error) {
	if m == nil {
		return
	}
	m.ReordersTotal.WithLabelValues(kind, result(err)).Inc()
}

func (m *Metrics) AuthEvent(event string, err error) {
	if m == nil {
		return
	}
	m.AuthEventsTotal.WithLabelValues(event, result(err)).Inc()
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
