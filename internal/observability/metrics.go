// Package observability exposes Prometheus metrics for the dashboard.
package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	httpRequestsTotal *prometheus.CounterVec
	httpDuration      *prometheus.HistogramVec
	vendorRequests    *prometheus.CounterVec
	llmTokensTotal    *prometheus.CounterVec
	llmCostDollars    *prometheus.CounterVec
	recapsGenerated   prometheus.Counter
	rankingsComputed  prometheus.Counter
}

func NewMetrics() *Metrics {
	m := &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total count of HTTP requests processed by route and status.",
		}, []string{"route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Histogram of HTTP request durations by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		vendorRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vendor_requests_total",
			Help: "Total fantasy platform API fetches by platform and outcome.",
		}, []string{"platform", "outcome"}),
		llmTokensTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "llm_tokens_total",
			Help: "Total LLM tokens consumed by model and direction.",
		}, []string{"model", "direction"}),
		llmCostDollars: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "llm_cost_dollars_total",
			Help: "Accumulated LLM spend in dollars by model.",
		}, []string{"model"}),
		recapsGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "recaps_generated_total",
			Help: "Total recaps generated.",
		}),
		rankingsComputed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rankings_computed_total",
			Help: "Total power ranking computations.",
		}),
	}

	prometheus.MustRegister(
		m.httpRequestsTotal,
		m.httpDuration,
		m.vendorRequests,
		m.llmTokensTotal,
		m.llmCostDollars,
		m.recapsGenerated,
		m.rankingsComputed,
	)

	return m
}

// Middleware records request counts and latency per route. The route
// template (not the raw path) keys the labels to bound cardinality.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.httpRequestsTotal.WithLabelValues(route, strconv.Itoa(c.Writer.Status())).Inc()
		m.httpDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.Handler()
}

func (m *Metrics) VendorRequest(platform string, success bool) {
	if m == nil {
		return
	}
	outcome := "ok"
	if !success {
		outcome = "error"
	}
	m.vendorRequests.WithLabelValues(platform, outcome).Inc()
}

func (m *Metrics) RecapGenerated(model string, promptTokens, completionTokens int, costDollars float64) {
	if m == nil {
		return
	}
	m.recapsGenerated.Inc()
	m.llmTokensTotal.WithLabelValues(model, "prompt").Add(float64(promptTokens))
	m.llmTokensTotal.WithLabelValues(model, "completion").Add(float64(completionTokens))
	m.llmCostDollars.WithLabelValues(model).Add(costDollars)
}

func (m *Metrics) RankingsComputed() {
	if m == nil {
		return
	}
	m.rankingsComputed.Inc()
}
