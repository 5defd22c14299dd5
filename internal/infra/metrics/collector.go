// Package metrics exposes domain counters and HTTP timings to Prometheus.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"articlehub/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

const namespace = "articlehub"

// Collector implements service.MetricsRecorder on Prometheus counters.
type Collector struct {
	logins          *prometheus.CounterVec
	likeToggles     *prometheus.CounterVec
	articlesCreated prometheus.Counter
	slugCollisions  prometheus.Counter
	publishFailures prometheus.Counter
	httpRequests    *prometheus.HistogramVec
}

// NewRegistry returns a registry carrying the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

// NewCollector creates the collector and registers its metrics on reg.
func NewCollector(reg *prometheus.Registry) *Collector {
	c := &Collector{
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "logins_total",
			Help:      "Login attempts by result.",
		}, []string{"result"}),
		likeToggles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "like_toggles_total",
			Help:      "Committed like toggles by action.",
		}, []string{"action"}),
		articlesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "articles_created_total",
			Help:      "Articles created.",
		}),
		slugCollisions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "slug_collisions_total",
			Help:      "Article inserts retried after losing a slug to a concurrent insert.",
		}),
		publishFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "event_publish_failures_total",
			Help:      "Like events that could not be published.",
		}),
		httpRequests: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method, route and status.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}

	reg.MustRegister(
		c.logins,
		c.likeToggles,
		c.articlesCreated,
		c.slugCollisions,
		c.publishFailures,
		c.httpRequests,
	)

	return c
}

func (c *Collector) RecordLogin(success bool) {
	result := "failure"
	if success {
		result = "success"
	}
	c.logins.WithLabelValues(result).Inc()
}

func (c *Collector) RecordLikeToggle(action string) {
	c.likeToggles.WithLabelValues(action).Inc()
}

func (c *Collector) RecordArticleCreated() {
	c.articlesCreated.Inc()
}

func (c *Collector) RecordSlugCollision() {
	c.slugCollisions.Inc()
}

func (c *Collector) RecordEventPublishFailure() {
	c.publishFailures.Inc()
}

// RecordHTTPRequest observes one served request. route is the registered
// path pattern, not the raw URL, to keep label cardinality bounded.
func (c *Collector) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Observe(duration.Seconds())
}

// Handler returns the scrape handler for gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

func asRecorder(c *Collector) service.MetricsRecorder {
	return c
}

// Module provides the registry, the collector and the MetricsRecorder
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewRegistry,
		NewCollector,
		asRecorder,
	),
)
